package get_available_slots

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date: date, DurationMinutes: 45, ServiceName: "Haircut",
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "09:45"},
			{StartTime: "09:15", EndTime: "10:00"},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "?date=2024-01-15&serviceId=4&service=Haircut&duration=45")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.True(t, uc.got.Date.Equal(date))
	require.NotNil(t, uc.got.ServiceID)
	assert.Equal(t, int64(4), *uc.got.ServiceID)
	require.NotNil(t, uc.got.ServiceName)
	assert.Equal(t, "Haircut", *uc.got.ServiceName)
	require.NotNil(t, uc.got.DurationMinutes)
	assert.Equal(t, 45, *uc.got.DurationMinutes)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-01-15", body.Date)
	assert.Equal(t, 45, body.DurationMinutes)
	assert.False(t, body.OffDay)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, AvailableSlot{StartTime: "09:15", EndTime: "10:00"}, body.Slots[1])
}

func TestHandle_OptionalServiceParams(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), DurationMinutes: 60, ServiceName: "Appointment",
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "?date=2024-01-15")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.ServiceID)
	assert.Nil(t, uc.got.ServiceName)
	assert.Nil(t, uc.got.DurationMinutes)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Slots)
	assert.Equal(t, "Appointment", body.ServiceName)
}

func TestHandle_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "missing date", query: ""},
		{name: "bad date", query: "?date=2024/01/15"},
		{name: "bad service id", query: "?date=2024-01-15&serviceId=abc"},
		{name: "non-positive service id", query: "?date=2024-01-15&serviceId=0"},
		{name: "bad duration", query: "?date=2024-01-15&duration=1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := serve(NewHandler(uc, nopLogger{}), tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid duration", err: fmt.Errorf("%w: 600", getAvailableSlots.ErrInvalidDuration), status: http.StatusBadRequest},
		{name: "invalid input", err: fmt.Errorf("%w: zero date", getAvailableSlots.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", err: fmt.Errorf("%w: db down", getAvailableSlots.ErrInternal), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, nopLogger{}), "?date=2024-01-15")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
