package cancel_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got *cancelBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &cancelBooking.Response{
		Appointment:   &domain.Appointment{ID: req.AppointmentID, Status: domain.StatusCancelled},
		Refund:        domain.Refund{Points: 5, Late: true},
		PointsBalance: 5,
	}, nil
}

func serve(h *Handler, id, body string, customerID int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/appointments/"+id+"/cancel", strings.NewReader(body))
	if customerID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), customerID))
	}
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CustomerCancel(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(NewHandler(uc, domain.ActorCustomer, nopLogger{}), "12", `{"reason":"sick"}`, 4)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(12), uc.got.AppointmentID)
	assert.Equal(t, domain.ActorCustomer, uc.got.Actor)
	assert.Equal(t, int64(4), uc.got.CustomerID)
	require.NotNil(t, uc.got.Reason)
	assert.Equal(t, "sick", *uc.got.Reason)

	var body CancelBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.RefundedPoints)
	assert.True(t, body.LateCancel)
}

func TestHandle_AdminCancelWithoutBody(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(NewHandler(uc, domain.ActorAdmin, nopLogger{}), "12", "", 0)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ActorAdmin, uc.got.Actor)
	assert.Zero(t, uc.got.CustomerID)
	assert.Nil(t, uc.got.Reason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"not found", "1", cancelBooking.ErrAppointmentNotFound, http.StatusNotFound},
		{"foreign", "1", fmt.Errorf("%w: appointment belongs to another customer", cancelBooking.ErrNotCancellable), http.StatusConflict},
		{"already cancelled", "1", cancelBooking.ErrNotCancellable, http.StatusConflict},
		{"internal", "1", cancelBooking.ErrInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeUseCase{err: tt.err}, domain.ActorCustomer, nopLogger{}), tt.id, "", 4)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
