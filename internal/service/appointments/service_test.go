package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seed(t *testing.T, store *memory.Store, customerID int64, day int, start string) *domain.Appointment {
	t.Helper()

	apt, err := domain.NewAppointment(customerID, nil, "Haircut",
		time.Date(2025, 3, day, 0, 0, 0, 0, time.UTC), types.TimeString(start), 60)
	require.NoError(t, err)
	created, err := store.Appointments().Create(context.Background(), apt)
	require.NoError(t, err)
	return created
}

func TestListForCustomer_NewestFirst(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Appointments(), nopLogger{})

	seed(t, store, 1, 10, "10:00")
	seed(t, store, 1, 12, "09:00")
	seed(t, store, 1, 12, "15:00")
	seed(t, store, 2, 11, "11:00")

	resp, err := svc.ListForCustomer(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, "2025-03-12", resp.Appointments[0].Date)
	assert.Equal(t, "15:00", resp.Appointments[0].StartTime)
	assert.Equal(t, "09:00", resp.Appointments[1].StartTime)
	assert.Equal(t, "2025-03-10", resp.Appointments[2].Date)
}

func TestList_Filter(t *testing.T) {
	store := memory.NewStore()
	svc := NewService(store.Appointments(), nopLogger{})
	ctx := context.Background()

	seed(t, store, 1, 10, "10:00")
	cancelled := seed(t, store, 2, 11, "10:00")
	seed(t, store, 3, 12, "10:00")

	cancelled.Cancel(time.Now(), domain.ActorAdmin, ptr.Ptr("closed"))
	require.NoError(t, store.Appointments().Cancel(ctx, cancelled))

	resp, err := svc.List(ctx, &models.ListAppointmentsRequest{From: ptr.Ptr("2025-03-11"), To: ptr.Ptr("2025-03-12")})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	resp, err = svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("cancelled")})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.True(t, resp.Appointments[0].AdminCancelled)
	require.NotNil(t, resp.Appointments[0].CancelledBy)
	assert.Equal(t, "admin", *resp.Appointments[0].CancelledBy)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := NewService(memory.NewStore().Appointments(), nopLogger{})
	ctx := context.Background()

	_, err := svc.List(ctx, &models.ListAppointmentsRequest{From: ptr.Ptr("11.03.2025")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{From: ptr.Ptr("2025-03-12"), To: ptr.Ptr("2025-03-11")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(ctx, &models.ListAppointmentsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
