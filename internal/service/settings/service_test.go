package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *memory.Store) {
	store := memory.NewStore()
	return NewService(store.Salon(), store.TxManager(), nopLogger{}), store
}

func TestGet_CreatesDefaultsOnce(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	resp, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "HS Salon", resp.BusinessName)
	assert.Equal(t, 10, resp.MaxDailyAppointments)
	assert.Equal(t, 60, resp.AppointmentDuration)
	assert.Equal(t, "09:00", resp.WorkingHoursStart)
	assert.Equal(t, "18:00", resp.WorkingHoursEnd)
	assert.Zero(t, resp.BufferMinutes)

	first, err := store.Salon().GetSettings(ctx)
	require.NoError(t, err)

	_, err = svc.EnsureDefaults(ctx)
	require.NoError(t, err)
	second, err := store.Salon().GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestUpdate_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  models.UpdateSettingsRequest
		err  error
	}{
		{name: "duration too short", req: models.UpdateSettingsRequest{AppointmentDuration: ptr.Ptr(10)}, err: ErrInvalidDuration},
		{name: "duration too long", req: models.UpdateSettingsRequest{AppointmentDuration: ptr.Ptr(481)}, err: ErrInvalidDuration},
		{name: "negative max", req: models.UpdateSettingsRequest{MaxDailyAppointments: ptr.Ptr(-1)}, err: ErrInvalidInput},
		{name: "buffer too big", req: models.UpdateSettingsRequest{BufferMinutes: ptr.Ptr(121)}, err: ErrInvalidInput},
		{name: "bad hours", req: models.UpdateSettingsRequest{WorkingHoursStart: ptr.Ptr("9am")}, err: ErrInvalidInput},
		{name: "start after end", req: models.UpdateSettingsRequest{WorkingHoursStart: ptr.Ptr("19:00")}, err: ErrInvalidInput},
		{name: "empty name", req: models.UpdateSettingsRequest{BusinessName: ptr.Ptr("  ")}, err: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newService()
			_, err := svc.EnsureDefaults(context.Background())
			require.NoError(t, err)

			_, err = svc.Update(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.err)

			settings, err := store.Salon().GetSettings(context.Background())
			require.NoError(t, err)
			assert.Equal(t, 60, settings.AppointmentDuration, "rejected update must not be stored")
			assert.Equal(t, "09:00", settings.WorkingHoursStart)
		})
	}
}

func TestUpdate_Applies(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		MaxDailyAppointments: ptr.Ptr(0),
		AppointmentDuration:  ptr.Ptr(45),
		WorkingHoursStart:    ptr.Ptr("10:00"),
		WorkingHoursEnd:      ptr.Ptr("20:00"),
		BufferMinutes:        ptr.Ptr(15),
		TelegramBotToken:     ptr.Ptr(" 123:abc "),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.MaxDailyAppointments)
	assert.Equal(t, 45, resp.AppointmentDuration)
	assert.Equal(t, "10:00", resp.WorkingHoursStart)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.True(t, resp.TelegramBotTokenSet)
}

func TestOffDays(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	sunday, err := svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "weekly", DayOfWeek: ptr.Ptr(6)})
	require.NoError(t, err)
	assert.Equal(t, "Weekly off: Sunday", sunday.Label)

	_, err = svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "weekly", DayOfWeek: ptr.Ptr(6)})
	assert.ErrorIs(t, err, ErrDuplicateOffDay)

	_, err = svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "specific", Date: ptr.Ptr("2025-12-25"), Description: ptr.Ptr("Christmas")})
	require.NoError(t, err)

	_, err = svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "specific", Date: ptr.Ptr("2025-12-25")})
	assert.ErrorIs(t, err, ErrDuplicateOffDay)

	_, err = svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "weekly", DayOfWeek: ptr.Ptr(7)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddOffDay(ctx, &models.CreateOffDayRequest{Type: "monthly"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	list, err := svc.ListOffDays(ctx)
	require.NoError(t, err)
	require.Len(t, list.OffDays, 2)

	require.NoError(t, svc.DeleteOffDay(ctx, sunday.ID))
	assert.ErrorIs(t, svc.DeleteOffDay(ctx, sunday.ID), ErrOffDayNotFound)
}
