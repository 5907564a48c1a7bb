package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService() (*Service, *memory.Store) {
	store := memory.NewStore()
	return NewService(store.Catalog(), store.Appointments(), store.TxManager(), nopLogger{}), store
}

func TestCreate_Validation(t *testing.T) {
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name string
		req  models.CreateServiceRequest
		err  error
	}{
		{name: "empty name", req: models.CreateServiceRequest{Name: " ", DurationMinutes: 60}, err: ErrInvalidInput},
		{name: "duration too short", req: models.CreateServiceRequest{Name: "Cut", DurationMinutes: 14}, err: ErrInvalidDuration},
		{name: "duration too long", req: models.CreateServiceRequest{Name: "Cut", DurationMinutes: 481}, err: ErrInvalidDuration},
		{name: "negative price", req: models.CreateServiceRequest{Name: "Cut", DurationMinutes: 60, Price: &negative}, err: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService()
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCreateAndList(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	price := decimal.RequireFromString("25.50")

	created, err := svc.Create(ctx, &models.CreateServiceRequest{
		Name:            " Haircut ",
		DurationMinutes: 45,
		Price:           &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", created.Name)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Price)
	assert.True(t, price.Equal(*created.Price))

	_, err = svc.Create(ctx, &models.CreateServiceRequest{Name: "Hidden", DurationMinutes: 30, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)

	active, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active.Services, 1)

	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all.Services, 2)
}

func TestUpdate(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "Color", DurationMinutes: 90})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &models.UpdateServiceRequest{DurationMinutes: ptr.Ptr(120)})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.DurationMinutes)
	assert.Equal(t, "Color", updated.Name)

	_, err = svc.Update(ctx, created.ID, &models.UpdateServiceRequest{DurationMinutes: ptr.Ptr(500)})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, got.DurationMinutes)

	_, err = svc.Update(ctx, 999, &models.UpdateServiceRequest{Name: ptr.Ptr("x")})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete_HardWhenUnused(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "Nails", DurationMinutes: 60})
	require.NoError(t, err)

	resp, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, resp.Deactivated)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete_DeactivatesWhenReferenced(t *testing.T) {
	svc, store := newService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateServiceRequest{Name: "Nails", DurationMinutes: 60})
	require.NoError(t, err)

	apt, err := domain.NewAppointment(1, &created.ID, created.Name,
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), types.TimeString("10:00"), 60)
	require.NoError(t, err)
	_, err = store.Appointments().Create(ctx, apt)
	require.NoError(t, err)

	resp, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.Deactivated)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
