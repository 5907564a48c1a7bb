package complete_appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	cancelBooking "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_booking"
	completeAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/complete_appointment"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	registerCustomer "github.com/m04kA/SMC-SalonService/internal/usecase/register_customer"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopNotifier struct{}

func (nopNotifier) NewReferral(context.Context, *domain.Customer, *domain.Customer) {}

func (nopNotifier) NewCustomer(context.Context, *domain.Customer) {}

func (nopNotifier) BookingConfirmed(context.Context, *domain.Customer, *domain.Appointment) {}

func (nopNotifier) BookingCancelled(context.Context, *domain.Customer, *domain.Appointment, domain.Refund) {}

func (nopNotifier) AppointmentCompleted(context.Context, *domain.Customer, *domain.Appointment, int) {}

func (nopNotifier) ReferralBonus(context.Context, *domain.Customer, int) {}

// ledgerBalance сумма изменений из журнала плюс стартовые баллы, которые в журнал не пишутся
func ledgerBalance(t *testing.T, store *memory.Store, customerID int64) int {
	t.Helper()
	history, err := store.Points().ListByCustomer(context.Background(), customerID, 0)
	require.NoError(t, err)

	sum := domain.InitialPoints
	for _, h := range history {
		sum += h.Difference
	}
	return sum
}

func balance(t *testing.T, store *memory.Store, customerID int64) int {
	t.Helper()
	c, err := store.Customers().GetByID(context.Background(), customerID)
	require.NoError(t, err)
	return c.Points
}

func TestLifecycle_LedgerMatchesBalance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	var m *metrics.Metrics

	register := registerCustomer.NewUseCase(store.Customers(), store.TxManager(), nopNotifier{}, nopLogger{}).
		WithHasher(registerCustomer.BcryptHasher{Cost: bcrypt.MinCost})
	book := createBooking.NewUseCase(store.Customers(), store.Appointments(), store.Points(), store.Catalog(),
		store.Salon(), store.TxManager(), nopNotifier{}, m, nopLogger{})
	cancel := cancelBooking.NewUseCase(store.Appointments(), store.Customers(), store.Points(), store.TxManager(),
		nopNotifier{}, m, nopLogger{})
	complete := completeAppointment.NewUseCase(store.Appointments(), store.Customers(), store.Points(), store.TxManager(),
		nopNotifier{}, m, nopLogger{})

	referrer, err := register.Execute(ctx, &registerCustomer.Request{Name: "Olga", Phone: "+79990000001", Password: "secret1"})
	require.NoError(t, err)
	referred, err := register.Execute(ctx, &registerCustomer.Request{
		Name: "Irina", Phone: "+79990000002", Password: "secret1",
		ReferralCode: ptr.Ptr(referrer.Customer.ReferralCode),
	})
	require.NoError(t, err)

	customerID, referrerID := referred.Customer.ID, referrer.Customer.ID
	date := domain.DateOnly(time.Now().AddDate(0, 0, 7))

	check := func(step string, want int) {
		t.Helper()
		assert.Equal(t, want, balance(t, store, customerID), step)
		assert.Equal(t, balance(t, store, customerID), ledgerBalance(t, store, customerID), step)
		assert.Equal(t, balance(t, store, referrerID), ledgerBalance(t, store, referrerID), step)
	}
	check("registered", 10)

	first, err := book.Execute(ctx, &createBooking.Request{CustomerID: customerID, Date: date, StartTime: "10:00"})
	require.NoError(t, err)
	check("booked", 0)

	cancelled, err := cancel.Execute(ctx, &cancelBooking.Request{
		AppointmentID: first.Appointment.ID, Actor: domain.ActorCustomer, CustomerID: customerID,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FullRefund, cancelled.Refund.Points)
	check("cancelled", 10)

	second, err := book.Execute(ctx, &createBooking.Request{CustomerID: customerID, Date: date, StartTime: "10:00"})
	require.NoError(t, err)
	check("rebooked", 0)

	done, err := complete.Execute(ctx, &completeAppointment.Request{AppointmentID: second.Appointment.ID})
	require.NoError(t, err)
	assert.Equal(t, 20, done.Reward)
	assert.Equal(t, 10, done.ReferralReward)
	check("completed", 20)

	assert.Equal(t, 20, balance(t, store, referrerID))
}
