package complete_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) PointsChange(string, int) {}

type recordingNotifier struct {
	completed []int64
	bonuses   []int64
}

func (n *recordingNotifier) AppointmentCompleted(_ context.Context, c *domain.Customer, _ *domain.Appointment, _ int) {
	n.completed = append(n.completed, c.ID)
}

func (n *recordingNotifier) ReferralBonus(_ context.Context, referrer *domain.Customer, _ int) {
	n.bonuses = append(n.bonuses, referrer.ID)
}

type fixture struct {
	store    *memory.Store
	uc       *UseCase
	notifier *recordingNotifier
	referrer *domain.Customer
	referred *domain.Customer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	referrer, err := store.Customers().Create(ctx, &domain.Customer{
		Name: "Olga", Phone: "+79990000001", Points: 10, ReferralCode: "OLGA0001",
	})
	require.NoError(t, err)
	referred, err := store.Customers().Create(ctx, &domain.Customer{
		Name: "Irina", Phone: "+79990000002", Points: 0, ReferralCode: "IRINA001", ReferredBy: &referrer.ID,
	})
	require.NoError(t, err)
	_, err = store.Customers().CreateReferral(ctx, &domain.Referral{
		ReferrerID: referrer.ID, ReferredID: referred.ID, Code: referrer.ReferralCode, Status: domain.ReferralPending,
	})
	require.NoError(t, err)

	f := &fixture{store: store, notifier: &recordingNotifier{}, referrer: referrer, referred: referred}
	f.uc = NewUseCase(store.Appointments(), store.Customers(), store.Points(), store.TxManager(), f.notifier, nopMetrics{}, nopLogger{})
	return f
}

func (f *fixture) appointment(t *testing.T, customerID int64, start string) *domain.Appointment {
	t.Helper()
	apt, err := domain.NewAppointment(customerID, nil, "Haircut",
		time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), types.TimeString(start), 60)
	require.NoError(t, err)
	apt, err = f.store.Appointments().Create(context.Background(), apt)
	require.NoError(t, err)
	return apt
}

func (f *fixture) balance(t *testing.T, id int64) int {
	t.Helper()
	c, err := f.store.Customers().GetByID(context.Background(), id)
	require.NoError(t, err)
	return c.Points
}

func TestExecute_AwardsCompletionAndReferralOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.appointment(t, f.referred.ID, "10:00")
	second := f.appointment(t, f.referred.ID, "12:00")

	resp, err := f.uc.Execute(ctx, &Request{AppointmentID: first.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, resp.Appointment.Status)
	assert.Equal(t, 20, resp.Reward)
	assert.Equal(t, 10, resp.ReferralReward)
	assert.Equal(t, 20, f.balance(t, f.referred.ID))
	assert.Equal(t, 20, f.balance(t, f.referrer.ID))

	resp, err = f.uc.Execute(ctx, &Request{AppointmentID: second.ID})
	require.NoError(t, err)
	assert.Zero(t, resp.ReferralReward)
	assert.Nil(t, resp.Referrer)
	assert.Equal(t, 40, f.balance(t, f.referred.ID))
	assert.Equal(t, 20, f.balance(t, f.referrer.ID), "referral bonus is paid once")

	referrals := f.store.Customers().Referrals()
	require.Len(t, referrals, 1)
	assert.Equal(t, domain.ReferralCompleted, referrals[0].Status)
	assert.NotNil(t, referrals[0].CompletedAt)

	history, err := f.store.Points().ListByCustomer(ctx, f.referrer.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Referral bonus for Irina", history[0].Reason)
	assert.Equal(t, domain.ActorSystem, history[0].ChangedBy)

	history, err = f.store.Points().ListByCustomer(ctx, f.referred.ID, 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Appointment completion: Haircut", history[0].Reason)

	assert.Equal(t, []int64{f.referred.ID, f.referred.ID}, f.notifier.completed)
	assert.Equal(t, []int64{f.referrer.ID}, f.notifier.bonuses)
}

func TestExecute_WithoutReferral(t *testing.T) {
	f := newFixture(t)
	apt := f.appointment(t, f.referrer.ID, "10:00")

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: apt.ID})
	require.NoError(t, err)
	assert.Zero(t, resp.ReferralReward)
	assert.Equal(t, 30, f.balance(t, f.referrer.ID))
	assert.Empty(t, f.notifier.bonuses)
}

func TestExecute_InvalidTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apt := f.appointment(t, f.referred.ID, "10:00")

	_, err := f.uc.Execute(ctx, &Request{AppointmentID: apt.ID})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, &Request{AppointmentID: apt.ID})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 20, f.balance(t, f.referred.ID))

	cancelled := f.appointment(t, f.referred.ID, "15:00")
	require.NoError(t, f.store.Appointments().UpdateStatus(ctx, cancelled.ID, domain.StatusCancelled))
	_, err = f.uc.Execute(ctx, &Request{AppointmentID: cancelled.ID})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.uc.Execute(ctx, &Request{AppointmentID: 9999})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = f.uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RollbackKeepsReferralPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	apt := f.appointment(t, f.referred.ID, "10:00")

	// первая запись журнала (клиенту) проходит, вторая (пригласившему) падает
	calls := 0
	f.uc.pointsRepo = failingAppend{next: f.store.Points(), failAt: 2, calls: &calls}

	_, err := f.uc.Execute(ctx, &Request{AppointmentID: apt.ID})
	require.ErrorIs(t, err, ErrInternal)

	stored, err := f.store.Appointments().GetByID(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, stored.Status)
	assert.Zero(t, f.balance(t, f.referred.ID))
	assert.Equal(t, 10, f.balance(t, f.referrer.ID))
	assert.Equal(t, domain.ReferralPending, f.store.Customers().Referrals()[0].Status)
	assert.Empty(t, f.notifier.completed)
}

type failingAppend struct {
	next   PointsRepository
	failAt int
	calls  *int
}

func (f failingAppend) Append(ctx context.Context, entry *domain.PointsHistory) (*domain.PointsHistory, error) {
	*f.calls++
	if *f.calls == f.failAt {
		return nil, errors.New("disk full")
	}
	return f.next.Append(ctx, entry)
}
