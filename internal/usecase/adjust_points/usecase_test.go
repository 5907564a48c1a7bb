package adjust_points

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type nopMetrics struct{}

func (nopMetrics) PointsChange(string, int) {}

type recordingNotifier struct {
	entries []*domain.PointsHistory
}

func (n *recordingNotifier) PointsUpdated(_ context.Context, _ *domain.Customer, entry *domain.PointsHistory) {
	n.entries = append(n.entries, entry)
}

func setup(t *testing.T) (*UseCase, *memory.Store, *recordingNotifier, *domain.Customer) {
	t.Helper()
	store := memory.NewStore()
	c, err := store.Customers().Create(context.Background(), &domain.Customer{
		Name: "Anna", Phone: "+79990000001", Points: 10, ReferralCode: "ANNA0001",
	})
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	uc := NewUseCase(store.Customers(), store.Points(), store.TxManager(), notifier, nopMetrics{}, nopLogger{})
	return uc, store, notifier, c
}

func TestExecute_WritesDifference(t *testing.T) {
	uc, store, notifier, c := setup(t)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, &Request{CustomerID: c.ID, NewPoints: 35})
	require.NoError(t, err)
	require.NotNil(t, resp.Entry)
	assert.Equal(t, 25, resp.Entry.Difference)
	assert.Equal(t, DefaultReason, resp.Entry.Reason)
	assert.Equal(t, domain.ActorAdmin, resp.Entry.ChangedBy)

	resp, err = uc.Execute(ctx, &Request{CustomerID: c.ID, NewPoints: 5, Reason: ptr.Ptr("correction")})
	require.NoError(t, err)
	assert.Equal(t, -30, resp.Entry.Difference)
	assert.Equal(t, "correction", resp.Entry.Reason)

	stored, err := store.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Points)

	history, err := store.Points().ListByCustomer(ctx, c.ID, 0)
	require.NoError(t, err)
	sum := domain.InitialPoints
	for _, e := range history {
		assert.True(t, e.IsConsistent())
		sum += e.Difference
	}
	assert.Equal(t, stored.Points, sum)
	assert.Len(t, notifier.entries, 2)
}

func TestExecute_NoOpWhenUnchanged(t *testing.T) {
	uc, store, notifier, c := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{CustomerID: c.ID, NewPoints: 10})
	require.NoError(t, err)
	assert.Nil(t, resp.Entry)

	history, err := store.Points().ListByCustomer(context.Background(), c.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
	assert.Empty(t, notifier.entries)
}

func TestExecute_Errors(t *testing.T) {
	uc, _, _, c := setup(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{CustomerID: c.ID, NewPoints: -1})
	assert.ErrorIs(t, err, ErrInvalidPoints)

	_, err = uc.Execute(ctx, &Request{CustomerID: 404, NewPoints: 1})
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = uc.Execute(ctx, &Request{NewPoints: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
