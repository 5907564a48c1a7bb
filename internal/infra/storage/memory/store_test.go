package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

var day = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func TestTxManager_RollsBackOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	c, err := store.Customers().Create(ctx, &domain.Customer{Name: "Ann", Phone: "1", ReferralCode: "AAAA1111", Points: 10})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.TxManager().Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, store.Customers().UpdatePoints(txCtx, c.ID, 0))
		_, err := store.Points().Append(txCtx, &domain.PointsHistory{CustomerID: c.ID, OldPoints: 10, NewPoints: 0, Difference: -10})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Customers().GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Points)

	history, err := store.Points().ListByCustomer(ctx, c.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestTxManager_NestedUsesOuterTransaction(t *testing.T) {
	store := NewStore()
	tx := store.TxManager()

	calls := 0
	err := tx.Do(context.Background(), func(ctx context.Context) error {
		return tx.Do(ctx, func(context.Context) error {
			calls++
			return nil
		})
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTxManager_SerializesTransactions(t *testing.T) {
	store := NewStore()
	tx := store.TxManager()

	var mu sync.Mutex
	active, maxActive := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				active++
				if active > maxActive {
					maxActive = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive)
}

func TestAppointments_UniqueActiveStart(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first, err := domain.NewAppointment(1, nil, "Cut", day, "10:00", 60)
	require.NoError(t, err)
	_, err = store.Appointments().Create(ctx, first)
	require.NoError(t, err)

	second, err := domain.NewAppointment(2, nil, "Cut", day, "10:00", 30)
	require.NoError(t, err)
	_, err = store.Appointments().Create(ctx, second)
	assert.ErrorIs(t, err, appointmentRepo.ErrSlotTaken)

	first.Cancel(time.Now(), domain.ActorCustomer, nil)
	require.NoError(t, store.Appointments().Cancel(ctx, first))

	_, err = store.Appointments().Create(ctx, second)
	assert.NoError(t, err)

	count, err := store.Appointments().CountByDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCustomers_UniquePhone(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.Customers().Create(ctx, &domain.Customer{Phone: "+60", ReferralCode: "AAAAAAAA"})
	require.NoError(t, err)

	_, err = store.Customers().Create(ctx, &domain.Customer{Phone: "+60", ReferralCode: "BBBBBBBB"})
	assert.ErrorIs(t, err, customerRepo.ErrPhoneExists)

	_, err = store.Customers().Create(ctx, &domain.Customer{Phone: "+61", ReferralCode: "AAAAAAAA"})
	assert.ErrorIs(t, err, customerRepo.ErrReferralCodeExists)
}

func TestFailOn_FiresOnce(t *testing.T) {
	store := NewStore()
	boom := errors.New("disk full")
	store.FailOn("Points.Append", boom)

	entry := &domain.PointsHistory{CustomerID: 1, OldPoints: 0, NewPoints: 5, Difference: 5}
	_, err := store.Points().Append(context.Background(), entry)
	assert.ErrorIs(t, err, boom)

	_, err = store.Points().Append(context.Background(), entry)
	assert.NoError(t, err)
}
