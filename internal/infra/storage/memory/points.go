package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	pointsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/points"
)

// PointsRepository журнал баллов в памяти
type PointsRepository struct {
	s *Store
}

func (r *PointsRepository) Append(_ context.Context, entry *domain.PointsHistory) (*domain.PointsHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Points.Append"); err != nil {
		return nil, err
	}
	if !entry.IsConsistent() {
		return nil, fmt.Errorf("%w: %d -> %d, diff %d", pointsRepo.ErrInconsistentEntry, entry.OldPoints, entry.NewPoints, entry.Difference)
	}

	entry.ID = r.s.nextID()
	entry.CreatedAt = time.Now()
	r.s.state.history = append(r.s.state.history, cloneHistory(entry))
	return entry, nil
}

// ListByCustomer возвращает записи клиента, сначала новые
func (r *PointsRepository) ListByCustomer(_ context.Context, customerID int64, limit int) ([]*domain.PointsHistory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.PointsHistory, 0)
	for i := len(r.s.state.history) - 1; i >= 0; i-- {
		entry := r.s.state.history[i]
		if entry.CustomerID != customerID {
			continue
		}
		result = append(result, cloneHistory(entry))
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}
