package adjust_points

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// UseCase use case для ручной установки баланса администратором
type UseCase struct {
	customerRepo CustomerRepository
	pointsRepo   PointsRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	pointsRepo PointsRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		pointsRepo:   pointsRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute устанавливает новый баланс и пишет разницу в журнал
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdjustPoints: customer=%d, new_points=%d", req.CustomerID, req.NewPoints)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdjustPoints: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		c, err := uc.customerRepo.GetByID(txCtx, req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("AdjustPoints: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("AdjustPoints: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		resp.Customer = c

		diff := req.NewPoints - c.Points
		if diff == 0 {
			return nil
		}

		entry, err := c.ApplyPoints(diff, reasonOrDefault(req.Reason), domain.ActorAdmin)
		if err != nil {
			return ErrInvalidPoints
		}
		if err := uc.customerRepo.UpdatePoints(txCtx, c.ID, c.Points); err != nil {
			uc.logger.Error("AdjustPoints: failed to update points for customer id=%d: %v", c.ID, err)
			return fmt.Errorf("%w: failed to update points: %v", ErrInternal, err)
		}
		created, err := uc.pointsRepo.Append(txCtx, entry)
		if err != nil {
			uc.logger.Error("AdjustPoints: failed to write points history: %v", err)
			return fmt.Errorf("%w: failed to write points history: %v", ErrInternal, err)
		}
		resp.Entry = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if resp.Entry == nil {
		uc.logger.Info("AdjustPoints: customer id=%d already has %d points", req.CustomerID, req.NewPoints)
		return resp, nil
	}

	uc.logger.Info("AdjustPoints: customer id=%d %d -> %d", resp.Customer.ID, resp.Entry.OldPoints, resp.Entry.NewPoints)
	uc.metrics.PointsChange("admin", resp.Entry.Difference)
	uc.notifier.PointsUpdated(ctx, resp.Customer, resp.Entry)

	return resp, nil
}
