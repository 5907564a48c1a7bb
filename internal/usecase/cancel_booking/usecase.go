package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// UseCase use case для отмены записи клиентом или администратором
type UseCase struct {
	aptRepo      AppointmentRepository
	customerRepo CustomerRepository
	pointsRepo   PointsRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	aptRepo AppointmentRepository,
	customerRepo CustomerRepository,
	pointsRepo PointsRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		aptRepo:      aptRepo,
		customerRepo: customerRepo,
		pointsRepo:   pointsRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет отмену записи
// Клиент может отменить только свою запись, администратор любую активную
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: appointment=%d, actor=%s, customer=%d", req.AppointmentID, req.Actor, req.CustomerID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		return nil, err
	}
	reason := normalizeReason(req.Reason)

	var (
		apt      *domain.Appointment
		customer *domain.Customer
		refund   domain.Refund
	)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Запись с блокировкой
		a, err := uc.aptRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CancelBooking: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CancelBooking: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2. Права и статус
		if req.Actor == domain.ActorCustomer && a.CustomerID != req.CustomerID {
			uc.logger.Warn("CancelBooking: customer=%d is not the owner of appointment id=%d", req.CustomerID, a.ID)
			return fmt.Errorf("%w: appointment belongs to another customer", ErrNotCancellable)
		}
		if !a.CanBeCancelled() {
			uc.logger.Warn("CancelBooking: appointment id=%d has status %s", a.ID, a.Status)
			return ErrNotCancellable
		}

		// 3. Клиент с блокировкой
		c, err := uc.customerRepo.GetByID(txCtx, a.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Error("CancelBooking: owner id=%d of appointment id=%d is missing", a.CustomerID, a.ID)
			}
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}

		// 4. Возврат считается от времени начала, затем запись отменяется
		now := uc.timeProvider.Now()
		refund = domain.RefundFor(a, req.Actor, now)
		a.Cancel(now, req.Actor, reason)
		if err := uc.aptRepo.Cancel(txCtx, a); err != nil {
			uc.logger.Error("CancelBooking: failed to cancel appointment id=%d: %v", a.ID, err)
			return fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
		}

		// 5. Возврат баллов и журнал
		entry, err := c.ApplyPoints(refund.Points, refund.Reason, req.Actor)
		if err != nil {
			return fmt.Errorf("%w: failed to apply refund: %v", ErrInternal, err)
		}
		if err := uc.customerRepo.UpdatePoints(txCtx, c.ID, c.Points); err != nil {
			uc.logger.Error("CancelBooking: failed to update points for customer id=%d: %v", c.ID, err)
			return fmt.Errorf("%w: failed to update points: %v", ErrInternal, err)
		}
		if _, err := uc.pointsRepo.Append(txCtx, entry); err != nil {
			uc.logger.Error("CancelBooking: failed to write points history: %v", err)
			return fmt.Errorf("%w: failed to write points history: %v", ErrInternal, err)
		}

		apt, customer = a, c
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CancelBooking: appointment id=%d cancelled by %s, refund=%d, late=%t",
		apt.ID, req.Actor, refund.Points, refund.Late)
	uc.metrics.AppointmentCancelled(string(req.Actor), refund.Points)
	uc.metrics.PointsChange("refund", refund.Points)

	uc.notifier.BookingCancelled(ctx, customer, apt, refund)

	return &Response{
		Appointment:   apt,
		Refund:        refund,
		PointsBalance: customer.Points,
	}, nil
}
