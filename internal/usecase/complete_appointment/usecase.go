package complete_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// UseCase use case для завершения записи администратором
// Начисляет баллы клиенту и, при первой завершённой записи приглашённого, бонус пригласившему
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

// Execute выполняет завершение записи в одной транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CompleteAppointment: appointment=%d", req.AppointmentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CompleteAppointment: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{}
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Запись с блокировкой и проверка перехода
		apt, err := uc.aptRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("CompleteAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("CompleteAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}
		if !apt.CanBeCompleted() {
			uc.logger.Warn("CompleteAppointment: appointment id=%d has status %s", apt.ID, apt.Status)
			return ErrInvalidTransition
		}

		if err := uc.aptRepo.UpdateStatus(txCtx, apt.ID, domain.StatusCompleted); err != nil {
			uc.logger.Error("CompleteAppointment: failed to update status of id=%d: %v", apt.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		apt.Status = domain.StatusCompleted

		// 2. Начисление клиенту
		customer, err := uc.credit(txCtx, apt.CustomerID, domain.CompletionReward,
			fmt.Sprintf("Appointment completion: %s", apt.ServiceName))
		if err != nil {
			return err
		}
		resp.Appointment, resp.Customer, resp.Reward = apt, customer, domain.CompletionReward

		// 3. Реферальный бонус, переход pending -> completed возможен один раз
		referral, err := uc.customerRepo.GetPendingReferralByReferred(txCtx, customer.ID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrReferralNotFound) {
				return nil
			}
			uc.logger.Error("CompleteAppointment: failed to get referral for customer id=%d: %v", customer.ID, err)
			return fmt.Errorf("%w: failed to get referral: %v", ErrInternal, err)
		}

		now := uc.timeProvider.Now()
		if err := referral.Complete(now); err != nil {
			uc.logger.Warn("CompleteAppointment: referral id=%d: %v", referral.ID, err)
			return nil
		}
		if err := uc.customerRepo.CompleteReferral(txCtx, referral.ID, now); err != nil {
			if errors.Is(err, customerRepo.ErrReferralNotFound) {
				uc.logger.Warn("CompleteAppointment: referral id=%d already completed", referral.ID)
				return nil
			}
			uc.logger.Error("CompleteAppointment: failed to complete referral id=%d: %v", referral.ID, err)
			return fmt.Errorf("%w: failed to complete referral: %v", ErrInternal, err)
		}

		referrer, err := uc.credit(txCtx, referral.ReferrerID, domain.ReferralReward,
			fmt.Sprintf("Referral bonus for %s", customer.Name))
		if err != nil {
			return err
		}
		resp.Referrer, resp.ReferralReward = referrer, domain.ReferralReward
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CompleteAppointment: appointment id=%d completed, customer=%d +%d, referral bonus=%d",
		resp.Appointment.ID, resp.Customer.ID, resp.Reward, resp.ReferralReward)
	uc.metrics.PointsChange("completion", resp.Reward)
	uc.notifier.AppointmentCompleted(ctx, resp.Customer, resp.Appointment, resp.Reward)
	if resp.Referrer != nil {
		uc.metrics.PointsChange("referral", resp.ReferralReward)
		uc.notifier.ReferralBonus(ctx, resp.Referrer, resp.ReferralReward)
	}

	return resp, nil
}

// credit начисляет баллы клиенту и пишет запись в журнал
func (uc *UseCase) credit(ctx context.Context, customerID int64, points int, reason string) (*domain.Customer, error) {
	c, err := uc.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		uc.logger.Error("CompleteAppointment: failed to get customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
	}

	entry, err := c.ApplyPoints(points, reason, domain.ActorSystem)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to apply points: %v", ErrInternal, err)
	}
	if err := uc.customerRepo.UpdatePoints(ctx, c.ID, c.Points); err != nil {
		uc.logger.Error("CompleteAppointment: failed to update points for customer id=%d: %v", c.ID, err)
		return nil, fmt.Errorf("%w: failed to update points: %v", ErrInternal, err)
	}
	if _, err := uc.pointsRepo.Append(ctx, entry); err != nil {
		uc.logger.Error("CompleteAppointment: failed to write points history: %v", err)
		return nil, fmt.Errorf("%w: failed to write points history: %v", ErrInternal, err)
	}
	return c, nil
}
