package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// UseCase use case для записи клиента на время
type UseCase struct {
	customerRepo CustomerRepository
	aptRepo      AppointmentRepository
	pointsRepo   PointsRepository
	serviceRepo  ServiceRepository
	salonRepo    SalonRepository
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	aptRepo AppointmentRepository,
	pointsRepo PointsRepository,
	serviceRepo ServiceRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		aptRepo:      aptRepo,
		pointsRepo:   pointsRepo,
		serviceRepo:  serviceRepo,
		salonRepo:    salonRepo,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
//
// Все проверки повторяются внутри транзакции после блокировки строки настроек,
// поэтому параллельные записи на один день выполняются по очереди.
// Уникальный индекс по (дата, начало) для активных записей страхует от двойной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)
	uc.logger.Info("CreateBooking: customer=%d, date=%s, time=%s",
		req.CustomerID, date.Format(domain.DateFormat), req.StartTime)

	// 1. Услуга и длительность
	serviceID, serviceName, serviceDuration, err := uc.resolveService(ctx, req)
	if err != nil {
		return nil, err
	}

	var (
		customer *domain.Customer
		result   *domain.Appointment
	)

	// 2. Транзакция: блокировка настроек и клиента, проверки, списание, запись, журнал
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		settings, err := uc.salonRepo.GetSettings(txCtx)
		if err != nil {
			if !errors.Is(err, salonRepo.ErrSettingsNotFound) {
				uc.logger.Error("CreateBooking: failed to lock settings: %v", err)
				return fmt.Errorf("%w: failed to lock settings: %v", ErrInternal, err)
			}
			settings = domain.DefaultSalonSettings()
		}

		// 2.1. Клиент и баланс
		c, err := uc.customerRepo.GetByID(txCtx, req.CustomerID)
		if err != nil {
			if errors.Is(err, customerRepo.ErrCustomerNotFound) {
				uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
				return ErrCustomerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get customer id=%d: %v", req.CustomerID, err)
			return fmt.Errorf("%w: failed to get customer: %v", ErrInternal, err)
		}
		if !c.HasPointsFor(domain.BookingCost) {
			uc.logger.Warn("CreateBooking: customer id=%d has %d points, %d required", c.ID, c.Points, domain.BookingCost)
			return ErrInsufficientPoints
		}

		duration := serviceDuration
		if duration == 0 {
			duration = settings.AppointmentDuration
		}

		// 2.2. Слот должен быть среди свободных
		offDays, err := uc.salonRepo.ListOffDays(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list off-days: %v", err)
			return fmt.Errorf("%w: failed to list off-days: %v", ErrInternal, err)
		}
		appointments, err := uc.aptRepo.ListByDate(txCtx, date, domain.ActiveStatuses)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list appointments: %v", err)
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		slots := domain.GenerateSlots(domain.SlotQuery{
			Date:            date,
			DurationMinutes: duration,
			Settings:        settings,
			OffDays:         offDays,
			Appointments:    appointments,
		})
		slots = domain.DropStarted(slots, date, uc.timeProvider.Now())
		if !domain.ContainsStart(slots, req.StartTime) {
			uc.logger.Warn("CreateBooking: slot %s %s (%d min) is not available",
				date.Format(domain.DateFormat), req.StartTime, duration)
			return ErrSlotUnavailable
		}

		// 2.3. Дневной лимит
		count, err := uc.aptRepo.CountByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count appointments: %v", err)
			return fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
		}
		if count >= settings.MaxDailyAppointments {
			uc.logger.Warn("CreateBooking: day %s is fully booked, %d/%d",
				date.Format(domain.DateFormat), count, settings.MaxDailyAppointments)
			return ErrDayFullyBooked
		}

		// 2.4. Списание баллов, запись и журнал
		apt, err := domain.NewAppointment(c.ID, serviceID, serviceName, date, req.StartTime, duration)
		if err != nil {
			uc.logger.Warn("CreateBooking: invalid appointment: %v", err)
			return ErrSlotUnavailable
		}

		entry, err := c.ApplyPoints(-domain.BookingCost, fmt.Sprintf("Booking: %s", serviceName), domain.ActorCustomer)
		if err != nil {
			return ErrInsufficientPoints
		}
		if err := uc.customerRepo.UpdatePoints(txCtx, c.ID, c.Points); err != nil {
			uc.logger.Error("CreateBooking: failed to update points for customer id=%d: %v", c.ID, err)
			return fmt.Errorf("%w: failed to update points: %v", ErrInternal, err)
		}

		created, err := uc.aptRepo.Create(txCtx, apt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s %s was taken concurrently",
					date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotUnavailable
			}
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		if _, err := uc.pointsRepo.Append(txCtx, entry); err != nil {
			uc.logger.Error("CreateBooking: failed to write points history: %v", err)
			return fmt.Errorf("%w: failed to write points history: %v", ErrInternal, err)
		}

		customer, result = c, created
		return nil
	})
	if err != nil {
		uc.reject(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: created appointment id=%d for customer=%d, balance=%d",
		result.ID, customer.ID, customer.Points)
	uc.metrics.BookingCreated()
	uc.metrics.PointsChange("booking", -domain.BookingCost)

	// 3. Уведомления после коммита, ошибки не влияют на результат
	uc.notifier.BookingConfirmed(ctx, customer, result)

	return &Response{
		Appointment:   result,
		PointsBalance: customer.Points,
	}, nil
}

// resolveService определяет услугу: сначала по ID, потом по названию
// Нулевая длительность означает длительность из настроек
func (uc *UseCase) resolveService(ctx context.Context, req *Request) (*int64, string, int, error) {
	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		switch {
		case err == nil && svc.IsActive:
			return &svc.ID, svc.Name, svc.DurationMinutes, nil
		case err != nil && !errors.Is(err, catalogRepo.ErrServiceNotFound):
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, "", 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		// Отключенная услуга равносильна отсутствующей
		uc.logger.Warn("CreateBooking: service id=%d not found or inactive, trying name", *req.ServiceID)
	}

	if req.ServiceName != nil {
		name := strings.TrimSpace(*req.ServiceName)
		if name == "" {
			return nil, domain.FallbackServiceName, 0, nil
		}
		svc, err := uc.serviceRepo.GetByName(ctx, name)
		switch {
		case err == nil:
			return &svc.ID, svc.Name, svc.DurationMinutes, nil
		case !errors.Is(err, catalogRepo.ErrServiceNotFound):
			uc.logger.Error("CreateBooking: failed to get service %q: %v", name, err)
			return nil, "", 0, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		return nil, name, 0, nil
	}

	return nil, domain.FallbackServiceName, 0, nil
}

func (uc *UseCase) reject(err error) {
	switch {
	case errors.Is(err, ErrInsufficientPoints):
		uc.metrics.BookingRejected(rejectInsufficientPoints)
	case errors.Is(err, ErrSlotUnavailable):
		uc.metrics.BookingRejected(rejectSlotUnavailable)
	case errors.Is(err, ErrDayFullyBooked):
		uc.metrics.BookingRejected(rejectDayFullyBooked)
	}
}
