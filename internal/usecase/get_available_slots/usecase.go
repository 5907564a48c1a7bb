package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// UseCase use case для получения свободных слотов на дату
// Слоты пересчитываются при каждом вызове и ничего не меняют в хранилище
type UseCase struct {
	salonRepo    SalonRepository
	serviceRepo  ServiceRepository
	aptRepo      AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	salonRepo SalonRepository,
	serviceRepo ServiceRepository,
	aptRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		salonRepo:    salonRepo,
		serviceRepo:  serviceRepo,
		aptRepo:      aptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}
	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 1. Настройки и выходные
	settings, err := uc.salonRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, salonRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSalonSettings()
	}

	offDays, err := uc.salonRepo.ListOffDays(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list off-days: %v", err)
		return nil, fmt.Errorf("%w: failed to list off-days: %v", ErrInternal, err)
	}

	// 2. Длительность
	duration, serviceName, err := uc.resolveDuration(ctx, req, settings)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		Date:            date,
		DurationMinutes: duration,
		ServiceName:     serviceName,
		OffDay:          offDays.Matches(date),
		Slots:           make([]Slot, 0),
	}
	if resp.OffDay {
		uc.logger.Info("GetAvailableSlots: %s is an off-day", date.Format(domain.DateFormat))
		return resp, nil
	}

	// 3. Активные записи на дату
	appointments, err := uc.aptRepo.ListByDate(ctx, date, domain.ActiveStatuses)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 4. Генерация и отсечение начавшихся слотов
	slots := domain.GenerateSlots(domain.SlotQuery{
		Date:            date,
		DurationMinutes: duration,
		Settings:        settings,
		OffDays:         offDays,
		Appointments:    appointments,
	})
	slots = domain.DropStarted(slots, date, uc.timeProvider.Now())

	for _, s := range slots {
		resp.Slots = append(resp.Slots, Slot{StartTime: s.Start, EndTime: s.End})
	}

	uc.logger.Info("GetAvailableSlots: %d slots of %d minutes on %s",
		len(resp.Slots), duration, date.Format(domain.DateFormat))
	return resp, nil
}

// resolveDuration определяет длительность и название услуги
// Неизвестная услуга не считается ошибкой: используется длительность из настроек
func (uc *UseCase) resolveDuration(ctx context.Context, req *Request, settings *domain.SalonSettings) (int, string, error) {
	if req.ServiceID != nil {
		svc, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		switch {
		case err == nil && svc.IsActive:
			return pickDuration(req, svc.DurationMinutes), svc.Name, nil
		case err != nil && !errors.Is(err, catalogRepo.ErrServiceNotFound):
			uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", *req.ServiceID, err)
			return 0, "", fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		uc.logger.Warn("GetAvailableSlots: service id=%d not found or inactive, using default duration", *req.ServiceID)
	}

	if req.ServiceName != nil && strings.TrimSpace(*req.ServiceName) != "" {
		svc, err := uc.serviceRepo.GetByName(ctx, *req.ServiceName)
		switch {
		case err == nil:
			return pickDuration(req, svc.DurationMinutes), svc.Name, nil
		case !errors.Is(err, catalogRepo.ErrServiceNotFound):
			uc.logger.Error("GetAvailableSlots: failed to get service %q: %v", *req.ServiceName, err)
			return 0, "", fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		return pickDuration(req, settings.AppointmentDuration), strings.TrimSpace(*req.ServiceName), nil
	}

	return pickDuration(req, settings.AppointmentDuration), domain.FallbackServiceName, nil
}

func pickDuration(req *Request, fallback int) int {
	if req.DurationMinutes != nil {
		return *req.DurationMinutes
	}
	return fallback
}
