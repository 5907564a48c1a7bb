package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис настроек салона и выходных дней
type Service struct {
	salonRepo SalonRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(salonRepo SalonRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// EnsureDefaults создает настройки по умолчанию, если их ещё нет
// Вызывается при старте, после этого запись настроек всегда существует
func (s *Service) EnsureDefaults(ctx context.Context) (*domain.SalonSettings, error) {
	var result *domain.SalonSettings

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		settings, err := s.load(txCtx)
		if err != nil {
			return err
		}
		result = settings
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Get возвращает настройки салона
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.EnsureDefaults(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(settings), nil
}

// Update изменяет настройки салона
// Проверяется итоговое состояние: длительность 15-480, лимит >= 0, часы HH:MM и начало раньше конца, буфер 0-120
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating salon settings")

	var result *domain.SalonSettings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		settings, err := s.load(txCtx)
		if err != nil {
			return err
		}

		applyUpdate(settings, req)
		if err := validateSettings(settings); err != nil {
			s.logger.Warn("UpdateSettings: validation failed: %v", err)
			return err
		}

		if err := s.salonRepo.UpdateSettings(txCtx, settings); err != nil {
			s.logger.Error("UpdateSettings: repository error: %v", err)
			return fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
		}

		result = settings
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateSettings: settings updated, max=%d, duration=%d, hours=%s-%s, buffer=%d",
		result.MaxDailyAppointments, result.AppointmentDuration, result.WorkingHoursStart, result.WorkingHoursEnd, result.BufferMinutes)
	return models.FromDomainSettings(result), nil
}

// ListOffDays возвращает все правила выходных
func (s *Service) ListOffDays(ctx context.Context) (*models.OffDayListResponse, error) {
	days, err := s.salonRepo.ListOffDays(ctx)
	if err != nil {
		s.logger.Error("ListOffDays: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOffDays - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainOffDays(days), nil
}

// AddOffDay добавляет правило выходного
func (s *Service) AddOffDay(ctx context.Context, req *models.CreateOffDayRequest) (*models.OffDayResponse, error) {
	s.logger.Info("AddOffDay: type=%s", req.Type)

	rule, err := ruleFromRequest(req)
	if err != nil {
		s.logger.Warn("AddOffDay: invalid rule: %v", err)
		return nil, err
	}

	var description *string
	if req.Description != nil {
		if d := strings.TrimSpace(*req.Description); d != "" {
			description = &d
		}
	}

	existing, err := s.salonRepo.ListOffDays(ctx)
	if err != nil {
		s.logger.Error("AddOffDay: failed to list off-days: %v", err)
		return nil, fmt.Errorf("%w: AddOffDay - list off-days: %v", ErrInternal, err)
	}
	if existing.Contains(rule) {
		s.logger.Warn("AddOffDay: rule %s already exists", rule)
		return nil, ErrDuplicateOffDay
	}

	created, err := s.salonRepo.CreateOffDay(ctx, &domain.OffDay{Rule: rule, Description: description})
	if err != nil {
		if errors.Is(err, salonRepo.ErrOffDayExists) {
			s.logger.Warn("AddOffDay: rule %s already exists", rule)
			return nil, ErrDuplicateOffDay
		}
		s.logger.Error("AddOffDay: repository error: %v", err)
		return nil, fmt.Errorf("%w: AddOffDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddOffDay: created off-day id=%d (%s)", created.ID, rule)
	resp := models.FromDomainOffDay(created)
	return &resp, nil
}

// DeleteOffDay удаляет правило выходного
func (s *Service) DeleteOffDay(ctx context.Context, id int64) error {
	s.logger.Info("DeleteOffDay: id=%d", id)

	if err := s.salonRepo.DeleteOffDay(ctx, id); err != nil {
		if errors.Is(err, salonRepo.ErrOffDayNotFound) {
			s.logger.Warn("DeleteOffDay: off-day id=%d not found", id)
			return ErrOffDayNotFound
		}
		s.logger.Error("DeleteOffDay: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteOffDay - repository error: %v", ErrInternal, err)
	}

	return nil
}

// load читает настройки, создавая запись по умолчанию при первом обращении
func (s *Service) load(ctx context.Context) (*domain.SalonSettings, error) {
	settings, err := s.salonRepo.GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, salonRepo.ErrSettingsNotFound) {
		s.logger.Error("Settings: failed to read settings: %v", err)
		return nil, fmt.Errorf("%w: read settings: %v", ErrInternal, err)
	}

	created, err := s.salonRepo.CreateSettings(ctx, domain.DefaultSalonSettings())
	if err != nil {
		s.logger.Error("Settings: failed to create default settings: %v", err)
		return nil, fmt.Errorf("%w: create default settings: %v", ErrInternal, err)
	}

	s.logger.Info("Settings: created default settings id=%d", created.ID)
	return created, nil
}

func applyUpdate(settings *domain.SalonSettings, req *models.UpdateSettingsRequest) {
	if req.BusinessName != nil {
		settings.BusinessName = strings.TrimSpace(*req.BusinessName)
	}
	if req.MaxDailyAppointments != nil {
		settings.MaxDailyAppointments = *req.MaxDailyAppointments
	}
	if req.AppointmentDuration != nil {
		settings.AppointmentDuration = *req.AppointmentDuration
	}
	if req.WorkingHoursStart != nil {
		settings.WorkingHoursStart = strings.TrimSpace(*req.WorkingHoursStart)
	}
	if req.WorkingHoursEnd != nil {
		settings.WorkingHoursEnd = strings.TrimSpace(*req.WorkingHoursEnd)
	}
	if req.BufferMinutes != nil {
		settings.BufferMinutes = *req.BufferMinutes
	}
	if req.TelegramBotToken != nil {
		settings.TelegramBotToken = strings.TrimSpace(*req.TelegramBotToken)
	}
	if req.TelegramChatID != nil {
		settings.TelegramChatID = strings.TrimSpace(*req.TelegramChatID)
	}
}

func validateSettings(s *domain.SalonSettings) error {
	if s.BusinessName == "" {
		return fmt.Errorf("%w: business name is required", ErrInvalidInput)
	}
	if !domain.IsValidDuration(s.AppointmentDuration) {
		return ErrInvalidDuration
	}
	if s.MaxDailyAppointments < 0 {
		return fmt.Errorf("%w: max daily appointments must not be negative", ErrInvalidInput)
	}
	if s.BufferMinutes < 0 || s.BufferMinutes > domain.MaxBufferMinutes {
		return fmt.Errorf("%w: buffer must be between 0 and %d minutes", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	start, err := types.TimeString(s.WorkingHoursStart).Minutes()
	if err != nil {
		return fmt.Errorf("%w: working hours start: %v", ErrInvalidInput, err)
	}
	end, err := types.TimeString(s.WorkingHoursEnd).Minutes()
	if err != nil {
		return fmt.Errorf("%w: working hours end: %v", ErrInvalidInput, err)
	}
	if start >= end {
		return fmt.Errorf("%w: working hours start must be before end", ErrInvalidInput)
	}
	return nil
}

func ruleFromRequest(req *models.CreateOffDayRequest) (domain.OffDayRule, error) {
	switch domain.OffDayKind(strings.ToLower(strings.TrimSpace(req.Type))) {
	case domain.OffDayWeekly:
		if req.DayOfWeek == nil {
			return nil, fmt.Errorf("%w: dayOfWeek is required for weekly off-day", ErrInvalidInput)
		}
		rule, err := domain.NewWeeklyOffDay(*req.DayOfWeek)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return rule, nil
	case domain.OffDaySpecific:
		if req.Date == nil {
			return nil, fmt.Errorf("%w: date is required for specific off-day", ErrInvalidInput)
		}
		date, err := time.Parse(domain.DateFormat, strings.TrimSpace(*req.Date))
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
		rule, err := domain.NewSpecificOffDay(date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return rule, nil
	default:
		return nil, fmt.Errorf("%w: type must be weekly or specific", ErrInvalidInput)
	}
}
