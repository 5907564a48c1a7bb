package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// UseCase use case для календаря загрузки по дням
type UseCase struct {
	salonRepo    SalonRepository
	aptRepo      AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(salonRepo SalonRepository, aptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		salonRepo:    salonRepo,
		aptRepo:      aptRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute классифицирует каждый день диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}
	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	uc.logger.Info("GetCalendar: from=%s, to=%s", from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	settings, err := uc.salonRepo.GetSettings(ctx)
	if err != nil {
		if !errors.Is(err, salonRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetCalendar: failed to get settings: %v", err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		settings = domain.DefaultSalonSettings()
	}

	offDays, err := uc.salonRepo.ListOffDays(ctx)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list off-days: %v", err)
		return nil, fmt.Errorf("%w: failed to list off-days: %v", ErrInternal, err)
	}

	counts, err := uc.aptRepo.CountByDateRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to count appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to count appointments: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	resp := &Response{
		From:                 from,
		To:                   to,
		MaxDailyAppointments: settings.MaxDailyAppointments,
		Days:                 make([]Day, 0, daysBetween(from, to)+1),
	}
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		c := domain.ClassifyDay(date, now, offDays, counts[date.Format(domain.DateFormat)], settings.MaxDailyAppointments)
		resp.Days = append(resp.Days, Day{
			Date:        c.Date,
			Status:      c.Status,
			Label:       c.Label,
			BookedCount: c.BookedCount,
		})
	}

	return resp, nil
}
