package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest проверяет границы диапазона
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	if days := daysBetween(from, to) + 1; days > domain.MaxCalendarRangeDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLong, days, domain.MaxCalendarRangeDays)
	}
	return nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
