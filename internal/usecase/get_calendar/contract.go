package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SalonRepository интерфейс репозитория настроек и выходных
type SalonRepository interface {
	GetSettings(ctx context.Context) (*domain.SalonSettings, error)
	ListOffDays(ctx context.Context) (domain.OffDays, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// CountByDateRange число активных записей по датам, ключ - дата YYYY-MM-DD
	CountByDateRange(ctx context.Context, from, to time.Time) (map[string]int, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
