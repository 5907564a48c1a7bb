package settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SalonRepository интерфейс репозитория настроек и выходных
type SalonRepository interface {
	GetSettings(ctx context.Context) (*domain.SalonSettings, error)
	CreateSettings(ctx context.Context, s *domain.SalonSettings) (*domain.SalonSettings, error)
	UpdateSettings(ctx context.Context, s *domain.SalonSettings) error
	ListOffDays(ctx context.Context) (domain.OffDays, error)
	CreateOffDay(ctx context.Context, day *domain.OffDay) (*domain.OffDay, error)
	DeleteOffDay(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
