package adjust_points

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	UpdatePoints(ctx context.Context, id int64, points int) error
}

// PointsRepository интерфейс журнала баллов
type PointsRepository interface {
	Append(ctx context.Context, entry *domain.PointsHistory) (*domain.PointsHistory, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомления после коммита
type Notifier interface {
	PointsUpdated(ctx context.Context, c *domain.Customer, entry *domain.PointsHistory)
}

// Metrics доменные метрики начислений
type Metrics interface {
	PointsChange(kind string, diff int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
