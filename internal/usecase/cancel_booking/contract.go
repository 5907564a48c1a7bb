package cancel_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByID в транзакции блокирует строку записи (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Cancel(ctx context.Context, apt *domain.Appointment) error
}

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
	BookingCancelled(ctx context.Context, c *domain.Customer, apt *domain.Appointment, refund domain.Refund)
}

// Metrics доменные метрики отмены
type Metrics interface {
	AppointmentCancelled(actor string, refund int)
	PointsChange(kind string, diff int)
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
