package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	// GetByID в транзакции блокирует строку клиента (FOR UPDATE)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	UpdatePoints(ctx context.Context, id int64, points int) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	ListByDate(ctx context.Context, date time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error)
	CountByDate(ctx context.Context, date time.Time) (int, error)
}

// PointsRepository интерфейс журнала баллов
type PointsRepository interface {
	Append(ctx context.Context, entry *domain.PointsHistory) (*domain.PointsHistory, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByName(ctx context.Context, name string) (*domain.Service, error)
}

// SalonRepository интерфейс репозитория настроек и выходных
type SalonRepository interface {
	// GetSettings в транзакции блокирует единственную строку настроек
	GetSettings(ctx context.Context) (*domain.SalonSettings, error)
	ListOffDays(ctx context.Context) (domain.OffDays, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомления после коммита
type Notifier interface {
	BookingConfirmed(ctx context.Context, c *domain.Customer, apt *domain.Appointment)
}

// Metrics доменные метрики записи
type Metrics interface {
	BookingCreated()
	BookingRejected(reason string)
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
