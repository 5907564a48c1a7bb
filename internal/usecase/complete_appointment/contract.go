package complete_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// CustomerRepository интерфейс репозитория клиентов и приглашений
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	UpdatePoints(ctx context.Context, id int64, points int) error
	// GetPendingReferralByReferred в транзакции блокирует строку приглашения
	GetPendingReferralByReferred(ctx context.Context, referredID int64) (*domain.Referral, error)
	CompleteReferral(ctx context.Context, id int64, completedAt time.Time) error
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
	AppointmentCompleted(ctx context.Context, c *domain.Customer, apt *domain.Appointment, reward int)
	ReferralBonus(ctx context.Context, referrer *domain.Customer, reward int)
}

// Metrics доменные метрики начислений
type Metrics interface {
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
