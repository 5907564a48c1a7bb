package register_customer

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов и приглашений
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	GetByReferralCode(ctx context.Context, code string) (*domain.Customer, error)
	ExistsReferralCode(ctx context.Context, code string) (bool, error)
	CreateReferral(ctx context.Context, ref *domain.Referral) (*domain.Referral, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier отправляет уведомления после коммита
type Notifier interface {
	NewReferral(ctx context.Context, referrer, newcomer *domain.Customer)
	NewCustomer(ctx context.Context, c *domain.Customer)
}

// CodeGenerator генератор реферальных кодов
type CodeGenerator interface {
	Generate() (string, error)
}

// PasswordHasher хэширует пароль
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
