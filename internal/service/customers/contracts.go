package customers

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// PointsRepository интерфейс журнала баллов
type PointsRepository interface {
	ListByCustomer(ctx context.Context, customerID int64, limit int) ([]*domain.PointsHistory, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
