package get_points_history

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

type CustomerService interface {
	PointsHistory(ctx context.Context, customerID int64, limit int) (*models.PointsHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
