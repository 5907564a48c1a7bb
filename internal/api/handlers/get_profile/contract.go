package get_profile

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

type CustomerService interface {
	Profile(ctx context.Context, customerID int64) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
