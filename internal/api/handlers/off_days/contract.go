package off_days

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

type SettingsService interface {
	ListOffDays(ctx context.Context) (*models.OffDayListResponse, error)
	AddOffDay(ctx context.Context, req *models.CreateOffDayRequest) (*models.OffDayResponse, error)
	DeleteOffDay(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
