package adjust_points

import (
	"context"

	adjustPoints "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_points"
)

type AdjustPointsUseCase interface {
	Execute(ctx context.Context, req *adjustPoints.Request) (*adjustPoints.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
