package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service услуга салона
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	Price           decimal.NullDecimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsValidDuration проверяет длительность услуги
func IsValidDuration(minutes int) bool {
	return minutes >= MinServiceDuration && minutes <= MaxServiceDuration
}
