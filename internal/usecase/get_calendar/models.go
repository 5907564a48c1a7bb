package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса календаря
// Границы включаются, From == To даёт один день
type Request struct {
	From time.Time
	To   time.Time
}

// Response модель ответа с классификацией дней
type Response struct {
	From                 time.Time
	To                   time.Time
	MaxDailyAppointments int
	Days                 []Day
}

// Day модель дня календаря
type Day struct {
	Date        time.Time
	Status      domain.DayStatus
	Label       string
	BookedCount int
}
