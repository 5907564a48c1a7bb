package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SalonSettings единственная запись настроек салона
// Часы работы хранятся строками: некорректное значение не ломает запись, а заменяется окном по умолчанию
type SalonSettings struct {
	ID                   int64
	BusinessName         string
	MaxDailyAppointments int
	AppointmentDuration  int
	WorkingHoursStart    string
	WorkingHoursEnd      string
	BufferMinutes        int
	TelegramBotToken     string
	TelegramChatID       string // канал администратора
	UpdatedAt            time.Time
}

// DefaultSalonSettings настройки, создаваемые при первом запуске
func DefaultSalonSettings() *SalonSettings {
	return &SalonSettings{
		BusinessName:         DefaultBusinessName,
		MaxDailyAppointments: DefaultMaxDailyAppointments,
		AppointmentDuration:  DefaultAppointmentDuration,
		WorkingHoursStart:    DefaultWorkingHoursStart,
		WorkingHoursEnd:      DefaultWorkingHoursEnd,
		BufferMinutes:        DefaultBufferMinutes,
	}
}

// WorkingWindow рабочее окно в минутах от полуночи
// Если часы не разбираются как HH:MM или начало не раньше конца, используется 09:00-18:00
func (s *SalonSettings) WorkingWindow() (start, end int) {
	start, errStart := types.TimeString(s.WorkingHoursStart).Minutes()
	end, errEnd := types.TimeString(s.WorkingHoursEnd).Minutes()
	if errStart != nil || errEnd != nil || start >= end {
		return defaultWindow()
	}
	return start, end
}

func defaultWindow() (int, int) {
	start, _ := types.TimeString(DefaultWorkingHoursStart).Minutes()
	end, _ := types.TimeString(DefaultWorkingHoursEnd).Minutes()
	return start, end
}
