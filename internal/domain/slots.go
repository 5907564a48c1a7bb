package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Slot свободный интервал [Start, End) для записи
type Slot struct {
	Start types.TimeString
	End   types.TimeString
}

// SlotQuery входные данные генератора слотов
// Настройки и записи передаются явно, генератор не ходит в хранилище
type SlotQuery struct {
	Date            time.Time
	DurationMinutes int
	Settings        *SalonSettings
	OffDays         OffDays
	Appointments    []*Appointment
}

// interval полуоткрытый интервал в минутах от полуночи
type interval struct {
	start, end int
}

func (i interval) overlaps(other interval) bool {
	return !(i.end <= other.start || i.start >= other.end)
}

// GenerateSlots перечисляет свободные слоты на дату по возрастанию времени начала
//
// Кандидаты идут с шагом SlotStepMinutes от начала рабочего дня до (конец - длительность).
// Кандидат отбрасывается, только если пересекается с занятым интервалом активной записи.
// Занятый интервал продлевается на BufferMinutes из настроек.
func GenerateSlots(q SlotQuery) []Slot {
	slots := make([]Slot, 0)

	if q.DurationMinutes <= 0 || q.OffDays.Matches(q.Date) {
		return slots
	}

	settings := q.Settings
	if settings == nil {
		settings = DefaultSalonSettings()
	}

	dayStart, dayEnd := settings.WorkingWindow()
	busy := busyIntervals(q.Date, q.Appointments, settings.BufferMinutes)

	for start := dayStart; start+q.DurationMinutes <= dayEnd; start += SlotStepMinutes {
		candidate := interval{start: start, end: start + q.DurationMinutes}
		if overlapsAny(candidate, busy) {
			continue
		}

		slotStart, err := types.NewTimeStringFromMinutes(candidate.start)
		if err != nil {
			continue
		}
		slotEnd, err := types.NewTimeStringFromMinutes(candidate.end)
		if err != nil {
			continue
		}
		slots = append(slots, Slot{Start: slotStart, End: slotEnd})
	}

	return slots
}

// ContainsStart проверяет, что среди слотов есть слот с таким началом
func ContainsStart(slots []Slot, start types.TimeString) bool {
	for _, s := range slots {
		if s.Start == start {
			return true
		}
	}
	return false
}

// DropStarted убирает слоты, которые уже начались к моменту now
// Для будущих дат слоты не меняются, для прошедших - список пуст
func DropStarted(slots []Slot, date, now time.Time) []Slot {
	if IsDateInPast(date, now) {
		return make([]Slot, 0)
	}
	if !IsSameDay(date, now) {
		return slots
	}

	nowMinutes := now.Hour()*60 + now.Minute()
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		m, err := s.Start.Minutes()
		if err != nil || m <= nowMinutes {
			continue
		}
		result = append(result, s)
	}
	return result
}

func busyIntervals(date time.Time, appointments []*Appointment, buffer int) []interval {
	if buffer < 0 {
		buffer = 0
	}

	busy := make([]interval, 0, len(appointments))
	for _, apt := range appointments {
		if apt == nil || !apt.IsActive() || !IsSameDay(apt.Date, date) {
			continue
		}
		start, err := apt.StartTime.Minutes()
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: start + apt.DurationMinutes + buffer})
	}
	return busy
}

func overlapsAny(candidate interval, busy []interval) bool {
	for _, b := range busy {
		if candidate.overlaps(b) {
			return true
		}
	}
	return false
}
