package domain

import "time"

// DayStatus статус дня в календаре записи
type DayStatus string

const (
	DayOffDay    DayStatus = "OFF_DAY"
	DayPast      DayStatus = "PAST"
	DayAvailable DayStatus = "AVAILABLE"
	DayLimited   DayStatus = "LIMITED"
	DayFewLeft   DayStatus = "FEW_LEFT"
	DayFull      DayStatus = "FULL"
)

var dayLabels = map[DayStatus]string{
	DayOffDay:    "Off day",
	DayPast:      "Past",
	DayAvailable: "Available",
	DayLimited:   "Limited",
	DayFewLeft:   "Few left",
	DayFull:      "Full",
}

// Label подпись статуса для отображения
func (s DayStatus) Label() string {
	return dayLabels[s]
}

// DayClassification результат классификации дня
type DayClassification struct {
	Date        time.Time
	Status      DayStatus
	Label       string
	BookedCount int
}

// ClassifyDay определяет статус дня
// bookedCount - число записей в статусах pending и confirmed на эту дату
func ClassifyDay(date, now time.Time, offDays OffDays, bookedCount, maxDaily int) DayClassification {
	status, count := classify(date, now, offDays, bookedCount, maxDaily)
	return DayClassification{
		Date:        DateOnly(date),
		Status:      status,
		Label:       status.Label(),
		BookedCount: count,
	}
}

func classify(date, now time.Time, offDays OffDays, bookedCount, maxDaily int) (DayStatus, int) {
	if offDays.Matches(date) {
		return DayOffDay, 0
	}
	if IsDateInPast(date, now) {
		return DayPast, 0
	}
	return occupancyStatus(bookedCount, maxDaily), bookedCount
}

// occupancyStatus пороги загрузки: <50% доступно, <80% ограничено, <100% мало мест
// Нулевой лимит считается всегда заполненным
func occupancyStatus(count, maxDaily int) DayStatus {
	if maxDaily <= 0 {
		return DayFull
	}
	if count == 0 {
		return DayAvailable
	}

	// Сравнение в целых числах: count/max < 0.5  <=>  2*count < max
	switch {
	case count*100 < maxDaily*50:
		return DayAvailable
	case count*100 < maxDaily*80:
		return DayLimited
	case count < maxDaily:
		return DayFewLeft
	default:
		return DayFull
	}
}
