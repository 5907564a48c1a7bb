package domain

import (
	"errors"
	"fmt"
	"time"
)

// OffDayKind тип правила выходного дня
type OffDayKind string

const (
	OffDayWeekly   OffDayKind = "weekly"
	OffDaySpecific OffDayKind = "specific"
)

// ErrInvalidOffDay возвращается для некорректного правила
var ErrInvalidOffDay = errors.New("domain: invalid off-day rule")

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// OffDayRule правило выходного: еженедельное или на конкретную дату
type OffDayRule interface {
	Kind() OffDayKind
	Matches(date time.Time) bool
	String() string
}

// WeeklyOffDay выходной каждую неделю, DayOfWeek: 0 - понедельник, 6 - воскресенье
type WeeklyOffDay struct {
	DayOfWeek int
}

// NewWeeklyOffDay создает еженедельное правило
func NewWeeklyOffDay(dayOfWeek int) (WeeklyOffDay, error) {
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return WeeklyOffDay{}, fmt.Errorf("%w: day of week %d is out of 0..6", ErrInvalidOffDay, dayOfWeek)
	}
	return WeeklyOffDay{DayOfWeek: dayOfWeek}, nil
}

func (w WeeklyOffDay) Kind() OffDayKind { return OffDayWeekly }

func (w WeeklyOffDay) Matches(date time.Time) bool {
	return WeekdayIndex(date) == w.DayOfWeek
}

func (w WeeklyOffDay) String() string {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Sprintf("Weekly off: day %d", w.DayOfWeek)
	}
	return "Weekly off: " + weekdayNames[w.DayOfWeek]
}

// SpecificOffDay выходной в конкретную дату
type SpecificOffDay struct {
	Date time.Time
}

// NewSpecificOffDay создает правило на дату
func NewSpecificOffDay(date time.Time) (SpecificOffDay, error) {
	if date.IsZero() {
		return SpecificOffDay{}, fmt.Errorf("%w: date is required", ErrInvalidOffDay)
	}
	return SpecificOffDay{Date: DateOnly(date)}, nil
}

func (s SpecificOffDay) Kind() OffDayKind { return OffDaySpecific }

func (s SpecificOffDay) Matches(date time.Time) bool {
	return IsSameDay(s.Date, date)
}

func (s SpecificOffDay) String() string {
	return "Specific off: " + s.Date.Format(DateFormat)
}

// OffDay выходной салона
type OffDay struct {
	ID          int64
	Rule        OffDayRule
	Description *string
	CreatedAt   time.Time
}

// OffDays набор правил выходных
type OffDays []*OffDay

// Matches проверяет, попадает ли дата под любое правило
func (o OffDays) Matches(date time.Time) bool {
	for _, day := range o {
		if day != nil && day.Rule != nil && day.Rule.Matches(date) {
			return true
		}
	}
	return false
}

// Contains проверяет, есть ли уже такое же правило
func (o OffDays) Contains(rule OffDayRule) bool {
	for _, day := range o {
		if day != nil && SameRule(day.Rule, rule) {
			return true
		}
	}
	return false
}

// SameRule сравнивает правила по типу и значению
func SameRule(a, b OffDayRule) bool {
	switch x := a.(type) {
	case WeeklyOffDay:
		y, ok := b.(WeeklyOffDay)
		return ok && x.DayOfWeek == y.DayOfWeek
	case SpecificOffDay:
		y, ok := b.(SpecificOffDay)
		return ok && IsSameDay(x.Date, y.Date)
	default:
		return false
	}
}

// WeekdayIndex номер дня недели, где 0 - понедельник
func WeekdayIndex(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}
