package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ErrInvalidAppointment возвращается при попытке собрать некорректную запись
var ErrInvalidAppointment = errors.New("domain: invalid appointment")

// ParseAppointmentStatus проверяет строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidAppointment, s)
	}
}

// Appointment запись клиента на определённое время
// EndTime вычисляется при создании как StartTime + DurationMinutes и больше не меняется
type Appointment struct {
	ID              int64
	CustomerID      int64
	ServiceID       *int64
	ServiceName     string // копия названия услуги на момент записи
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	PointsDeducted  int
	Status          AppointmentStatus

	CancelledAt        *time.Time
	CancelledBy        *Actor
	AdminCancelled     bool
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAppointment создает подтверждённую запись с вычисленным временем окончания
func NewAppointment(
	customerID int64,
	serviceID *int64,
	serviceName string,
	date time.Time,
	start types.TimeString,
	durationMinutes int,
) (*Appointment, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidAppointment)
	}
	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAppointment, err)
	}

	return &Appointment{
		CustomerID:      customerID,
		ServiceID:       serviceID,
		ServiceName:     serviceName,
		Date:            DateOnly(date),
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: durationMinutes,
		PointsDeducted:  BookingCost,
		Status:          StatusConfirmed,
	}, nil
}

// IsActive возвращает true, если запись занимает слот
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled возвращает true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.IsActive()
}

// CanBeCompleted возвращает true, если запись можно отметить выполненной
func (a *Appointment) CanBeCompleted() bool {
	return a.IsActive()
}

// StartsAt дата и время начала записи
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.StartTime.OnDate(a.Date)
}

// Cancel переводит запись в статус cancelled
func (a *Appointment) Cancel(at time.Time, by Actor, reason *string) {
	a.Status = StatusCancelled
	a.CancelledAt = &at
	a.CancelledBy = &by
	a.AdminCancelled = by == ActorAdmin
	a.CancellationReason = reason
}

// AppointmentFilter фильтр для выборки записей администратором
type AppointmentFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *AppointmentStatus
	CustomerID *int64
}

// DateOnly отбрасывает время, сохраняя часовой пояс
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что даты относятся к одному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата раньше сегодняшнего дня
// Сравниваются только календарные даты, часовые пояса игнорируются
func IsDateInPast(date, now time.Time) bool {
	return civil(date).Before(civil(now))
}

// WallClockIn переносит показания часов t в часовой пояс loc без пересчёта
// Время в системе наивное, поэтому дата из БД и текущее время сравниваются по циферблату
func WallClockIn(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
