package domain

import "time"

// Правила начисления и списания баллов
const (
	InitialPoints    = 10 // баллы при регистрации
	BookingCost      = 10 // списывается при записи
	FullRefund       = 10 // возврат при своевременной отмене и отмене администратором
	LateCancelRefund = 5  // возврат при отмене менее чем за LateCancelWindow
	CompletionReward = 20 // начисляется за завершённую запись
	ReferralReward   = 10 // начисляется пригласившему за первую завершённую запись приглашённого

	LateCancelWindow = 2 * time.Hour
)

// Настройки салона по умолчанию
const (
	DefaultBusinessName         = "HS Salon"
	DefaultMaxDailyAppointments = 10
	DefaultAppointmentDuration  = 60
	DefaultWorkingHoursStart    = "09:00"
	DefaultWorkingHoursEnd      = "18:00"
	DefaultBufferMinutes        = 0
)

// Ограничения валидации
const (
	MinServiceDuration   = 15
	MaxServiceDuration   = 480 // 8 часов
	MaxBufferMinutes     = 120
	MaxCalendarRangeDays = 62
	MaxReasonLength      = 255
	MinPasswordLength    = 6
)

const (
	// SlotStepMinutes шаг перебора начала слота, не зависит от длительности услуги
	SlotStepMinutes = 15

	// FallbackServiceName название записи, если услугу определить не удалось
	FallbackServiceName = "Appointment"

	ReferralCodeLength   = 8
	ReferralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, которые занимают слот и учитываются в дневной загрузке
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
