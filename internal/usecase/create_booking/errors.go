package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("create_booking: customer not found")

	// ErrInsufficientPoints возвращается, когда у клиента меньше 10 баллов
	ErrInsufficientPoints = errors.New("create_booking: insufficient points")

	// ErrSlotUnavailable возвращается, когда выбранного начала нет среди свободных слотов
	ErrSlotUnavailable = errors.New("create_booking: slot unavailable")

	// ErrDayFullyBooked возвращается, когда достигнут дневной лимит записей
	ErrDayFullyBooked = errors.New("create_booking: day fully booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// Причины отказа для метрик
const (
	rejectInsufficientPoints = "insufficient_points"
	rejectSlotUnavailable    = "slot_unavailable"
	rejectDayFullyBooked     = "day_fully_booked"
)
