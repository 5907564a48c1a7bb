package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInvalidDuration возвращается, когда длительность вне 15-480 минут
	ErrInvalidDuration = errors.New("get_available_slots: duration must be between 15 and 480 minutes")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
