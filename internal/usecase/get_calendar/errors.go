package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrRangeTooLong возвращается, когда диапазон длиннее 62 дней
	ErrRangeTooLong = errors.New("get_calendar: date range is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
