package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrInvalidDuration возвращается, когда длительность вне 15-480 минут
	ErrInvalidDuration = errors.New("settings: appointment duration must be between 15 and 480 minutes")

	// ErrDuplicateOffDay возвращается при добавлении уже существующего правила
	ErrDuplicateOffDay = errors.New("settings: off-day rule already exists")

	// ErrOffDayNotFound возвращается, когда выходной не найден
	ErrOffDayNotFound = errors.New("settings: off-day not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings: internal error")
)
