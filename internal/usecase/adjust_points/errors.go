package adjust_points

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("adjust_points: invalid input data")

	// ErrInvalidPoints возвращается для отрицательного баланса
	ErrInvalidPoints = errors.New("adjust_points: points cannot be negative")

	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("adjust_points: customer not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("adjust_points: internal error")
)
