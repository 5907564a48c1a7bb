package customers

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не найден
	ErrCustomerNotFound = errors.New("customers: customer not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("customers: internal error")
)
