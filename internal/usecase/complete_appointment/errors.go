package complete_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("complete_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("complete_appointment: appointment not found")

	// ErrInvalidTransition возвращается для завершённых и отменённых записей
	ErrInvalidTransition = errors.New("complete_appointment: appointment is not pending or confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("complete_appointment: internal error")
)
