package cancel_booking

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на отмену записи
type Request struct {
	AppointmentID int64        // ID записи
	Actor         domain.Actor // customer или admin
	CustomerID    int64        // ID клиента, обязателен для Actor = customer
	Reason        *string      // Причина отмены (опционально)
}

// Response модель ответа на отмену
type Response struct {
	Appointment   *domain.Appointment // Отменённая запись
	Refund        domain.Refund       // Возвращённые баллы
	PointsBalance int                 // Баланс клиента после возврата
}
