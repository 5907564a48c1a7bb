package complete_appointment

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на завершение записи
type Request struct {
	AppointmentID int64
}

// Response модель ответа
type Response struct {
	Appointment    *domain.Appointment
	Customer       *domain.Customer
	Reward         int              // Начислено клиенту
	ReferralReward int              // Начислено пригласившему, 0 если бонуса не было
	Referrer       *domain.Customer // Пригласивший, если бонус начислен
}
