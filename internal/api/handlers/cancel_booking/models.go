package cancel_booking

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	cancelBooking "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_booking"
)

// CancelBookingRequest HTTP request model, тело опционально
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Appointment    models.AppointmentResponse `json:"appointment"`
	RefundedPoints int                        `json:"refundedPoints"`
	LateCancel     bool                       `json:"lateCancel"`
	PointsBalance  int                        `json:"pointsBalance"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CancelBookingRequest) ToUseCaseRequest(appointmentID int64, actor domain.Actor, customerID int64) *cancelBooking.Request {
	return &cancelBooking.Request{
		AppointmentID: appointmentID,
		Actor:         actor,
		CustomerID:    customerID,
		Reason:        r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelBooking.Response) *CancelBookingResponse {
	return &CancelBookingResponse{
		Appointment:    models.FromDomainAppointment(resp.Appointment),
		RefundedPoints: resp.Refund.Points,
		LateCancel:     resp.Refund.Late,
		PointsBalance:  resp.PointsBalance,
	}
}
