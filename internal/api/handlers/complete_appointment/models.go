package complete_appointment

import (
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	completeAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/complete_appointment"
)

// CompleteAppointmentResponse HTTP response model
type CompleteAppointmentResponse struct {
	Appointment    models.AppointmentResponse `json:"appointment"`
	Reward         int                        `json:"reward"`
	PointsBalance  int                        `json:"pointsBalance"`
	ReferralReward int                        `json:"referralReward"`
	ReferrerID     *int64                     `json:"referrerId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *completeAppointment.Response) *CompleteAppointmentResponse {
	out := &CompleteAppointmentResponse{
		Appointment:    models.FromDomainAppointment(resp.Appointment),
		Reward:         resp.Reward,
		PointsBalance:  resp.Customer.Points,
		ReferralReward: resp.ReferralReward,
	}
	if resp.Referrer != nil {
		id := resp.Referrer.ID
		out.ReferrerID = &id
	}
	return out
}
