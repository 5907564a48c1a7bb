package complete_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	completeAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/complete_appointment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgNotFound             = "запись не найдена"
	msgInvalidTransition    = "завершить можно только ожидающую или подтверждённую запись"
)

type Handler struct {
	useCase CompleteAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CompleteAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/complete - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &completeAppointment.Request{AppointmentID: appointmentID})
	if err != nil {
		switch {
		case errors.Is(err, completeAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/complete - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, completeAppointment.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/appointments/{id}/complete - Invalid transition: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, completeAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidAppointmentID)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/complete - Failed to complete appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/complete - Appointment completed: appointment_id=%d, reward=%d, referral_reward=%d",
		appointmentID, result.Reward, result.ReferralReward)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
