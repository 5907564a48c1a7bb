package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	cancelBooking "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_booking"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "запись не найдена"
	msgCannotCancel         = "запись не может быть отменена"
)

// Handler отмена записи клиентом или администратором
// actor задаётся при сборке маршрутов
type Handler struct {
	useCase CancelBookingUseCase
	actor   domain.Actor
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, actor domain.Actor, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		actor:   actor,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
// и PATCH /api/v1/admin/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var customerID int64
	if h.actor == domain.ActorCustomer {
		id, ok := middleware.GetUserID(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w)
			return
		}
		customerID = id
	}

	var req CancelBookingRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		if err := handlers.Validate(&req); err != nil {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, h.actor, customerID))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrNotCancellable):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%d", appointmentID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%d, actor=%s, refund=%d",
		appointmentID, h.actor, result.Refund.Points)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
