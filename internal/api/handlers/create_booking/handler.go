package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgCustomerNotFound   = "клиент не найден"
	msgInsufficientPoints = "недостаточно баллов для записи"
	msgSlotUnavailable    = "выбранный временной слот недоступен"
	msgDayFullyBooked     = "на выбранную дату нет свободных мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		var perr *parseError
		if errors.As(err, &perr) && perr.field == fieldTime {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInsufficientPoints):
			h.logger.Warn("POST /appointments - Insufficient points: customer_id=%d", customerID)
			handlers.RespondError(w, http.StatusPaymentRequired, msgInsufficientPoints)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: customer_id=%d, date=%s, start=%s",
				customerID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrDayFullyBooked):
			h.logger.Warn("POST /appointments - Day fully booked: customer_id=%d, date=%s", customerID, req.Date)
			handlers.RespondConflict(w, msgDayFullyBooked)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, customer_id=%d, balance=%d",
		result.Appointment.ID, customerID, result.PointsBalance)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
