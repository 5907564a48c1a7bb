package get_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgInvalidFilter     = "некорректный фильтр: даты в формате YYYY-MM-DD, статус pending, confirmed, completed или cancelled"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: from, to, status, customerId (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListAppointmentsRequest{
		From:   optional(query.Get("from")),
		To:     optional(query.Get("to")),
		Status: optional(query.Get("status")),
	}

	if raw := query.Get("customerId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid customer ID: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidCustomerID)
			return
		}
		req.CustomerID = &id
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
