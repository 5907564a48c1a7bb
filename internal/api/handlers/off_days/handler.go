package off_days

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

const (
	msgInvalidOffDayID    = "некорректный ID выходного"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicateOffDay    = "такой выходной уже добавлен"
	msgOffDayNotFound     = "выходной не найден"
)

// Handler управление выходными днями
type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/off-days
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListOffDays(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/off-days - Failed to list off-days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/off-days - Off-days retrieved: count=%d", len(result.OffDays))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/admin/off-days
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOffDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/off-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.AddOffDay(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrDuplicateOffDay):
			h.logger.Warn("POST /admin/off-days - Duplicate rule: type=%s", req.Type)
			handlers.RespondConflict(w, msgDuplicateOffDay)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("POST /admin/off-days - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())

		default:
			h.logger.Error("POST /admin/off-days - Failed to add off-day: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/off-days - Off-day added: off_day_id=%d, type=%s", result.ID, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleDelete DELETE /api/v1/admin/off-days/{offDayId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	offDayID, err := strconv.ParseInt(mux.Vars(r)["offDayId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/off-days/{id} - Invalid off-day ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOffDayID)
		return
	}

	if err := h.service.DeleteOffDay(r.Context(), offDayID); err != nil {
		if errors.Is(err, settings.ErrOffDayNotFound) {
			h.logger.Warn("DELETE /admin/off-days/{id} - Off-day not found: off_day_id=%d", offDayID)
			handlers.RespondNotFound(w, msgOffDayNotFound)
			return
		}
		h.logger.Error("DELETE /admin/off-days/{id} - Failed to delete off-day: off_day_id=%d, error=%v", offDayID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/off-days/{id} - Off-day deleted: off_day_id=%d", offDayID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
