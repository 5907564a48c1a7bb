package manage_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDuration    = "длительность услуги должна быть от 15 до 480 минут"
	msgServiceNotFound    = "услуга не найдена"
)

// Handler создание, изменение и удаление услуг каталога
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/admin/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /admin/services - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/services", 0, err)
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "PUT /admin/services/{id}")
	if !ok {
		return
	}

	var req models.UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.service.Update(r.Context(), serviceID, &req)
	if err != nil {
		h.respondServiceError(w, "PUT /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated: service_id=%d", serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/services/{serviceId}
// Услуга с записями только деактивируется
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	serviceID, ok := h.serviceID(w, r, "DELETE /admin/services/{id}")
	if !ok {
		return
	}

	result, err := h.service.Delete(r.Context(), serviceID)
	if err != nil {
		h.respondServiceError(w, "DELETE /admin/services/{id}", serviceID, err)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service removed: service_id=%d, deactivated=%t",
		serviceID, result.Deactivated)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) serviceID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid service ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, serviceID int64, err error) {
	switch {
	case errors.Is(err, catalog.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: service_id=%d", route, serviceID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, catalog.ErrInvalidDuration):
		h.logger.Warn("%s - Invalid duration: service_id=%d", route, serviceID)
		handlers.RespondBadRequest(w, msgInvalidDuration)

	case errors.Is(err, catalog.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: service_id=%d, error=%v", route, serviceID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	default:
		h.logger.Error("%s - Catalog operation failed: service_id=%d, error=%v", route, serviceID, err)
		handlers.RespondInternalError(w)
	}
}
