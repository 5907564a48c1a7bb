package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

// Handler список услуг
// Публичный маршрут отдаёт только активные услуги, админский - все
type Handler struct {
	service    CatalogService
	activeOnly bool
	logger     Logger
}

func NewHandler(service CatalogService, activeOnly bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		activeOnly: activeOnly,
		logger:     logger,
	}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.activeOnly)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: active_only=%t, error=%v", h.activeOnly, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved: active_only=%t, count=%d", h.activeOnly, len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
