package get_points_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/customers"
)

const (
	msgInvalidLimit     = "некорректный limit"
	msgCustomerNotFound = "клиент не найден"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me/points-history
// Query params: limit (опционально, по умолчанию 50)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.logger.Warn("GET /me/points-history - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = n
	}

	result, err := h.service.PointsHistory(r.Context(), customerID, limit)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			h.logger.Warn("GET /me/points-history - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /me/points-history - Failed to get history: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me/points-history - History retrieved: customer_id=%d, count=%d", customerID, len(result.History))
	handlers.RespondJSON(w, http.StatusOK, result)
}
