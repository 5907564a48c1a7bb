package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/customers"
)

const msgCustomerNotFound = "клиент не найден"

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

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.Profile(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, customers.ErrCustomerNotFound) {
			h.logger.Warn("GET /me - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)
			return
		}
		h.logger.Error("GET /me - Failed to get profile: customer_id=%d, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me - Profile retrieved: customer_id=%d", customerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
