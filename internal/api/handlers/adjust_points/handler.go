package adjust_points

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	adjustPoints "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_points"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPoints      = "баланс не может быть отрицательным"
	msgCustomerNotFound   = "клиент не найден"
)

type Handler struct {
	useCase AdjustPointsUseCase
	logger  Logger
}

func NewHandler(useCase AdjustPointsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/customers/{customerId}/points
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/customers/{id}/points - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req AdjustPointsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/customers/{id}/points - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /admin/customers/{id}/points - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, adjustPoints.ErrInvalidPoints):
			h.logger.Warn("PUT /admin/customers/{id}/points - Negative points: customer_id=%d", customerID)
			handlers.RespondBadRequest(w, msgInvalidPoints)

		case errors.Is(err, adjustPoints.ErrCustomerNotFound):
			h.logger.Warn("PUT /admin/customers/{id}/points - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, adjustPoints.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /admin/customers/{id}/points - Failed to adjust points: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/customers/{id}/points - Points set: customer_id=%d, points=%d, changed=%t",
		customerID, result.Customer.Points, result.Entry != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
