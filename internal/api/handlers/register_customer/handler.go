package register_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	registerCustomer "github.com/m04kA/SMC-SalonService/internal/usecase/register_customer"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgPhoneTaken          = "клиент с таким телефоном уже зарегистрирован"
	msgInvalidReferralCode = "реферальный код не найден"
)

type Handler struct {
	useCase RegisterCustomerUseCase
	logger  Logger
}

func NewHandler(useCase RegisterCustomerUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /customers - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody+": "+err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, registerCustomer.ErrPhoneTaken):
			h.logger.Warn("POST /customers - Phone already registered")
			handlers.RespondConflict(w, msgPhoneTaken)

		case errors.Is(err, registerCustomer.ErrInvalidReferralCode):
			h.logger.Warn("POST /customers - Invalid referral code")
			handlers.RespondBadRequest(w, msgInvalidReferralCode)

		case errors.Is(err, registerCustomer.ErrInvalidInput):
			h.logger.Warn("POST /customers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /customers - Failed to register customer: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer registered: customer_id=%d, referred=%t",
		result.Customer.ID, result.Referrer != nil)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
