package register_customer

import (
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
	registerCustomer "github.com/m04kA/SMC-SalonService/internal/usecase/register_customer"
)

// RegisterCustomerRequest HTTP request model
type RegisterCustomerRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Phone          string  `json:"phone" validate:"required,max=20"`
	Password       string  `json:"password" validate:"required,min=6,max=72"`
	TelegramHandle *string `json:"telegramHandle,omitempty" validate:"omitempty,max=64"`
	ReferralCode   *string `json:"referralCode,omitempty" validate:"omitempty,len=8,alphanum"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RegisterCustomerRequest) ToUseCaseRequest() *registerCustomer.Request {
	return &registerCustomer.Request{
		Name:           r.Name,
		Phone:          r.Phone,
		Password:       r.Password,
		TelegramHandle: r.TelegramHandle,
		ReferralCode:   r.ReferralCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerCustomer.Response) models.ProfileResponse {
	return models.FromDomainCustomer(resp.Customer)
}
