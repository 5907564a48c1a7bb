package adjust_points

import (
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
	adjustPoints "github.com/m04kA/SMC-SalonService/internal/usecase/adjust_points"
)

// AdjustPointsRequest HTTP request model
type AdjustPointsRequest struct {
	Points *int    `json:"points" validate:"required"`
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

// AdjustPointsResponse HTTP response model
type AdjustPointsResponse struct {
	Customer models.ProfileResponse `json:"customer"`
	Changed  bool                   `json:"changed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AdjustPointsRequest) ToUseCaseRequest(customerID int64) *adjustPoints.Request {
	return &adjustPoints.Request{
		CustomerID: customerID,
		NewPoints:  *r.Points,
		Reason:     r.Reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *adjustPoints.Response) *AdjustPointsResponse {
	return &AdjustPointsResponse{
		Customer: models.FromDomainCustomer(resp.Customer),
		Changed:  resp.Entry != nil,
	}
}
