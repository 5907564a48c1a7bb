package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string           `json:"name" validate:"required,max=100"`
	Description     *string          `json:"description,omitempty"`
	DurationMinutes int              `json:"durationMinutes" validate:"required"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
}

// UpdateServiceRequest запрос на изменение услуги
// Все поля опциональны
type UpdateServiceRequest struct {
	Name            *string          `json:"name,omitempty" validate:"omitempty,max=100"`
	Description     *string          `json:"description,omitempty"`
	DurationMinutes *int             `json:"durationMinutes,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
}

// Response модели

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description,omitempty"`
	DurationMinutes int              `json:"durationMinutes"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	IsActive        bool             `json:"isActive"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// DeleteServiceResponse результат удаления услуги
// Deactivated = true, если на услугу есть записи и она только скрыта из каталога
type DeleteServiceResponse struct {
	ID          int64 `json:"id"`
	Deactivated bool  `json:"deactivated"`
}

// FromDomainService конвертирует услугу в response
func FromDomainService(svc *domain.Service) ServiceResponse {
	resp := ServiceResponse{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		IsActive:        svc.IsActive,
		CreatedAt:       svc.CreatedAt,
		UpdatedAt:       svc.UpdatedAt,
	}
	if svc.Price.Valid {
		price := svc.Price.Decimal
		resp.Price = &price
	}
	return resp
}

// FromDomainServices конвертирует список услуг в response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, svc := range services {
		resp.Services = append(resp.Services, FromDomainService(svc))
	}
	return resp
}
