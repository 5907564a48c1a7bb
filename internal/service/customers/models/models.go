package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ProfileResponse профиль клиента
// Хэш пароля наружу не отдаётся
type ProfileResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Points         int       `json:"points"`
	ReferralCode   string    `json:"referralCode"`
	ReferredBy     *int64    `json:"referredBy,omitempty"`
	TelegramHandle *string   `json:"telegramHandle,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CustomerListResponse список клиентов
type CustomerListResponse struct {
	Customers []ProfileResponse `json:"customers"`
	Total     int               `json:"total"`
}

// PointsEntryResponse запись журнала баллов
type PointsEntryResponse struct {
	ID         int64     `json:"id"`
	OldPoints  int       `json:"oldPoints"`
	NewPoints  int       `json:"newPoints"`
	Difference int       `json:"difference"`
	Reason     string    `json:"reason"`
	ChangedBy  string    `json:"changedBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PointsHistoryResponse журнал баллов клиента
type PointsHistoryResponse struct {
	CustomerID int64                 `json:"customerId"`
	Points     int                   `json:"points"`
	History    []PointsEntryResponse `json:"history"`
}

// FromDomainCustomer конвертирует клиента в response
func FromDomainCustomer(c *domain.Customer) ProfileResponse {
	return ProfileResponse{
		ID:             c.ID,
		Name:           c.Name,
		Phone:          c.Phone,
		Points:         c.Points,
		ReferralCode:   c.ReferralCode,
		ReferredBy:     c.ReferredBy,
		TelegramHandle: c.TelegramHandle,
		CreatedAt:      c.CreatedAt,
	}
}

// FromDomainCustomers конвертирует список клиентов в response
func FromDomainCustomers(list []*domain.Customer) *CustomerListResponse {
	resp := &CustomerListResponse{
		Customers: make([]ProfileResponse, 0, len(list)),
		Total:     len(list),
	}
	for _, c := range list {
		resp.Customers = append(resp.Customers, FromDomainCustomer(c))
	}
	return resp
}

// FromDomainHistory конвертирует журнал баллов в response
func FromDomainHistory(c *domain.Customer, entries []*domain.PointsHistory) *PointsHistoryResponse {
	resp := &PointsHistoryResponse{
		CustomerID: c.ID,
		Points:     c.Points,
		History:    make([]PointsEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.History = append(resp.History, PointsEntryResponse{
			ID:         e.ID,
			OldPoints:  e.OldPoints,
			NewPoints:  e.NewPoints,
			Difference: e.Difference,
			Reason:     e.Reason,
			ChangedBy:  string(e.ChangedBy),
			CreatedAt:  e.CreatedAt,
		})
	}
	return resp
}
