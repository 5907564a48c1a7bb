package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// ListAppointmentsRequest фильтр администратора
// Даты в формате YYYY-MM-DD, все поля опциональны
type ListAppointmentsRequest struct {
	From       *string
	To         *string
	Status     *string
	CustomerID *int64
}

// Response модели

// AppointmentResponse запись клиента
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	CustomerID         int64      `json:"customerId"`
	ServiceID          *int64     `json:"serviceId,omitempty"`
	ServiceName        string     `json:"serviceName"`
	Date               string     `json:"date"`
	StartTime          string     `json:"startTime"`
	EndTime            string     `json:"endTime"`
	DurationMinutes    int        `json:"durationMinutes"`
	PointsDeducted     int        `json:"pointsDeducted"`
	Status             string     `json:"status"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CancelledBy        *string    `json:"cancelledBy,omitempty"`
	AdminCancelled     bool       `json:"adminCancelled"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует запись в response
func FromDomainAppointment(apt *domain.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:                 apt.ID,
		CustomerID:         apt.CustomerID,
		ServiceID:          apt.ServiceID,
		ServiceName:        apt.ServiceName,
		Date:               apt.Date.Format(domain.DateFormat),
		StartTime:          apt.StartTime.String(),
		EndTime:            apt.EndTime.String(),
		DurationMinutes:    apt.DurationMinutes,
		PointsDeducted:     apt.PointsDeducted,
		Status:             string(apt.Status),
		CancelledAt:        apt.CancelledAt,
		AdminCancelled:     apt.AdminCancelled,
		CancellationReason: apt.CancellationReason,
		CreatedAt:          apt.CreatedAt,
		UpdatedAt:          apt.UpdatedAt,
	}
	if apt.CancelledBy != nil {
		by := string(*apt.CancelledBy)
		resp.CancelledBy = &by
	}
	return resp
}

// FromDomainAppointments конвертирует список записей в response
func FromDomainAppointments(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
		Total:        len(list),
	}
	for _, apt := range list {
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(apt))
	}
	return resp
}
