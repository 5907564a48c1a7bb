package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date" validate:"required"`
	StartTime   string  `json:"startTime" validate:"required"`
	ServiceID   *int64  `json:"serviceId,omitempty" validate:"omitempty,gt=0"`
	ServiceName *string `json:"serviceName,omitempty" validate:"omitempty,max=100"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Appointment   models.AppointmentResponse `json:"appointment"`
	PointsBalance int                        `json:"pointsBalance"`
}

const (
	fieldDate = "date"
	fieldTime = "startTime"
)

// parseError ошибка разбора даты или времени
type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string { return e.field + ": " + e.err.Error() }
func (e *parseError) Unwrap() error { return e.err }

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(customerID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, &parseError{field: fieldDate, err: err}
	}

	start := types.TimeString(r.StartTime)
	if err := start.Validate(); err != nil {
		return nil, &parseError{field: fieldTime, err: err}
	}

	return &createBooking.Request{
		CustomerID:  customerID,
		Date:        date,
		StartTime:   start,
		ServiceID:   r.ServiceID,
		ServiceName: r.ServiceName,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Appointment:   models.FromDomainAppointment(resp.Appointment),
		PointsBalance: resp.PointsBalance,
	}
}
