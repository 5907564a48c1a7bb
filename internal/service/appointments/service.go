package appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

// Service сервис выборок записей
type Service struct {
	aptRepo AppointmentRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(aptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		aptRepo: aptRepo,
		logger:  logger,
	}
}

// ListForCustomer возвращает записи клиента, новые первыми
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListCustomerAppointments: customer=%d", customerID)

	list, err := s.aptRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("ListCustomerAppointments: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: ListCustomerAppointments - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointments(list), nil
}

// List возвращает записи для администратора по диапазону дат и статусу
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := toFilter(req)
	if err != nil {
		s.logger.Warn("ListAppointments: invalid filter: %v", err)
		return nil, err
	}

	list, err := s.aptRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListAppointments: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAppointments: found %d appointments", len(list))
	return models.FromDomainAppointments(list), nil
}

func toFilter(req *models.ListAppointmentsRequest) (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{CustomerID: req.CustomerID}

	if req.From != nil && *req.From != "" {
		from, err := time.Parse(domain.DateFormat, *req.From)
		if err != nil {
			return filter, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.StartDate = &from
	}
	if req.To != nil && *req.To != "" {
		to, err := time.Parse(domain.DateFormat, *req.To)
		if err != nil {
			return filter, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
		}
		filter.EndDate = &to
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return filter, fmt.Errorf("%w: to is before from", ErrInvalidInput)
	}
	if req.Status != nil && *req.Status != "" {
		status, err := domain.ParseAppointmentStatus(*req.Status)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter.Status = &status
	}

	return filter, nil
}
