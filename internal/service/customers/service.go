package customers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-SalonService/internal/service/customers/models"
)

// DefaultHistoryLimit количество записей журнала по умолчанию
const DefaultHistoryLimit = 50

// Service сервис данных клиентов
type Service struct {
	customerRepo CustomerRepository
	pointsRepo   PointsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(customerRepo CustomerRepository, pointsRepo PointsRepository, logger Logger) *Service {
	return &Service{
		customerRepo: customerRepo,
		pointsRepo:   pointsRepo,
		logger:       logger,
	}
}

// Profile возвращает профиль клиента с балансом и реферальным кодом
func (s *Service) Profile(ctx context.Context, customerID int64) (*models.ProfileResponse, error) {
	c, err := s.get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainCustomer(c)
	return &resp, nil
}

// PointsHistory возвращает журнал баллов клиента, новые записи первыми
// limit <= 0 заменяется на DefaultHistoryLimit
func (s *Service) PointsHistory(ctx context.Context, customerID int64, limit int) (*models.PointsHistoryResponse, error) {
	c, err := s.get(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	entries, err := s.pointsRepo.ListByCustomer(ctx, customerID, limit)
	if err != nil {
		s.logger.Error("PointsHistory: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: PointsHistory - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(c, entries), nil
}

// List возвращает всех клиентов для администратора
func (s *Service) List(ctx context.Context) (*models.CustomerListResponse, error) {
	list, err := s.customerRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCustomers: found %d customers", len(list))
	return models.FromDomainCustomers(list), nil
}

func (s *Service) get(ctx context.Context, customerID int64) (*domain.Customer, error) {
	c, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("Customers: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("Customers: repository error for customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: get customer: %v", ErrInternal, err)
	}
	return c, nil
}
