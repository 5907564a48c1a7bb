package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	aptCounter  AppointmentCounter
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	aptCounter AppointmentCounter,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		aptCounter:  aptCounter,
		txManager:   txManager,
		logger:      logger,
	}
}

// List возвращает услуги, для клиентов только активные
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainServices(services), nil
}

// Get возвращает услугу по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	svc, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := models.FromDomainService(svc)
	return &resp, nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%s, duration=%d", req.Name, req.DurationMinutes)

	svc := &domain.Service{
		Name:            strings.TrimSpace(req.Name),
		Description:     trimOptional(req.Description),
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.Price != nil {
		svc.Price = decimal.NewNullDecimal(*req.Price)
	}

	if err := validateService(svc); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, svc)
	if err != nil {
		s.logger.Error("CreateService: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: created service id=%d", created.ID)
	resp := models.FromDomainService(created)
	return &resp, nil
}

// Update изменяет услугу
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%d", id)

	var result *domain.Service
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		svc, err := s.get(txCtx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			svc.Name = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			svc.Description = trimOptional(req.Description)
		}
		if req.DurationMinutes != nil {
			svc.DurationMinutes = *req.DurationMinutes
		}
		if req.Price != nil {
			svc.Price = decimal.NewNullDecimal(*req.Price)
		}
		if req.IsActive != nil {
			svc.IsActive = *req.IsActive
		}

		if err := validateService(svc); err != nil {
			s.logger.Warn("UpdateService: validation failed for id=%d: %v", id, err)
			return err
		}

		if err := s.serviceRepo.Update(txCtx, svc); err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			s.logger.Error("UpdateService: repository error for id=%d: %v", id, err)
			return fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
		}

		result = svc
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateService: updated service id=%d", id)
	resp := models.FromDomainService(result)
	return &resp, nil
}

// Delete удаляет услугу
// Если на услугу ссылаются записи, она деактивируется, иначе удаляется
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteServiceResponse, error) {
	s.logger.Info("DeleteService: id=%d", id)

	resp := &models.DeleteServiceResponse{ID: id}
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.get(txCtx, id); err != nil {
			return err
		}

		count, err := s.aptCounter.CountByService(txCtx, id)
		if err != nil {
			s.logger.Error("DeleteService: failed to count appointments for id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteService - count appointments: %v", ErrInternal, err)
		}

		if count > 0 {
			if err := s.serviceRepo.Deactivate(txCtx, id); err != nil {
				s.logger.Error("DeleteService: failed to deactivate id=%d: %v", id, err)
				return fmt.Errorf("%w: DeleteService - deactivate: %v", ErrInternal, err)
			}
			resp.Deactivated = true
			return nil
		}

		if err := s.serviceRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("DeleteService: failed to delete id=%d: %v", id, err)
			return fmt.Errorf("%w: DeleteService - delete: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("DeleteService: id=%d removed, deactivated=%t", id, resp.Deactivated)
	return resp, nil
}

func (s *Service) get(ctx context.Context, id int64) (*domain.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("Catalog: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Catalog: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
	}
	return svc, nil
}

func validateService(svc *domain.Service) error {
	if svc.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.IsValidDuration(svc.DurationMinutes) {
		return ErrInvalidDuration
	}
	if svc.Price.Valid && svc.Price.Decimal.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
