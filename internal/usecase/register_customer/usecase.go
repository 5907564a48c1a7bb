package register_customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// UseCase use case для регистрации клиента
type UseCase struct {
	customerRepo CustomerRepository
	txManager    TransactionManager
	notifier     Notifier
	codes        CodeGenerator
	hasher       PasswordHasher
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	customerRepo CustomerRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		customerRepo: customerRepo,
		txManager:    txManager,
		notifier:     notifier,
		codes:        RandomCodeGenerator{},
		hasher:       BcryptHasher{},
		logger:       logger,
	}
}

// WithHasher заменяет хэшер паролей, например для другой стоимости bcrypt
func (uc *UseCase) WithHasher(hasher PasswordHasher) *UseCase {
	uc.hasher = hasher
	return uc
}

// Execute регистрирует клиента с начальными баллами и, если передан код, приглашением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalize(req)
	uc.logger.Info("RegisterCustomer: phone=%s, with_referral=%t", req.Phone, req.ReferralCode != nil)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterCustomer: validation failed: %v", err)
		return nil, err
	}

	hash, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("RegisterCustomer: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}

	resp := &Response{}
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Телефон свободен
		if _, err := uc.customerRepo.GetByPhone(txCtx, req.Phone); err == nil {
			uc.logger.Warn("RegisterCustomer: phone %s already registered", req.Phone)
			return ErrPhoneTaken
		} else if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
			uc.logger.Error("RegisterCustomer: failed to check phone: %v", err)
			return fmt.Errorf("%w: failed to check phone: %v", ErrInternal, err)
		}

		// 2. Пригласивший
		var referrer *domain.Customer
		if req.ReferralCode != nil {
			r, err := uc.customerRepo.GetByReferralCode(txCtx, *req.ReferralCode)
			if err != nil {
				if errors.Is(err, customerRepo.ErrCustomerNotFound) {
					uc.logger.Warn("RegisterCustomer: referral code %s not found", *req.ReferralCode)
					return ErrInvalidReferralCode
				}
				uc.logger.Error("RegisterCustomer: failed to resolve referral code: %v", err)
				return fmt.Errorf("%w: failed to resolve referral code: %v", ErrInternal, err)
			}
			referrer = r
		}

		// 3. Собственный код
		code, err := uc.uniqueCode(txCtx)
		if err != nil {
			return err
		}

		customer := &domain.Customer{
			Name:           req.Name,
			Phone:          req.Phone,
			PasswordHash:   hash,
			Points:         domain.InitialPoints,
			ReferralCode:   code,
			TelegramHandle: req.TelegramHandle,
		}
		if referrer != nil {
			customer.ReferredBy = &referrer.ID
		}

		created, err := uc.customerRepo.Create(txCtx, customer)
		if err != nil {
			if errors.Is(err, customerRepo.ErrPhoneExists) {
				uc.logger.Warn("RegisterCustomer: phone %s registered concurrently", req.Phone)
				return ErrPhoneTaken
			}
			uc.logger.Error("RegisterCustomer: failed to create customer: %v", err)
			return fmt.Errorf("%w: failed to create customer: %v", ErrInternal, err)
		}

		// 4. Приглашение ждёт первой завершённой записи
		if referrer != nil {
			_, err := uc.customerRepo.CreateReferral(txCtx, &domain.Referral{
				ReferrerID: referrer.ID,
				ReferredID: created.ID,
				Code:       referrer.ReferralCode,
				Status:     domain.ReferralPending,
			})
			if err != nil {
				uc.logger.Error("RegisterCustomer: failed to create referral: %v", err)
				return fmt.Errorf("%w: failed to create referral: %v", ErrInternal, err)
			}
		}

		resp.Customer, resp.Referrer = created, referrer
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RegisterCustomer: created customer id=%d, referral_code=%s", resp.Customer.ID, resp.Customer.ReferralCode)
	if resp.Referrer != nil {
		uc.notifier.NewReferral(ctx, resp.Referrer, resp.Customer)
	}
	uc.notifier.NewCustomer(ctx, resp.Customer)

	return resp, nil
}

// uniqueCode подбирает код, которого ещё нет в базе
func (uc *UseCase) uniqueCode(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		code, err := uc.codes.Generate()
		if err != nil {
			uc.logger.Error("RegisterCustomer: %v", err)
			return "", fmt.Errorf("%w: %v", ErrInternal, err)
		}

		exists, err := uc.customerRepo.ExistsReferralCode(ctx, code)
		if err != nil {
			uc.logger.Error("RegisterCustomer: failed to check referral code: %v", err)
			return "", fmt.Errorf("%w: failed to check referral code: %v", ErrInternal, err)
		}
		if !exists {
			return code, nil
		}
		uc.logger.Warn("RegisterCustomer: referral code collision on attempt %d", attempt)
	}
	return "", fmt.Errorf("%w: no free referral code after %d attempts", ErrInternal, maxCodeAttempts)
}
