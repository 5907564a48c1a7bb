package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
)

// CustomerRepository клиенты и приглашения в памяти
type CustomerRepository struct {
	s *Store
}

func (r *CustomerRepository) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Customers.Create"); err != nil {
		return nil, err
	}
	for _, existing := range r.s.state.customers {
		if existing.Phone == c.Phone {
			return nil, customerRepo.ErrPhoneExists
		}
		if existing.ReferralCode == c.ReferralCode {
			return nil, customerRepo.ErrReferralCodeExists
		}
	}

	now := time.Now()
	c.ID = r.s.nextID()
	c.CreatedAt, c.UpdatedAt = now, now
	r.s.state.customers[c.ID] = cloneCustomer(c)

	return c, nil
}

func (r *CustomerRepository) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Customers.GetByID"); err != nil {
		return nil, err
	}
	c, ok := r.s.state.customers[id]
	if !ok {
		return nil, customerRepo.ErrCustomerNotFound
	}
	return cloneCustomer(c), nil
}

func (r *CustomerRepository) GetByPhone(_ context.Context, phone string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.Phone == phone })
}

func (r *CustomerRepository) GetByReferralCode(_ context.Context, code string) (*domain.Customer, error) {
	return r.find(func(c *domain.Customer) bool { return c.ReferralCode == code })
}

func (r *CustomerRepository) ExistsReferralCode(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByReferralCode(ctx, code)
	if err == customerRepo.ErrCustomerNotFound {
		return false, nil
	}
	return err == nil, err
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Customer, 0, len(r.s.state.customers))
	for _, c := range r.s.state.customers {
		result = append(result, cloneCustomer(c))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *CustomerRepository) UpdatePoints(_ context.Context, id int64, points int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Customers.UpdatePoints"); err != nil {
		return err
	}
	c, ok := r.s.state.customers[id]
	if !ok {
		return customerRepo.ErrCustomerNotFound
	}
	c.Points = points
	c.UpdatedAt = time.Now()
	return nil
}

func (r *CustomerRepository) CreateReferral(_ context.Context, ref *domain.Referral) (*domain.Referral, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ref.ID = r.s.nextID()
	ref.CreatedAt = time.Now()
	r.s.state.referrals[ref.ID] = cloneReferral(ref)
	return ref, nil
}

func (r *CustomerRepository) GetPendingReferralByReferred(_ context.Context, referredID int64) (*domain.Referral, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, ref := range r.s.state.referrals {
		if ref.ReferredID == referredID && ref.Status == domain.ReferralPending {
			return cloneReferral(ref), nil
		}
	}
	return nil, customerRepo.ErrReferralNotFound
}

func (r *CustomerRepository) CompleteReferral(_ context.Context, id int64, completedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ref, ok := r.s.state.referrals[id]
	if !ok || ref.Status != domain.ReferralPending {
		return customerRepo.ErrReferralNotFound
	}
	ref.Status = domain.ReferralCompleted
	ref.CompletedAt = &completedAt
	return nil
}

// Referrals возвращает все приглашения, используется в тестах
func (r *CustomerRepository) Referrals() []*domain.Referral {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Referral, 0, len(r.s.state.referrals))
	for _, ref := range r.s.state.referrals {
		result = append(result, cloneReferral(ref))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *CustomerRepository) find(match func(*domain.Customer) bool) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.state.customers {
		if match(c) {
			return cloneCustomer(c), nil
		}
	}
	return nil, customerRepo.ErrCustomerNotFound
}
