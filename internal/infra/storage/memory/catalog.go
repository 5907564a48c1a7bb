package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/catalog"
)

// CatalogRepository каталог услуг в памяти
type CatalogRepository struct {
	s *Store
}

func (r *CatalogRepository) Create(_ context.Context, svc *domain.Service) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	svc.ID = r.s.nextID()
	svc.CreatedAt, svc.UpdatedAt = now, now
	r.s.state.services[svc.ID] = cloneService(svc)
	return svc, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.state.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return cloneService(svc), nil
}

func (r *CatalogRepository) GetByName(_ context.Context, name string) (*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var found *domain.Service
	want := strings.ToLower(strings.TrimSpace(name))
	for _, svc := range r.s.state.services {
		if svc.IsActive && strings.ToLower(svc.Name) == want && (found == nil || svc.ID < found.ID) {
			found = svc
		}
	}
	if found == nil {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return cloneService(found), nil
}

func (r *CatalogRepository) List(_ context.Context, activeOnly bool) ([]*domain.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Service, 0, len(r.s.state.services))
	for _, svc := range r.s.state.services {
		if activeOnly && !svc.IsActive {
			continue
		}
		result = append(result, cloneService(svc))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *CatalogRepository) Update(_ context.Context, svc *domain.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.services[svc.ID]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	svc.UpdatedAt = time.Now()
	r.s.state.services[svc.ID] = cloneService(svc)
	return nil
}

func (r *CatalogRepository) Deactivate(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	svc, ok := r.s.state.services[id]
	if !ok {
		return catalogRepo.ErrServiceNotFound
	}
	svc.IsActive = false
	svc.UpdatedAt = time.Now()
	return nil
}

func (r *CatalogRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.services[id]; !ok {
		return catalogRepo.ErrServiceNotFound
	}
	delete(r.s.state.services, id)
	return nil
}
