package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
)

// SalonRepository настройки и выходные в памяти
type SalonRepository struct {
	s *Store
}

func (r *SalonRepository) GetSettings(_ context.Context) (*domain.SalonSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Salon.GetSettings"); err != nil {
		return nil, err
	}
	if r.s.state.settings == nil {
		return nil, salonRepo.ErrSettingsNotFound
	}
	return cloneSettings(r.s.state.settings), nil
}

func (r *SalonRepository) CreateSettings(_ context.Context, settings *domain.SalonSettings) (*domain.SalonSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	settings.ID = r.s.nextID()
	settings.UpdatedAt = time.Now()
	r.s.state.settings = cloneSettings(settings)
	return settings, nil
}

func (r *SalonRepository) UpdateSettings(_ context.Context, settings *domain.SalonSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.state.settings == nil || r.s.state.settings.ID != settings.ID {
		return salonRepo.ErrSettingsNotFound
	}
	settings.UpdatedAt = time.Now()
	r.s.state.settings = cloneSettings(settings)
	return nil
}

func (r *SalonRepository) ListOffDays(_ context.Context) (domain.OffDays, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make(domain.OffDays, 0, len(r.s.state.offDays))
	for _, day := range r.s.state.offDays {
		result = append(result, cloneOffDay(day))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *SalonRepository) CreateOffDay(_ context.Context, day *domain.OffDay) (*domain.OffDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.state.offDays {
		if domain.SameRule(existing.Rule, day.Rule) {
			return nil, salonRepo.ErrOffDayExists
		}
	}

	day.ID = r.s.nextID()
	day.CreatedAt = time.Now()
	r.s.state.offDays[day.ID] = cloneOffDay(day)
	return day, nil
}

func (r *SalonRepository) DeleteOffDay(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.state.offDays[id]; !ok {
		return salonRepo.ErrOffDayNotFound
	}
	delete(r.s.state.offDays, id)
	return nil
}
