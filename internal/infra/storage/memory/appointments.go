package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
)

// AppointmentRepository записи в памяти
// Как и уникальный индекс в postgres, не допускает двух активных записей с одним началом
type AppointmentRepository struct {
	s *Store
}

func (r *AppointmentRepository) Create(_ context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Appointments.Create"); err != nil {
		return nil, err
	}
	for _, existing := range r.s.state.appointments {
		if existing.IsActive() && domain.IsSameDay(existing.Date, apt.Date) && existing.StartTime == apt.StartTime {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	now := time.Now()
	apt.ID = r.s.nextID()
	apt.CreatedAt, apt.UpdatedAt = now, now
	r.s.state.appointments[apt.ID] = cloneAppointment(apt)

	return apt, nil
}

func (r *AppointmentRepository) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	apt, ok := r.s.state.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return cloneAppointment(apt), nil
}

func (r *AppointmentRepository) ListByDate(_ context.Context, date time.Time, statuses []domain.AppointmentStatus) ([]*domain.Appointment, error) {
	result := r.collect(func(apt *domain.Appointment) bool {
		return domain.IsSameDay(apt.Date, date) && hasStatus(apt.Status, statuses)
	})
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.IsBefore(result[j].StartTime) })
	return result, nil
}

func (r *AppointmentRepository) CountByDate(_ context.Context, date time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Appointments.CountByDate"); err != nil {
		return 0, err
	}
	count := 0
	for _, apt := range r.s.state.appointments {
		if apt.IsActive() && domain.IsSameDay(apt.Date, date) {
			count++
		}
	}
	return count, nil
}

func (r *AppointmentRepository) CountByDateRange(_ context.Context, from, to time.Time) (map[string]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	start, end := from.Format(domain.DateFormat), to.Format(domain.DateFormat)
	counts := make(map[string]int)
	for _, apt := range r.s.state.appointments {
		key := apt.Date.Format(domain.DateFormat)
		if apt.IsActive() && key >= start && key <= end {
			counts[key]++
		}
	}
	return counts, nil
}

func (r *AppointmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	return r.ListWithFilter(ctx, domain.AppointmentFilter{CustomerID: &customerID})
}

func (r *AppointmentRepository) ListWithFilter(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	result := r.collect(func(apt *domain.Appointment) bool {
		key := apt.Date.Format(domain.DateFormat)
		switch {
		case filter.CustomerID != nil && apt.CustomerID != *filter.CustomerID:
			return false
		case filter.StartDate != nil && key < filter.StartDate.Format(domain.DateFormat):
			return false
		case filter.EndDate != nil && key > filter.EndDate.Format(domain.DateFormat):
			return false
		case filter.Status != nil && apt.Status != *filter.Status:
			return false
		}
		return true
	})

	sort.Slice(result, func(i, j int) bool {
		if !domain.IsSameDay(result[i].Date, result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].StartTime.IsAfter(result[j].StartTime)
	})
	return result, nil
}

func (r *AppointmentRepository) Cancel(_ context.Context, apt *domain.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Appointments.Cancel"); err != nil {
		return err
	}
	stored, ok := r.s.state.appointments[apt.ID]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	stored.Status = apt.Status
	stored.CancelledAt = apt.CancelledAt
	stored.CancelledBy = apt.CancelledBy
	stored.AdminCancelled = apt.AdminCancelled
	stored.CancellationReason = apt.CancellationReason
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *AppointmentRepository) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.failure("Appointments.UpdateStatus"); err != nil {
		return err
	}
	stored, ok := r.s.state.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	stored.Status = status
	stored.UpdatedAt = time.Now()
	return nil
}

func (r *AppointmentRepository) CountByService(_ context.Context, serviceID int64) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	for _, apt := range r.s.state.appointments {
		if apt.ServiceID != nil && *apt.ServiceID == serviceID {
			count++
		}
	}
	return count, nil
}

func (r *AppointmentRepository) collect(match func(*domain.Appointment) bool) []*domain.Appointment {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, apt := range r.s.state.appointments {
		if match(apt) {
			result = append(result, cloneAppointment(apt))
		}
	}
	return result
}

func hasStatus(status domain.AppointmentStatus, statuses []domain.AppointmentStatus) bool {
	if len(statuses) == 0 {
		return true
	}
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
