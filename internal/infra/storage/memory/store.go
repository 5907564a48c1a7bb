package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Store хранилище в памяти с теми же контрактами, что и репозитории postgres
// Транзакции выполняются строго по одной, при ошибке состояние откатывается к снимку
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	state    state
	failures map[string]error
}

type state struct {
	seq          int64
	settings     *domain.SalonSettings
	offDays      map[int64]*domain.OffDay
	services     map[int64]*domain.Service
	customers    map[int64]*domain.Customer
	referrals    map[int64]*domain.Referral
	appointments map[int64]*domain.Appointment
	history      []*domain.PointsHistory
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		state: state{
			offDays:      make(map[int64]*domain.OffDay),
			services:     make(map[int64]*domain.Service),
			customers:    make(map[int64]*domain.Customer),
			referrals:    make(map[int64]*domain.Referral),
			appointments: make(map[int64]*domain.Appointment),
		},
		failures: make(map[string]error),
	}
}

// FailOn заставляет следующий вызов метода op вернуть err
// op - имя метода, например "Points.Append"
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) failure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

func (s *Store) nextID() int64 {
	s.state.seq++
	return s.state.seq
}

// Customers репозиторий клиентов
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s: s} }

// Appointments репозиторий записей
func (s *Store) Appointments() *AppointmentRepository { return &AppointmentRepository{s: s} }

// Points журнал баллов
func (s *Store) Points() *PointsRepository { return &PointsRepository{s: s} }

// Salon настройки и выходные
func (s *Store) Salon() *SalonRepository { return &SalonRepository{s: s} }

// Catalog каталог услуг
func (s *Store) Catalog() *CatalogRepository { return &CatalogRepository{s: s} }

// TxManager менеджер транзакций поверх Store
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

type txKey struct{}

// TxManager повторяет контракт txmanager.TransactionManager
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if inTx, _ := ctx.Value(txKey{}).(bool); inTx {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	m.s.mu.Lock()
	snapshot := m.s.state.clone()
	m.s.mu.Unlock()

	defer func() {
		if p := recover(); p != nil {
			m.s.restore(snapshot)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		m.s.restore(snapshot)
		return err
	}
	return nil
}

func (s *Store) restore(snapshot state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = snapshot
}

func (st state) clone() state {
	c := state{
		seq:          st.seq,
		offDays:      make(map[int64]*domain.OffDay, len(st.offDays)),
		services:     make(map[int64]*domain.Service, len(st.services)),
		customers:    make(map[int64]*domain.Customer, len(st.customers)),
		referrals:    make(map[int64]*domain.Referral, len(st.referrals)),
		appointments: make(map[int64]*domain.Appointment, len(st.appointments)),
		history:      make([]*domain.PointsHistory, len(st.history)),
	}
	if st.settings != nil {
		c.settings = cloneSettings(st.settings)
	}
	for id, v := range st.offDays {
		c.offDays[id] = cloneOffDay(v)
	}
	for id, v := range st.services {
		c.services[id] = cloneService(v)
	}
	for id, v := range st.customers {
		c.customers[id] = cloneCustomer(v)
	}
	for id, v := range st.referrals {
		c.referrals[id] = cloneReferral(v)
	}
	for id, v := range st.appointments {
		c.appointments[id] = cloneAppointment(v)
	}
	for i, v := range st.history {
		c.history[i] = cloneHistory(v)
	}
	return c
}

func cloneSettings(v *domain.SalonSettings) *domain.SalonSettings {
	c := *v
	return &c
}

func cloneOffDay(v *domain.OffDay) *domain.OffDay {
	c := *v
	return &c
}

func cloneService(v *domain.Service) *domain.Service {
	c := *v
	return &c
}

func cloneCustomer(v *domain.Customer) *domain.Customer {
	c := *v
	return &c
}

func cloneReferral(v *domain.Referral) *domain.Referral {
	c := *v
	return &c
}

func cloneAppointment(v *domain.Appointment) *domain.Appointment {
	c := *v
	return &c
}

func cloneHistory(v *domain.PointsHistory) *domain.PointsHistory {
	c := *v
	return &c
}
