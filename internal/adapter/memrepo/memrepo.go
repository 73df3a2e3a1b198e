// Package memrepo keeps animals and donations in process memory. It backs the
// memory:// store driver used for local development and tests.
package memrepo

import (
	"context"
	"sort"
	"sync"
	"time"

	"aidforpaws/internal/domain"
)

// Store holds both collections behind one lock so donation reads see a
// consistent view of the animals they reference.
type Store struct {
	mu        sync.RWMutex
	animals   map[string]domain.Animal
	donations map[string]domain.Donation
	payments  map[string]string
	now       func() time.Time
}

func New() *Store {
	return &Store{
		animals:   make(map[string]domain.Animal),
		donations: make(map[string]domain.Donation),
		payments:  make(map[string]string),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the timestamp source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Animals() *AnimalRepository { return &AnimalRepository{s: s} }

func (s *Store) Donations() *DonationRepository { return &DonationRepository{s: s} }

type AnimalRepository struct{ s *Store }

func (r *AnimalRepository) Create(_ context.Context, animal *domain.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ts := r.s.now()
	animal.CreatedAt = ts
	animal.UpdatedAt = ts
	r.s.animals[animal.ID] = cloneAnimal(*animal)
	return nil
}

func (r *AnimalRepository) List(_ context.Context) ([]domain.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]domain.Animal, 0, len(r.s.animals))
	for _, a := range r.s.animals {
		items = append(items, cloneAnimal(a))
	}
	sort.Slice(items, func(i, j int) bool {
		return newerFirst(items[i].CreatedAt, items[j].CreatedAt, items[i].ID, items[j].ID)
	})
	return items, nil
}

func (r *AnimalRepository) GetByID(_ context.Context, id string) (*domain.Animal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.animals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneAnimal(a)
	return &out, nil
}

func (r *AnimalRepository) Update(_ context.Context, id string, in domain.AnimalInput) (*domain.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.animals[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	a.Apply(in)
	a.UpdatedAt = r.s.now()
	r.s.animals[id] = cloneAnimal(a)
	out := cloneAnimal(a)
	return &out, nil
}

func (r *AnimalRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.animals[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.animals, id)
	return nil
}

func (r *AnimalRepository) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.animals)), nil
}

type DonationRepository struct{ s *Store }

func (r *DonationRepository) Create(_ context.Context, donation *domain.Donation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, dup := r.s.payments[donation.PaymentID]; dup {
		return domain.ErrDuplicatePayment
	}
	donation.CreatedAt = r.s.now()
	stored := *donation
	stored.Animal = nil
	r.s.donations[donation.ID] = stored
	r.s.payments[donation.PaymentID] = donation.ID
	return nil
}

func (r *DonationRepository) ListRecent(_ context.Context) ([]domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(func(domain.Donation) bool { return true }), nil
}

func (r *DonationRepository) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	d, ok := r.s.donations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.populate(d)
	return &out, nil
}

func (r *DonationRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Donation, error) {
	r.s.mu.RLock()
	id, ok := r.s.payments[paymentID]
	r.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *DonationRepository) ListDangling(_ context.Context) ([]domain.Donation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.sorted(func(d domain.Donation) bool {
		_, ok := r.s.animals[d.AnimalID]
		return !ok
	}), nil
}

func (r *DonationRepository) Summary(_ context.Context) (domain.DonationSummary, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var s domain.DonationSummary
	for _, d := range r.s.donations {
		s.Count++
		s.TotalAmount += d.Amount
	}
	return s, nil
}

// sorted expects the read lock to be held.
func (r *DonationRepository) sorted(keep func(domain.Donation) bool) []domain.Donation {
	items := make([]domain.Donation, 0, len(r.s.donations))
	for _, d := range r.s.donations {
		if keep(d) {
			items = append(items, r.populate(d))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return newerFirst(items[i].CreatedAt, items[j].CreatedAt, items[i].ID, items[j].ID)
	})
	return items
}

func (r *DonationRepository) populate(d domain.Donation) domain.Donation {
	if a, ok := r.s.animals[d.AnimalID]; ok {
		c := cloneAnimal(a)
		d.Populate(&c)
	} else {
		d.Populate(nil)
	}
	return d
}

func newerFirst(ti, tj time.Time, idi, idj string) bool {
	if !ti.Equal(tj) {
		return ti.After(tj)
	}
	return idi > idj
}

func cloneAnimal(a domain.Animal) domain.Animal {
	if a.Category != nil {
		c := *a.Category
		a.Category = &c
	}
	return a
}

var (
	_ domain.AnimalRepository   = (*AnimalRepository)(nil)
	_ domain.DonationRepository = (*DonationRepository)(nil)
)
