// Package memory is the volatile, in-process implementation of store.Store.
//
// Each entity kind has its own collection guarded by its own RWMutex, so
// category, provider and inquiry operations never wait on each other. Reads
// copy records out under the read lock; writes replace whole records under
// the write lock.
package memory

import (
	"sync"
	"time"

	"local-services/models"
	"local-services/store"
)

var _ store.Store = (*Store)(nil)

// Store holds all marketplace records in memory.
type Store struct {
	ids  *store.Allocator
	now  func() time.Time
	seed bool

	categoriesMu  sync.RWMutex
	categories    map[int]models.ServiceCategory
	categoryOrder []int

	providersMu   sync.RWMutex
	providers     map[int]models.ServiceProvider
	providerOrder []int

	inquiriesMu  sync.RWMutex
	inquiries    map[int]models.Inquiry
	inquiryOrder []int
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithoutSeed starts the store empty.
func WithoutSeed() Option {
	return func(s *Store) {
		s.seed = false
	}
}

// New creates a store, seeded with the default categories and providers
// unless WithoutSeed is given.
func New(opts ...Option) *Store {
	s := &Store{
		ids:        store.NewAllocator(),
		now:        time.Now,
		seed:       true,
		categories: make(map[int]models.ServiceCategory),
		providers:  make(map[int]models.ServiceProvider),
		inquiries:  make(map[int]models.Inquiry),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.seed {
		s.seedData()
	}
	return s
}

// Close is a no-op; the store lives as long as the process holds it.
func (s *Store) Close() error {
	return nil
}

func (s *Store) seedData() {
	for _, c := range store.SeedCategories() {
		s.CreateCategory(c)
	}

	s.providersMu.Lock()
	defer s.providersMu.Unlock()

	for _, p := range store.SeedProviders() {
		p.ID = s.ids.Next(store.KindProvider)
		p.CreatedAt = s.now()
		s.providers[p.ID] = p
		s.providerOrder = append(s.providerOrder, p.ID)
	}
}
