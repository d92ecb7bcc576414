package memory

import (
	"local-services/models"
	"local-services/store"
)

// ==================== PROVIDERS ====================

// snapshotProviders copies every provider out in insertion order.
func (s *Store) snapshotProviders() []models.ServiceProvider {
	s.providersMu.RLock()
	defer s.providersMu.RUnlock()

	providers := make([]models.ServiceProvider, 0, len(s.providerOrder))
	for _, id := range s.providerOrder {
		providers = append(providers, s.providers[id].Clone())
	}
	return providers
}

// ListProviders returns the providers matching filter, highest rated first.
func (s *Store) ListProviders(filter store.ProviderFilter) ([]models.ServiceProvider, error) {
	providers := s.snapshotProviders()
	providers = store.FilterByCategory(providers, filter.CategoryID)
	providers = store.FilterByLocation(providers, filter.Location)
	store.SortByRating(providers)
	return providers, nil
}

func (s *Store) GetProvider(id int) (*models.ServiceProvider, error) {
	s.providersMu.RLock()
	defer s.providersMu.RUnlock()

	p, ok := s.providers[id]
	if !ok {
		return nil, nil
	}
	p = p.Clone()
	return &p, nil
}

// CreateProvider stores a new provider. Rating, review count and
// availability always start at "0", 0 and true.
func (s *Store) CreateProvider(data models.NewServiceProvider) (*models.ServiceProvider, error) {
	s.providersMu.Lock()
	defer s.providersMu.Unlock()

	p := data.WithDefaults(s.ids.Next(store.KindProvider), s.now())
	s.providers[p.ID] = p
	s.providerOrder = append(s.providerOrder, p.ID)

	p = p.Clone()
	return &p, nil
}

// UpdateProvider merges the supplied fields over the stored provider.
func (s *Store) UpdateProvider(id int, update models.ProviderUpdate) (*models.ServiceProvider, error) {
	s.providersMu.Lock()
	defer s.providersMu.Unlock()

	existing, ok := s.providers[id]
	if !ok {
		return nil, nil
	}

	updated := update.Apply(existing)
	s.providers[id] = updated

	updated = updated.Clone()
	return &updated, nil
}

// SearchProviders returns the providers (optionally of one category) whose
// name, title, description or specialties contain query, highest rated first.
func (s *Store) SearchProviders(query string, categoryID int) ([]models.ServiceProvider, error) {
	providers := s.snapshotProviders()
	providers = store.FilterByCategory(providers, categoryID)
	providers = store.FilterBySearch(providers, query)
	store.SortByRating(providers)
	return providers, nil
}
