package services

import (
	"local-services/models"
	"local-services/store"
)

// ProviderQuery holds the optional filters of a provider listing
type ProviderQuery struct {
	CategoryID int
	Location   string
	Search     string
}

// ProviderService handles business logic for service providers
type ProviderService struct {
	repo ProviderRepository
}

// NewProviderService creates a new provider service
func NewProviderService(repo ProviderRepository) *ProviderService {
	return &ProviderService{repo: repo}
}

// List returns providers highest rated first. A search term switches to
// full-text matching, which honours the category but not the location.
func (ps *ProviderService) List(q ProviderQuery) ([]models.ServiceProvider, error) {
	if q.Search != "" {
		return ps.repo.SearchProviders(q.Search, q.CategoryID)
	}
	return ps.repo.ListProviders(store.ProviderFilter{
		CategoryID: q.CategoryID,
		Location:   q.Location,
	})
}

// Get retrieves a provider by ID
func (ps *ProviderService) Get(id int) (*models.ServiceProvider, error) {
	provider, err := ps.repo.GetProvider(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

// Create registers a new provider
func (ps *ProviderService) Create(data models.NewServiceProvider) (*models.ServiceProvider, error) {
	return ps.repo.CreateProvider(data)
}

// Update applies a partial update to a provider
func (ps *ProviderService) Update(id int, update models.ProviderUpdate) (*models.ServiceProvider, error) {
	provider, err := ps.repo.UpdateProvider(id, update)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}
