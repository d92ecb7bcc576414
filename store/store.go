// Package store defines the contract of the marketplace data store and the
// query semantics shared by its backends.
//
// Lookups that find nothing return a nil record and a nil error. A non-nil
// error always means the backend failed.
package store

import "local-services/models"

// CategoryRepository reads and creates service categories.
type CategoryRepository interface {
	ListCategories() ([]models.ServiceCategory, error)
	GetCategory(id int) (*models.ServiceCategory, error)
	GetCategoryBySlug(slug string) (*models.ServiceCategory, error)
	CreateCategory(data models.NewServiceCategory) (*models.ServiceCategory, error)
}

// ProviderRepository queries and mutates service providers.
type ProviderRepository interface {
	ListProviders(filter ProviderFilter) ([]models.ServiceProvider, error)
	GetProvider(id int) (*models.ServiceProvider, error)
	CreateProvider(data models.NewServiceProvider) (*models.ServiceProvider, error)
	UpdateProvider(id int, update models.ProviderUpdate) (*models.ServiceProvider, error)
	SearchProviders(query string, categoryID int) ([]models.ServiceProvider, error)
}

// InquiryRepository records customer inquiries and their status.
type InquiryRepository interface {
	ListInquiries() ([]models.Inquiry, error)
	GetInquiry(id int) (*models.Inquiry, error)
	CreateInquiry(data models.NewInquiry) (*models.Inquiry, error)
	UpdateInquiryStatus(id int, status string) (*models.Inquiry, error)
}

// Store aggregates the three repositories. Implementations are seeded when
// constructed and live until Close.
type Store interface {
	CategoryRepository
	ProviderRepository
	InquiryRepository
	Close() error
}

// ProviderFilter narrows ListProviders. Zero values disable a filter.
type ProviderFilter struct {
	CategoryID int
	Location   string
}
