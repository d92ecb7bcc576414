package services

import (
	"local-services/models"
	"local-services/store"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	ListCategories() ([]models.ServiceCategory, error)
	GetCategoryBySlug(slug string) (*models.ServiceCategory, error)
	CreateCategory(data models.NewServiceCategory) (*models.ServiceCategory, error)
}

// ProviderRepository defines the interface for provider data access
type ProviderRepository interface {
	ListProviders(filter store.ProviderFilter) ([]models.ServiceProvider, error)
	SearchProviders(query string, categoryID int) ([]models.ServiceProvider, error)
	GetProvider(id int) (*models.ServiceProvider, error)
	CreateProvider(data models.NewServiceProvider) (*models.ServiceProvider, error)
	UpdateProvider(id int, update models.ProviderUpdate) (*models.ServiceProvider, error)
}

// InquiryRepository defines the interface for inquiry data access
type InquiryRepository interface {
	ListInquiries() ([]models.Inquiry, error)
	GetInquiry(id int) (*models.Inquiry, error)
	CreateInquiry(data models.NewInquiry) (*models.Inquiry, error)
	UpdateInquiryStatus(id int, status string) (*models.Inquiry, error)
}
