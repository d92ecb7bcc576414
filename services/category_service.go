package services

import (
	"strings"

	"local-services/models"
)

// CategoryService handles business logic for service categories
type CategoryService struct {
	repo CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// List retrieves all categories in creation order
func (cs *CategoryService) List() ([]models.ServiceCategory, error) {
	return cs.repo.ListCategories()
}

// GetBySlug retrieves a category by its slug
func (cs *CategoryService) GetBySlug(slug string) (*models.ServiceCategory, error) {
	category, err := cs.repo.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create creates a new category. Slugs address categories in URLs, so a
// taken slug is rejected.
func (cs *CategoryService) Create(data models.NewServiceCategory) (*models.ServiceCategory, error) {
	data.Name = strings.TrimSpace(data.Name)
	data.Slug = strings.TrimSpace(data.Slug)

	existing, err := cs.repo.GetCategoryBySlug(data.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryAlreadyExists
	}

	return cs.repo.CreateCategory(data)
}
