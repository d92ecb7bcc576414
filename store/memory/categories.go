package memory

import (
	"local-services/models"
	"local-services/store"
)

// ==================== CATEGORIES ====================

// ListCategories returns all categories in insertion order.
func (s *Store) ListCategories() ([]models.ServiceCategory, error) {
	s.categoriesMu.RLock()
	defer s.categoriesMu.RUnlock()

	categories := make([]models.ServiceCategory, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		categories = append(categories, s.categories[id])
	}
	return categories, nil
}

func (s *Store) GetCategory(id int) (*models.ServiceCategory, error) {
	s.categoriesMu.RLock()
	defer s.categoriesMu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

// GetCategoryBySlug returns the first category, in insertion order, whose
// slug equals slug exactly.
func (s *Store) GetCategoryBySlug(slug string) (*models.ServiceCategory, error) {
	s.categoriesMu.RLock()
	defer s.categoriesMu.RUnlock()

	for _, id := range s.categoryOrder {
		if category := s.categories[id]; category.Slug == slug {
			return &category, nil
		}
	}
	return nil, nil
}

// CreateCategory stores data under a fresh id. Slug uniqueness is the
// caller's concern.
func (s *Store) CreateCategory(data models.NewServiceCategory) (*models.ServiceCategory, error) {
	s.categoriesMu.Lock()
	defer s.categoriesMu.Unlock()

	category := data.WithID(s.ids.Next(store.KindCategory))
	s.categories[category.ID] = category
	s.categoryOrder = append(s.categoryOrder, category.ID)

	return &category, nil
}
