package database

import (
	"database/sql"
	"fmt"

	"local-services/models"
	"local-services/store"
)

// ==================== CATEGORY OPERATIONS ====================

const categoryColumns = `id, name, slug, icon, description, color`

func scanCategory(s scanner) (models.ServiceCategory, error) {
	var c models.ServiceCategory
	err := s.Scan(&c.ID, &c.Name, &c.Slug, &c.Icon, &c.Description, &c.Color)
	return c, err
}

// ListCategories returns all categories in insertion order
func (r *Repository) ListCategories() ([]models.ServiceCategory, error) {
	rows, err := r.db.Query(`SELECT ` + categoryColumns + ` FROM service_categories ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	// Initialize with empty slice to avoid returning nil
	categories := make([]models.ServiceCategory, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategory retrieves a category by its ID
func (r *Repository) GetCategory(id int) (*models.ServiceCategory, error) {
	c, err := scanCategory(r.db.QueryRow(`
		SELECT `+categoryColumns+` FROM service_categories WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}

	return &c, nil
}

// GetCategoryBySlug retrieves the oldest category with exactly this slug
func (r *Repository) GetCategoryBySlug(slug string) (*models.ServiceCategory, error) {
	c, err := scanCategory(r.db.QueryRow(`
		SELECT `+categoryColumns+` FROM service_categories
		WHERE slug = ?
		ORDER BY id ASC
		LIMIT 1
	`, slug))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category %q: %w", slug, err)
	}

	return &c, nil
}

// CreateCategory creates a new category
func (r *Repository) CreateCategory(data models.NewServiceCategory) (*models.ServiceCategory, error) {
	var created models.ServiceCategory
	err := r.withTx(func(tx *sql.Tx) error {
		c, err := insertCategory(tx, data)
		created = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func insertCategory(tx *sql.Tx, data models.NewServiceCategory) (models.ServiceCategory, error) {
	id, err := nextID(tx, store.KindCategory)
	if err != nil {
		return models.ServiceCategory{}, err
	}

	c := data.WithID(id)
	_, err = tx.Exec(`
		INSERT INTO service_categories (`+categoryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.ID, c.Name, c.Slug, c.Icon, c.Description, c.Color)
	if err != nil {
		return models.ServiceCategory{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}
