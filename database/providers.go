package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"local-services/models"
	"local-services/store"
)

// ==================== PROVIDER OPERATIONS ====================

const providerColumns = `id, name, email, phone, profile_image, category_id, title, description,
	experience, hourly_rate, location, rating, review_count, is_available, service_image,
	specialties, created_at`

func scanProvider(s scanner) (models.ServiceProvider, error) {
	var p models.ServiceProvider
	var profileImage, experience, serviceImage, specialties sql.NullString
	var reviewCount sql.NullInt64
	var isAvailable sql.NullBool
	var createdAt sql.NullTime

	err := s.Scan(
		&p.ID, &p.Name, &p.Email, &p.Phone, &profileImage, &p.CategoryID, &p.Title, &p.Description,
		&experience, &p.HourlyRate, &p.Location, &p.Rating, &reviewCount, &isAvailable, &serviceImage,
		&specialties, &createdAt,
	)
	if err != nil {
		return p, err
	}

	p.ProfileImage = fromNullString(profileImage)
	p.Experience = fromNullString(experience)
	p.ServiceImage = fromNullString(serviceImage)
	p.ReviewCount = int(reviewCount.Int64)
	p.IsAvailable = !isAvailable.Valid || isAvailable.Bool
	if createdAt.Valid {
		p.CreatedAt = createdAt.Time
	}

	if specialties.Valid && specialties.String != "" {
		if err := json.Unmarshal([]byte(specialties.String), &p.Specialties); err != nil {
			return p, fmt.Errorf("decode specialties of provider %d: %w", p.ID, err)
		}
	}

	return p, nil
}

// specialtiesValue encodes specialties as a JSON array, or NULL when absent.
func specialtiesValue(specialties []string) (any, error) {
	if specialties == nil {
		return nil, nil
	}
	data, err := json.Marshal(specialties)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func fromNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// queryProviders loads providers in insertion order, optionally limited to
// one category.
func (r *Repository) queryProviders(categoryID int) ([]models.ServiceProvider, error) {
	rows, err := r.db.Query(`
		SELECT `+providerColumns+` FROM service_providers
		WHERE ? = 0 OR category_id = ?
		ORDER BY id ASC
	`, categoryID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer rows.Close()

	providers := make([]models.ServiceProvider, 0)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, fmt.Errorf("scan provider: %w", err)
		}
		providers = append(providers, p)
	}

	return providers, rows.Err()
}

// ListProviders returns the providers matching filter, highest rated first.
// Location matching runs in Go so that case folding is the same as the
// in-memory store.
func (r *Repository) ListProviders(filter store.ProviderFilter) ([]models.ServiceProvider, error) {
	providers, err := r.queryProviders(filter.CategoryID)
	if err != nil {
		return nil, err
	}

	providers = store.FilterByLocation(providers, filter.Location)
	store.SortByRating(providers)
	return providers, nil
}

// SearchProviders returns the providers whose name, title, description or
// specialties contain query, highest rated first.
func (r *Repository) SearchProviders(query string, categoryID int) ([]models.ServiceProvider, error) {
	providers, err := r.queryProviders(categoryID)
	if err != nil {
		return nil, err
	}

	providers = store.FilterBySearch(providers, query)
	store.SortByRating(providers)
	return providers, nil
}

// GetProvider retrieves a provider by its ID
func (r *Repository) GetProvider(id int) (*models.ServiceProvider, error) {
	p, err := scanProvider(r.db.QueryRow(`
		SELECT `+providerColumns+` FROM service_providers WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get provider %d: %w", id, err)
	}

	return &p, nil
}

// CreateProvider creates a provider with a zero rating, no reviews, and
// available, whatever the input says
func (r *Repository) CreateProvider(data models.NewServiceProvider) (*models.ServiceProvider, error) {
	var created models.ServiceProvider
	err := r.withTx(func(tx *sql.Tx) error {
		id, err := nextID(tx, store.KindProvider)
		if err != nil {
			return err
		}
		created = data.WithDefaults(id, r.now())
		return insertProvider(tx, created)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProvider merges the supplied fields over the stored provider and
// writes the whole record back
func (r *Repository) UpdateProvider(id int, update models.ProviderUpdate) (*models.ServiceProvider, error) {
	var updated *models.ServiceProvider
	err := r.withTx(func(tx *sql.Tx) error {
		existing, err := scanProvider(tx.QueryRow(`
			SELECT `+providerColumns+` FROM service_providers WHERE id = ?
		`, id))
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get provider %d: %w", id, err)
		}

		p := update.Apply(existing)
		specialties, err := specialtiesValue(p.Specialties)
		if err != nil {
			return fmt.Errorf("encode specialties: %w", err)
		}

		_, err = tx.Exec(`
			UPDATE service_providers SET
				name = ?, email = ?, phone = ?, profile_image = ?, category_id = ?,
				title = ?, description = ?, experience = ?, hourly_rate = ?, location = ?,
				rating = ?, review_count = ?, is_available = ?, service_image = ?, specialties = ?
			WHERE id = ?
		`,
			p.Name, p.Email, p.Phone, p.ProfileImage, p.CategoryID,
			p.Title, p.Description, p.Experience, p.HourlyRate, p.Location,
			p.Rating, p.ReviewCount, p.IsAvailable, p.ServiceImage, specialties,
			id,
		)
		if err != nil {
			return fmt.Errorf("update provider %d: %w", id, err)
		}

		updated = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func insertProvider(tx *sql.Tx, p models.ServiceProvider) error {
	specialties, err := specialtiesValue(p.Specialties)
	if err != nil {
		return fmt.Errorf("encode specialties: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO service_providers (`+providerColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.Name, p.Email, p.Phone, p.ProfileImage, p.CategoryID, p.Title, p.Description,
		p.Experience, p.HourlyRate, p.Location, p.Rating, p.ReviewCount, p.IsAvailable, p.ServiceImage,
		specialties, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}
