package database

import (
	"database/sql"
	"fmt"

	"local-services/models"
	"local-services/store"
)

// ==================== INQUIRY OPERATIONS ====================

const inquiryColumns = `id, provider_id, customer_name, customer_phone, customer_email,
	service_needed, message, status, created_at`

func scanInquiry(s scanner) (models.Inquiry, error) {
	var i models.Inquiry
	var email, message sql.NullString
	var createdAt sql.NullTime

	err := s.Scan(
		&i.ID, &i.ProviderID, &i.CustomerName, &i.CustomerPhone, &email,
		&i.ServiceNeeded, &message, &i.Status, &createdAt,
	)
	if err != nil {
		return i, err
	}

	i.CustomerEmail = fromNullString(email)
	i.Message = fromNullString(message)
	if createdAt.Valid {
		i.CreatedAt = createdAt.Time
	}
	return i, nil
}

// ListInquiries returns all inquiries, most recent first
func (r *Repository) ListInquiries() ([]models.Inquiry, error) {
	rows, err := r.db.Query(`SELECT ` + inquiryColumns + ` FROM inquiries ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]models.Inquiry, 0)
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inquiries = append(inquiries, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	store.SortByRecency(inquiries)
	return inquiries, nil
}

// GetInquiry retrieves an inquiry by its ID
func (r *Repository) GetInquiry(id int) (*models.Inquiry, error) {
	i, err := scanInquiry(r.db.QueryRow(`
		SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?
	`, id))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get inquiry %d: %w", id, err)
	}

	return &i, nil
}

// CreateInquiry stores a new inquiry as pending
func (r *Repository) CreateInquiry(data models.NewInquiry) (*models.Inquiry, error) {
	var created models.Inquiry
	err := r.withTx(func(tx *sql.Tx) error {
		id, err := nextID(tx, store.KindInquiry)
		if err != nil {
			return err
		}

		created = data.AsPending(id, r.now())
		_, err = tx.Exec(`
			INSERT INTO inquiries (`+inquiryColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			created.ID, created.ProviderID, created.CustomerName, created.CustomerPhone, created.CustomerEmail,
			created.ServiceNeeded, created.Message, created.Status, created.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert inquiry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateInquiryStatus replaces the status of an inquiry
func (r *Repository) UpdateInquiryStatus(id int, status string) (*models.Inquiry, error) {
	var updated *models.Inquiry
	err := r.withTx(func(tx *sql.Tx) error {
		result, err := tx.Exec(`UPDATE inquiries SET status = ? WHERE id = ?`, status, id)
		if err != nil {
			return fmt.Errorf("update inquiry %d: %w", id, err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update inquiry %d: %w", id, err)
		}
		if rows == 0 {
			return nil
		}

		i, err := scanInquiry(tx.QueryRow(`
			SELECT `+inquiryColumns+` FROM inquiries WHERE id = ?
		`, id))
		if err != nil {
			return fmt.Errorf("reload inquiry %d: %w", id, err)
		}
		updated = &i
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
