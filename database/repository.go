package database

import (
	"database/sql"
	"fmt"
	"time"

	"local-services/store"
)

var _ store.Store = (*Repository)(nil)

// Repository is the SQLite implementation of store.Store.
type Repository struct {
	db  *DB
	now func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock sets the time source used for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

func NewRepository(db *DB, opts ...Option) *Repository {
	r := &Repository{db: db, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Close closes the underlying database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// withTx runs fn in a transaction, committing only if fn succeeds.
func (r *Repository) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// nextID advances and returns the id sequence of kind.
func nextID(tx *sql.Tx, kind store.Kind) (int, error) {
	var id int
	err := tx.QueryRow(`
		INSERT INTO id_counters (kind, last_id) VALUES (?, 1)
		ON CONFLICT(kind) DO UPDATE SET last_id = last_id + 1
		RETURNING last_id
	`, string(kind)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("allocate %s id: %w", kind, err)
	}
	return id, nil
}

// ==================== SEEDING ====================

// Seed loads the default categories and providers into a database that has
// never allocated an id. It does nothing on a database already in use.
func (r *Repository) Seed() error {
	return r.withTx(func(tx *sql.Tx) error {
		var used int
		if err := tx.QueryRow(`SELECT COUNT(*) FROM id_counters`).Scan(&used); err != nil {
			return fmt.Errorf("check seed state: %w", err)
		}
		if used > 0 {
			return nil
		}

		for _, c := range store.SeedCategories() {
			if _, err := insertCategory(tx, c); err != nil {
				return err
			}
		}

		for _, p := range store.SeedProviders() {
			id, err := nextID(tx, store.KindProvider)
			if err != nil {
				return err
			}
			p.ID = id
			p.CreatedAt = r.now()
			if err := insertProvider(tx, p); err != nil {
				return err
			}
		}
		return nil
	})
}
