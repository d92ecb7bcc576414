package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// MemoryPath opens a private in-memory database that disappears on Close.
const MemoryPath = ":memory:"

type DB struct {
	*sql.DB
}

func New(dbPath string) (*DB, error) {
	inMemory := dbPath == MemoryPath

	// Ensure directory exists
	if !inMemory {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Writers take the lock up front and wait for each other instead of
	// failing with SQLITE_BUSY
	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if inMemory {
		// Every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)

		// Enable WAL mode for better concurrency
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	return &DB{db}, nil
}

func (db *DB) Migrate() error {
	queries := []string{
		// Categories table. Slug uniqueness is checked by the caller, not here.
		`CREATE TABLE IF NOT EXISTS service_categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			icon TEXT NOT NULL,
			description TEXT NOT NULL,
			color TEXT NOT NULL
		)`,

		// Providers table. Decimals are stored as TEXT to keep their exact form.
		`CREATE TABLE IF NOT EXISTS service_providers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			profile_image TEXT,
			category_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			experience TEXT,
			hourly_rate TEXT NOT NULL,
			location TEXT NOT NULL,
			rating TEXT DEFAULT '0',
			review_count INTEGER DEFAULT 0,
			is_available BOOLEAN DEFAULT 1,
			service_image TEXT,
			specialties TEXT,
			created_at DATETIME
		)`,

		// Inquiries table
		`CREATE TABLE IF NOT EXISTS inquiries (
			id INTEGER PRIMARY KEY,
			provider_id INTEGER NOT NULL,
			customer_name TEXT NOT NULL,
			customer_phone TEXT NOT NULL,
			customer_email TEXT,
			service_needed TEXT NOT NULL,
			message TEXT,
			status TEXT DEFAULT 'pending',
			created_at DATETIME
		)`,

		// Last id handed out per entity kind. Ids are never reused.
		`CREATE TABLE IF NOT EXISTS id_counters (
			kind TEXT PRIMARY KEY,
			last_id INTEGER NOT NULL
		)`,

		// Indexes for performance
		`CREATE INDEX IF NOT EXISTS idx_service_categories_slug ON service_categories(slug)`,
		`CREATE INDEX IF NOT EXISTS idx_service_providers_category ON service_providers(category_id)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
