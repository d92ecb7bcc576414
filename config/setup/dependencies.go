package setup

import (
	"fmt"
	"log/slog"

	"local-services/app"
	"local-services/config"
	"local-services/database"
	"local-services/store"
	"local-services/store/memory"
)

// InitStore opens the store selected by cfg.StoreDriver
func InitStore(cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		var opts []memory.Option
		if !cfg.SeedData {
			opts = append(opts, memory.WithoutSeed())
		}
		logger.Info("memory store initialized", "seeded", cfg.SeedData)
		return memory.New(opts...), nil

	case config.DriverSQLite:
		repo, err := InitDatabase(cfg.DBPath, cfg.SeedData, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// InitDatabase initializes the SQLite database, runs migrations and seeds an
// unused database
func InitDatabase(dbPath string, seed bool, logger *slog.Logger) (*database.Repository, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	repo := database.NewRepository(db)
	if seed {
		if err := repo.Seed(); err != nil {
			repo.Close()
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	logger.Info("database initialized", "path", dbPath, "seeded", seed)
	return repo, nil
}

// InitApp initializes the application with all dependencies
func InitApp(s store.Store, logger *slog.Logger) *app.App {
	application := app.New(s, logger)
	logger.Info("application initialized with dependency injection")
	return application
}

// Shutdown performs graceful shutdown of all services
func Shutdown(s store.Store, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if s != nil {
		if err := s.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
			return
		}
		logger.Info("store closed")
	}
}
