package app

import (
	"log/slog"

	"local-services/services"
	"local-services/store"
	"local-services/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store           store.Store
	CategoryService *services.CategoryService
	ProviderService *services.ProviderService
	InquiryService  *services.InquiryService
	Validator       *validator.Validator
	Logger          *slog.Logger
}

// New creates a new App instance with all dependencies
func New(s store.Store, logger *slog.Logger) *App {
	return &App{
		Store:           s,
		CategoryService: services.NewCategoryService(s),
		ProviderService: services.NewProviderService(s),
		InquiryService:  services.NewInquiryService(s),
		Validator:       validator.New(),
		Logger:          logger,
	}
}
