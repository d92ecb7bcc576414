package setup

import (
	"github.com/gofiber/fiber/v2"

	"local-services/app"
	"local-services/handlers"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// Public pages
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Get("/health", handlers.Health)

	api := fiberApp.Group("/api")

	api.Get("/categories", handlers.GetCategories(application))
	api.Get("/categories/:slug", handlers.GetCategoryBySlug(application))
	api.Post("/categories", handlers.CreateCategory(application))

	api.Get("/providers", handlers.GetProviders(application))
	api.Get("/providers/:id", handlers.GetProvider(application))
	api.Post("/providers", handlers.CreateProvider(application))
	api.Patch("/providers/:id", handlers.UpdateProvider(application))

	api.Get("/inquiries", handlers.GetInquiries(application))
	api.Get("/inquiries/:id", handlers.GetInquiry(application))
	api.Post("/inquiries", handlers.CreateInquiry(application))
	api.Patch("/inquiries/:id/status", handlers.UpdateInquiryStatus(application))
}
