package handlers

import (
	"github.com/gofiber/fiber/v2"

	"local-services/app"
	"local-services/config"
	"local-services/templates/pages"
)

// HomePage renders the landing page listing every category
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.CategoryService.List()
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch categories", err)
		}

		// Set HTML content type
		c.Set("Content-Type", "text/html; charset=utf-8")
		// Render with Templ
		return pages.Home(categories, !config.AppConfig.IsProduction()).Render(c.Context(), c.Response().BodyWriter())
	}
}

// Health reports that the process is serving requests
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
