package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"local-services/app"
	"local-services/models"
	"local-services/services"
)

// GetProviders lists providers, optionally filtered by categoryId and
// location or matched against a search term
func GetProviders(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A missing or malformed categoryId means no category filter
		categoryID, _ := strconv.Atoi(c.Query("categoryId"))

		providers, err := a.ProviderService.List(services.ProviderQuery{
			CategoryID: categoryID,
			Location:   c.Query("location"),
			Search:     c.Query("search"),
		})
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch providers", err)
		}

		return success(c, providers)
	}
}

// GetProvider retrieves a single provider
func GetProvider(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "Invalid provider ID")
		}

		provider, err := a.ProviderService.Get(id)
		if err != nil {
			if errors.Is(err, services.ErrProviderNotFound) {
				return notFound(c, "Provider not found")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch provider", err)
		}

		return success(c, provider)
	}
}

// CreateProvider registers a new provider
func CreateProvider(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewServiceProvider
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		provider, err := a.ProviderService.Create(req)
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to create provider", err)
		}

		return created(c, provider)
	}
}

// UpdateProvider applies a partial update to a provider
func UpdateProvider(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "Invalid provider ID")
		}

		var req models.ProviderUpdate
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if req.IsEmpty() {
			return badRequest(c, "No fields to update")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		provider, err := a.ProviderService.Update(id, req)
		if err != nil {
			if errors.Is(err, services.ErrProviderNotFound) {
				return notFound(c, "Provider not found")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to update provider", err)
		}

		return success(c, provider)
	}
}
