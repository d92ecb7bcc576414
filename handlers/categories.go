package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"local-services/app"
	"local-services/models"
	"local-services/services"
)

// GetCategories lists all service categories
func GetCategories(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		categories, err := a.CategoryService.List()
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch categories", err)
		}

		return success(c, categories)
	}
}

// GetCategoryBySlug retrieves a single category
func GetCategoryBySlug(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category, err := a.CategoryService.GetBySlug(c.Params("slug"))
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				return notFound(c, "Category not found")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch category", err)
		}

		return success(c, category)
	}
}

// CreateCategory adds a new category
func CreateCategory(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewServiceCategory
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		category, err := a.CategoryService.Create(req)
		if err != nil {
			if errors.Is(err, services.ErrCategoryAlreadyExists) {
				return conflict(c, "Category with this slug already exists")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to create category", err)
		}

		return created(c, category)
	}
}
