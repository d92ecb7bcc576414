package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"local-services/app"
	"local-services/models"
	"local-services/services"
)

// GetInquiries lists all inquiries, newest first
func GetInquiries(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inquiries, err := a.InquiryService.List()
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch inquiries", err)
		}

		return success(c, inquiries)
	}
}

// GetInquiry retrieves a single inquiry
func GetInquiry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "Invalid inquiry ID")
		}

		inquiry, err := a.InquiryService.Get(id)
		if err != nil {
			if errors.Is(err, services.ErrInquiryNotFound) {
				return notFound(c, "Inquiry not found")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to fetch inquiry", err)
		}

		return success(c, inquiry)
	}
}

// CreateInquiry submits a customer inquiry
func CreateInquiry(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.NewInquiry
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		// Validate request
		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		inquiry, err := a.InquiryService.Create(req)
		if err != nil {
			return serverErrorWithDetails(c, a.Logger, "Failed to create inquiry", err)
		}

		return created(c, inquiry)
	}
}

// UpdateInquiryStatus changes the status of an inquiry
func UpdateInquiryStatus(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := idParam(c, "id")
		if !ok {
			return badRequest(c, "Invalid inquiry ID")
		}

		var req models.UpdateInquiryStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Validator.Validate(&req); err != nil {
			return validationError(c, err)
		}

		inquiry, err := a.InquiryService.UpdateStatus(id, req.Status)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrStatusRequired):
				return badRequest(c, "Status is required")
			case errors.Is(err, services.ErrInquiryNotFound):
				return notFound(c, "Inquiry not found")
			}
			return serverErrorWithDetails(c, a.Logger, "Failed to update inquiry", err)
		}

		return success(c, inquiry)
	}
}
