package services

import "errors"

// Common service-level errors
var (
	// Category errors
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category slug already exists")

	// Provider errors
	ErrProviderNotFound = errors.New("provider not found")

	// Inquiry errors
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrStatusRequired  = errors.New("status is required")
)
