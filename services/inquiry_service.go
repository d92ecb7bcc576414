package services

import (
	"strings"

	"local-services/models"
)

// InquiryService handles business logic for customer inquiries
type InquiryService struct {
	repo InquiryRepository
}

// NewInquiryService creates a new inquiry service
func NewInquiryService(repo InquiryRepository) *InquiryService {
	return &InquiryService{repo: repo}
}

// List retrieves all inquiries, newest first
func (is *InquiryService) List() ([]models.Inquiry, error) {
	return is.repo.ListInquiries()
}

// Get retrieves an inquiry by ID
func (is *InquiryService) Get(id int) (*models.Inquiry, error) {
	inquiry, err := is.repo.GetInquiry(id)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}
	return inquiry, nil
}

// Create submits a new inquiry. It always starts out pending.
func (is *InquiryService) Create(data models.NewInquiry) (*models.Inquiry, error) {
	return is.repo.CreateInquiry(data)
}

// UpdateStatus sets the status of an inquiry
func (is *InquiryService) UpdateStatus(id int, status string) (*models.Inquiry, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ErrStatusRequired
	}

	inquiry, err := is.repo.UpdateInquiryStatus(id, status)
	if err != nil {
		return nil, err
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}
	return inquiry, nil
}
