package models

import "time"

// Known inquiry states. Status is an open set: any non-empty string is
// stored as given.
const (
	InquiryStatusPending   = "pending"
	InquiryStatusContacted = "contacted"
	InquiryStatusResolved  = "resolved"
	InquiryStatusCancelled = "cancelled"
)

// Inquiry is a customer's contact request addressed to a provider.
type Inquiry struct {
	ID            int       `json:"id"`
	ProviderID    int       `json:"providerId"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail *string   `json:"customerEmail"`
	ServiceNeeded string    `json:"serviceNeeded"`
	Message       *string   `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Clone returns a copy that shares no pointers with i.
func (i Inquiry) Clone() Inquiry {
	i.CustomerEmail = cloneString(i.CustomerEmail)
	i.Message = cloneString(i.Message)
	return i
}

// NewInquiry is the input for submitting an inquiry. Status is ignored:
// every inquiry starts out pending.
type NewInquiry struct {
	ProviderID    int     `json:"providerId" validate:"required,gte=1"`
	CustomerName  string  `json:"customerName" validate:"required,max=200"`
	CustomerPhone string  `json:"customerPhone" validate:"required,max=50"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	ServiceNeeded string  `json:"serviceNeeded" validate:"required,max=200"`
	Message       *string `json:"message" validate:"omitempty,max=2000"`
	Status        string  `json:"status,omitempty"`
}

// AsPending builds the stored record for a new inquiry.
func (n NewInquiry) AsPending(id int, createdAt time.Time) Inquiry {
	return Inquiry{
		ID:            id,
		ProviderID:    n.ProviderID,
		CustomerName:  n.CustomerName,
		CustomerPhone: n.CustomerPhone,
		CustomerEmail: cloneString(n.CustomerEmail),
		ServiceNeeded: n.ServiceNeeded,
		Message:       cloneString(n.Message),
		Status:        InquiryStatusPending,
		CreatedAt:     createdAt,
	}
}

// UpdateInquiryStatusRequest is the body of a status change.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}
