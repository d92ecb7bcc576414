package memory

import (
	"local-services/models"
	"local-services/store"
)

// ==================== INQUIRIES ====================

// ListInquiries returns all inquiries, most recent first.
func (s *Store) ListInquiries() ([]models.Inquiry, error) {
	s.inquiriesMu.RLock()
	inquiries := make([]models.Inquiry, 0, len(s.inquiryOrder))
	for _, id := range s.inquiryOrder {
		inquiries = append(inquiries, s.inquiries[id].Clone())
	}
	s.inquiriesMu.RUnlock()

	store.SortByRecency(inquiries)
	return inquiries, nil
}

func (s *Store) GetInquiry(id int) (*models.Inquiry, error) {
	s.inquiriesMu.RLock()
	defer s.inquiriesMu.RUnlock()

	inquiry, ok := s.inquiries[id]
	if !ok {
		return nil, nil
	}
	inquiry = inquiry.Clone()
	return &inquiry, nil
}

// CreateInquiry stores a new inquiry as pending, whatever status was sent.
func (s *Store) CreateInquiry(data models.NewInquiry) (*models.Inquiry, error) {
	s.inquiriesMu.Lock()
	defer s.inquiriesMu.Unlock()

	inquiry := data.AsPending(s.ids.Next(store.KindInquiry), s.now())
	s.inquiries[inquiry.ID] = inquiry
	s.inquiryOrder = append(s.inquiryOrder, inquiry.ID)

	inquiry = inquiry.Clone()
	return &inquiry, nil
}

// UpdateInquiryStatus replaces the status of an inquiry. Any status string
// is accepted.
func (s *Store) UpdateInquiryStatus(id int, status string) (*models.Inquiry, error) {
	s.inquiriesMu.Lock()
	defer s.inquiriesMu.Unlock()

	existing, ok := s.inquiries[id]
	if !ok {
		return nil, nil
	}

	existing.Status = status
	s.inquiries[id] = existing

	updated := existing.Clone()
	return &updated, nil
}
