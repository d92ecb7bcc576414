package models

// ServiceCategory groups providers offering the same kind of service.
type ServiceCategory struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// NewServiceCategory is the input for creating a category.
type NewServiceCategory struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"required,max=100,slug"`
	Icon        string `json:"icon" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=500"`
	Color       string `json:"color" validate:"required,max=50"`
}

// WithID builds the stored record for the given id.
func (n NewServiceCategory) WithID(id int) ServiceCategory {
	return ServiceCategory{
		ID:          id,
		Name:        n.Name,
		Slug:        n.Slug,
		Icon:        n.Icon,
		Description: n.Description,
		Color:       n.Color,
	}
}
