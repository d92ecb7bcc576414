package models

import (
	"slices"
	"time"
)

// ServiceProvider is a professional listed under a category.
type ServiceProvider struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ProfileImage *string   `json:"profileImage"`
	CategoryID   int       `json:"categoryId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Experience   *string   `json:"experience"`
	HourlyRate   Decimal   `json:"hourlyRate"`
	Location     string    `json:"location"`
	Rating       Decimal   `json:"rating"`
	ReviewCount  int       `json:"reviewCount"`
	IsAvailable  bool      `json:"isAvailable"`
	ServiceImage *string   `json:"serviceImage"`
	Specialties  []string  `json:"specialties"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Clone returns a deep copy so callers never share slices or pointers with
// the stored record.
func (p ServiceProvider) Clone() ServiceProvider {
	p.ProfileImage = cloneString(p.ProfileImage)
	p.Experience = cloneString(p.Experience)
	p.ServiceImage = cloneString(p.ServiceImage)
	p.Specialties = slices.Clone(p.Specialties)
	return p
}

// NewServiceProvider is the input for creating a provider. Rating,
// ReviewCount and IsAvailable are accepted for compatibility but ignored:
// new providers always start unrated and available.
type NewServiceProvider struct {
	Name         string   `json:"name" validate:"required,max=200"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"required,max=50"`
	ProfileImage *string  `json:"profileImage" validate:"omitempty,url"`
	CategoryID   int      `json:"categoryId" validate:"required,gte=1"`
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"required,max=2000"`
	Experience   *string  `json:"experience" validate:"omitempty,max=100"`
	HourlyRate   Decimal  `json:"hourlyRate" validate:"required,decimal,nonnegative"`
	Location     string   `json:"location" validate:"required,max=200"`
	Rating       *Decimal `json:"rating,omitempty"`
	ReviewCount  *int     `json:"reviewCount,omitempty"`
	IsAvailable  *bool    `json:"isAvailable,omitempty"`
	ServiceImage *string  `json:"serviceImage" validate:"omitempty,url"`
	Specialties  []string `json:"specialties" validate:"omitempty,dive,required,max=100"`
}

// WithDefaults builds the stored record for a newly created provider.
func (n NewServiceProvider) WithDefaults(id int, createdAt time.Time) ServiceProvider {
	return ServiceProvider{
		ID:           id,
		Name:         n.Name,
		Email:        n.Email,
		Phone:        n.Phone,
		ProfileImage: cloneString(n.ProfileImage),
		CategoryID:   n.CategoryID,
		Title:        n.Title,
		Description:  n.Description,
		Experience:   cloneString(n.Experience),
		HourlyRate:   n.HourlyRate,
		Location:     n.Location,
		Rating:       MustDecimal("0"),
		ReviewCount:  0,
		IsAvailable:  true,
		ServiceImage: cloneString(n.ServiceImage),
		Specialties:  slices.Clone(n.Specialties),
		CreatedAt:    createdAt,
	}
}

// ProviderUpdate carries the fields of a partial update. Nil fields are left
// untouched. ID and CreatedAt cannot be changed.
type ProviderUpdate struct {
	Name         *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email        *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string   `json:"phone,omitempty" validate:"omitempty,min=1,max=50"`
	ProfileImage *string   `json:"profileImage,omitempty" validate:"omitempty,url"`
	CategoryID   *int      `json:"categoryId,omitempty" validate:"omitempty,gte=1"`
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description  *string   `json:"description,omitempty" validate:"omitempty,min=1,max=2000"`
	Experience   *string   `json:"experience,omitempty" validate:"omitempty,max=100"`
	HourlyRate   *Decimal  `json:"hourlyRate,omitempty" validate:"omitempty,decimal,nonnegative"`
	Location     *string   `json:"location,omitempty" validate:"omitempty,min=1,max=200"`
	Rating       *Decimal  `json:"rating,omitempty" validate:"omitempty,rating"`
	ReviewCount  *int      `json:"reviewCount,omitempty" validate:"omitempty,gte=0"`
	IsAvailable  *bool     `json:"isAvailable,omitempty"`
	ServiceImage *string   `json:"serviceImage,omitempty" validate:"omitempty,url"`
	Specialties  *[]string `json:"specialties,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u ProviderUpdate) IsEmpty() bool {
	return u == ProviderUpdate{}
}

// Apply returns p with every supplied field of u written over it.
func (u ProviderUpdate) Apply(p ServiceProvider) ServiceProvider {
	p = p.Clone()
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.ProfileImage != nil {
		p.ProfileImage = cloneString(u.ProfileImage)
	}
	if u.CategoryID != nil {
		p.CategoryID = *u.CategoryID
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Experience != nil {
		p.Experience = cloneString(u.Experience)
	}
	if u.HourlyRate != nil {
		p.HourlyRate = *u.HourlyRate
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.ReviewCount != nil {
		p.ReviewCount = *u.ReviewCount
	}
	if u.IsAvailable != nil {
		p.IsAvailable = *u.IsAvailable
	}
	if u.ServiceImage != nil {
		p.ServiceImage = cloneString(u.ServiceImage)
	}
	if u.Specialties != nil {
		p.Specialties = slices.Clone(*u.Specialties)
	}
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
