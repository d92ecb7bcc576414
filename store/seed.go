package store

import "local-services/models"

// SeedCategories returns the categories a fresh store starts with, in
// insertion order.
func SeedCategories() []models.NewServiceCategory {
	return []models.NewServiceCategory{
		{Name: "Electrician", Slug: "electrician", Icon: "fas fa-bolt", Description: "Wiring, repairs & installations", Color: "trust-blue"},
		{Name: "Plumber", Slug: "plumber", Icon: "fas fa-wrench", Description: "Pipes, leaks & water systems", Color: "trust-blue"},
		{Name: "Driver", Slug: "driver", Icon: "fas fa-car", Description: "Personal & delivery driving", Color: "trust-blue"},
		{Name: "Installation", Slug: "installation", Icon: "fas fa-tools", Description: "Furniture & appliance setup", Color: "trust-blue"},
		{Name: "Spa Services", Slug: "spa", Icon: "fas fa-spa", Description: "Massage & wellness treatments", Color: "reliable-green"},
		{Name: "Salon", Slug: "salon", Icon: "fas fa-cut", Description: "Hair, beauty & grooming", Color: "reliable-green"},
		{Name: "Fitness Coach", Slug: "fitness", Icon: "fas fa-dumbbell", Description: "Personal training & nutrition", Color: "reliable-green"},
		{Name: "Consultant", Slug: "consultant", Icon: "fas fa-user-tie", Description: "Business & professional advice", Color: "reliable-green"},
	}
}

// SeedProviders returns the providers a fresh store starts with. Unlike
// CreateProvider, seeding keeps their ratings, review counts and
// availability. ID and CreatedAt are assigned by the store.
func SeedProviders() []models.ServiceProvider {
	return []models.ServiceProvider{
		{
			Name:         "Mike Johnson",
			Email:        "mike@electrical.com",
			Phone:        "(555) 123-4567",
			ProfileImage: ptr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   1,
			Title:        "Licensed Electrician",
			Description:  "15 years experience in residential and commercial electrical work. Specializing in installations, repairs, and safety inspections.",
			Experience:   ptr("15 years"),
			HourlyRate:   models.MustDecimal("75.00"),
			Location:     "Downtown Area",
			Rating:       models.MustDecimal("4.9"),
			ReviewCount:  127,
			IsAvailable:  true,
			ServiceImage: ptr("https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Wiring", "Panel Upgrades", "Safety Inspections"},
		},
		{
			Name:         "Sarah Williams",
			Email:        "sarah@plumbing.com",
			Phone:        "(555) 234-5678",
			ProfileImage: ptr("https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   2,
			Title:        "Master Plumber",
			Description:  "Emergency plumbing services available 24/7. Expert in pipe repairs, drain cleaning, and bathroom renovations.",
			Experience:   ptr("12 years"),
			HourlyRate:   models.MustDecimal("85.00"),
			Location:     "Westside",
			Rating:       models.MustDecimal("4.8"),
			ReviewCount:  89,
			IsAvailable:  false,
			ServiceImage: ptr("https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Emergency Repairs", "Bathroom Renovations", "Drain Cleaning"},
		},
		{
			Name:         "Lisa Chen",
			Email:        "lisa@spa.com",
			Phone:        "(555) 345-6789",
			ProfileImage: ptr("https://images.unsplash.com/photo-1494790108755-2616b612b786?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   5,
			Title:        "Certified Massage Therapist",
			Description:  "Relaxation and therapeutic massage services. Specializing in deep tissue, Swedish, and hot stone treatments.",
			Experience:   ptr("8 years"),
			HourlyRate:   models.MustDecimal("90.00"),
			Location:     "Central District",
			Rating:       models.MustDecimal("5.0"),
			ReviewCount:  156,
			IsAvailable:  true,
			ServiceImage: ptr("https://images.unsplash.com/photo-1544161515-4ab6ce6db874?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Deep Tissue", "Swedish Massage", "Hot Stone Therapy"},
		},
		{
			Name:         "David Rodriguez",
			Email:        "david@drive.com",
			Phone:        "(555) 456-7890",
			ProfileImage: ptr("https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   3,
			Title:        "Professional Driver",
			Description:  "Reliable transportation services for personal and business needs. Clean vehicle, professional service.",
			Experience:   ptr("6 years"),
			HourlyRate:   models.MustDecimal("35.00"),
			Location:     "City Wide",
			Rating:       models.MustDecimal("4.7"),
			ReviewCount:  203,
			IsAvailable:  true,
			ServiceImage: ptr("https://images.unsplash.com/photo-1449824913935-59a10b8d2000?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Airport Transfers", "Business Travel", "Event Transportation"},
		},
		{
			Name:         "Emily Foster",
			Email:        "emily@salon.com",
			Phone:        "(555) 567-8901",
			ProfileImage: ptr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   6,
			Title:        "Hair Stylist & Colorist",
			Description:  "Creative hair styling and coloring services. Specializing in modern cuts, balayage, and special occasion styles.",
			Experience:   ptr("10 years"),
			HourlyRate:   models.MustDecimal("65.00"),
			Location:     "Fashion District",
			Rating:       models.MustDecimal("4.9"),
			ReviewCount:  142,
			IsAvailable:  true,
			ServiceImage: ptr("https://images.unsplash.com/photo-1562322140-8baeececf3df?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Hair Coloring", "Modern Cuts", "Wedding Styles"},
		},
		{
			Name:         "Marcus Thompson",
			Email:        "marcus@fitness.com",
			Phone:        "(555) 678-9012",
			ProfileImage: ptr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=100&h=100"),
			CategoryID:   7,
			Title:        "Certified Personal Trainer",
			Description:  "Personalized fitness training and nutrition coaching. Helping clients achieve their health and fitness goals.",
			Experience:   ptr("7 years"),
			HourlyRate:   models.MustDecimal("80.00"),
			Location:     "Fitness District",
			Rating:       models.MustDecimal("4.8"),
			ReviewCount:  95,
			IsAvailable:  true,
			ServiceImage: ptr("https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=250"),
			Specialties:  []string{"Weight Training", "Nutrition Coaching", "Cardio Programs"},
		},
	}
}

func ptr(s string) *string {
	return &s
}
