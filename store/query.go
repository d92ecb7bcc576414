package store

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"local-services/models"
)

// The filters below work in place and reuse the backing array of their
// input, so callers pass slices they own.

// FilterByCategory keeps the providers of categoryID. Zero keeps everyone.
func FilterByCategory(providers []models.ServiceProvider, categoryID int) []models.ServiceProvider {
	if categoryID == 0 {
		return providers
	}
	return slices.DeleteFunc(providers, func(p models.ServiceProvider) bool {
		return p.CategoryID != categoryID
	})
}

// FilterByLocation keeps providers whose location contains location,
// ignoring case. An empty location keeps everyone.
func FilterByLocation(providers []models.ServiceProvider, location string) []models.ServiceProvider {
	if location == "" {
		return providers
	}
	needle := fold(location)
	return slices.DeleteFunc(providers, func(p models.ServiceProvider) bool {
		return !strings.Contains(fold(p.Location), needle)
	})
}

// FilterBySearch keeps the providers matching query (see MatchesSearch).
func FilterBySearch(providers []models.ServiceProvider, query string) []models.ServiceProvider {
	needle := fold(query)
	return slices.DeleteFunc(providers, func(p models.ServiceProvider) bool {
		return !matchesFolded(p, needle)
	})
}

// MatchesSearch reports whether query occurs, ignoring case, in the
// provider's name, title, description or any of its specialties.
func MatchesSearch(p models.ServiceProvider, query string) bool {
	return matchesFolded(p, fold(query))
}

func matchesFolded(p models.ServiceProvider, needle string) bool {
	if strings.Contains(fold(p.Name), needle) ||
		strings.Contains(fold(p.Title), needle) ||
		strings.Contains(fold(p.Description), needle) {
		return true
	}
	return slices.ContainsFunc(p.Specialties, func(s string) bool {
		return strings.Contains(fold(s), needle)
	})
}

// SortByRating orders providers by rating, highest first. The sort is
// stable: providers with equal ratings keep their relative order, which for
// both backends is insertion order. Null ratings count as zero.
func SortByRating(providers []models.ServiceProvider) {
	slices.SortStableFunc(providers, func(a, b models.ServiceProvider) int {
		return b.Rating.Cmp(a.Rating)
	})
}

// SortByRecency orders inquiries newest first. Inquiries without a
// timestamp sort as created at the zero time; equal timestamps put the
// higher id first.
func SortByRecency(inquiries []models.Inquiry) {
	slices.SortFunc(inquiries, func(a, b models.Inquiry) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}

// fold returns the case-folded form of s. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
