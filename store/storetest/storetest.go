// Package storetest checks that a store.Store implementation honours the
// store contract: id allocation, default forcing on creation, filter and
// search semantics, ordering, partial updates and absent results.
//
// Each backend calls Run from its own tests with a factory building a fresh
// store per subtest.
package storetest

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-services/models"
	"local-services/store"
)

// Config is what a factory must honour when building a store.
type Config struct {
	// Now is the time source for CreatedAt stamps.
	Now func() time.Time
	// Seed selects whether the default data is loaded.
	Seed bool
}

// Factory builds a fresh, isolated store. It registers its own cleanup.
type Factory func(t *testing.T, cfg Config) store.Store

// Clock is a deterministic time source that advances one second per call.
type Clock struct {
	mu sync.Mutex
	t  time.Time
}

func NewClock() *Clock {
	return &Clock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

// Run executes the full conformance suite against the factory.
func Run(t *testing.T, newStore Factory) {
	t.Helper()

	fresh := func(t *testing.T) store.Store {
		return newStore(t, Config{Now: NewClock().Now, Seed: false})
	}

	t.Run("Seeded store is queryable", func(t *testing.T) {
		testSeeded(t, newStore(t, Config{Now: NewClock().Now, Seed: true}))
	})
	t.Run("Ids are unique per kind", func(t *testing.T) { testUniqueIDs(t, fresh(t)) })
	t.Run("Categories", func(t *testing.T) { testCategories(t, fresh(t)) })
	t.Run("Provider defaults are forced", func(t *testing.T) { testProviderDefaults(t, fresh(t)) })
	t.Run("Inquiry status is forced to pending", func(t *testing.T) { testInquiryDefaults(t, fresh(t)) })
	t.Run("Filters compose", func(t *testing.T) { testFilterComposition(t, fresh(t)) })
	t.Run("Rating sort is stable", func(t *testing.T) { testSortStability(t, fresh(t)) })
	t.Run("Search matches any field", func(t *testing.T) { testSearch(t, fresh(t)) })
	t.Run("Lookups are idempotent", func(t *testing.T) { testIdempotentLookup(t, fresh(t)) })
	t.Run("Updates touch only supplied fields", func(t *testing.T) { testUpdateIsolation(t, fresh(t)) })
	t.Run("Unknown ids are absent", func(t *testing.T) { testUnknownIDs(t, fresh(t)) })
	t.Run("Inquiries are newest first", func(t *testing.T) { testRecency(t, fresh(t)) })
	t.Run("Status accepts any string", func(t *testing.T) { testStatusUpdate(t, fresh(t)) })
	t.Run("Results do not alias storage", func(t *testing.T) { testNoAliasing(t, fresh(t)) })
	t.Run("Concurrent creates", func(t *testing.T) { testConcurrentCreates(t, fresh(t)) })
}

// NewProvider returns valid creation input.
func NewProvider(name string, categoryID int, location string) models.NewServiceProvider {
	return models.NewServiceProvider{
		Name:        name,
		Email:       name + "@example.com",
		Phone:       "(555) 000-0000",
		CategoryID:  categoryID,
		Title:       name + " title",
		Description: name + " description",
		HourlyRate:  models.MustDecimal("50.00"),
		Location:    location,
	}
}

// NewInquiry returns valid creation input.
func NewInquiry(providerID int, customer string) models.NewInquiry {
	return models.NewInquiry{
		ProviderID:    providerID,
		CustomerName:  customer,
		CustomerPhone: "(555) 111-2222",
		ServiceNeeded: "Repair",
	}
}

func providerIDs(providers []models.ServiceProvider) []int {
	out := make([]int, 0, len(providers))
	for _, p := range providers {
		out = append(out, p.ID)
	}
	return out
}

func createProvider(t *testing.T, s store.Store, data models.NewServiceProvider) *models.ServiceProvider {
	t.Helper()
	p, err := s.CreateProvider(data)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}

func setRating(t *testing.T, s store.Store, id int, rating string) {
	t.Helper()
	r := models.MustDecimal(rating)
	p, err := s.UpdateProvider(id, models.ProviderUpdate{Rating: &r})
	require.NoError(t, err)
	require.NotNil(t, p)
}

func testSeeded(t *testing.T, s store.Store) {
	categories, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 8)
	for i, c := range categories {
		assert.Equal(t, i+1, c.ID)
	}
	assert.Equal(t, "electrician", categories[0].Slug)
	assert.Equal(t, "consultant", categories[7].Slug)

	spa, err := s.GetCategoryBySlug("spa")
	require.NoError(t, err)
	require.NotNil(t, spa)
	assert.Equal(t, 5, spa.ID)

	providers, err := s.ListProviders(store.ProviderFilter{})
	require.NoError(t, err)
	// 5.0, 4.9 (Mike, then Emily), 4.8 (Sarah, then Marcus), 4.7
	assert.Equal(t, []int{3, 1, 5, 2, 6, 4}, providerIDs(providers))
	assert.Equal(t, "4.9", providers[1].Rating.String())
	assert.Equal(t, "75.00", providers[1].HourlyRate.String())
	assert.False(t, providers[3].IsAvailable)

	found, err := s.SearchProviders("hot stone", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, providerIDs(found))

	created := createProvider(t, s, NewProvider("newcomer", 1, "Downtown"))
	assert.Equal(t, 7, created.ID)

	category, err := s.CreateCategory(models.NewServiceCategory{Name: "Gardener", Slug: "gardener", Icon: "fas fa-leaf", Description: "Lawns", Color: "reliable-green"})
	require.NoError(t, err)
	assert.Equal(t, 9, category.ID)
}

func testUniqueIDs(t *testing.T, s store.Store) {
	seen := make(map[int]bool)
	for i := 0; i < 5; i++ {
		p := createProvider(t, s, NewProvider("p", 1, "x"))
		assert.False(t, seen[p.ID], "provider id %d reused", p.ID)
		seen[p.ID] = true
		assert.Equal(t, i+1, p.ID)
	}

	inquiry, err := s.CreateInquiry(NewInquiry(1, "Ann"))
	require.NoError(t, err)
	assert.Equal(t, 1, inquiry.ID, "inquiries have their own sequence")

	category, err := s.CreateCategory(models.NewServiceCategory{Name: "A", Slug: "a", Icon: "i", Description: "d", Color: "c"})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID, "categories have their own sequence")
}

func testCategories(t *testing.T, s store.Store) {
	first, err := s.CreateCategory(models.NewServiceCategory{Name: "Plumber", Slug: "plumber", Icon: "fas fa-wrench", Description: "Pipes", Color: "trust-blue"})
	require.NoError(t, err)
	second, err := s.CreateCategory(models.NewServiceCategory{Name: "Plumbing again", Slug: "plumber", Icon: "fas fa-wrench", Description: "Duplicate slug", Color: "trust-blue"})
	require.NoError(t, err, "slug uniqueness is not enforced by the store")
	assert.NotEqual(t, first.ID, second.ID)

	all, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)

	bySlug, err := s.GetCategoryBySlug("plumber")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, first.ID, bySlug.ID, "first match wins")

	upper, err := s.GetCategoryBySlug("Plumber")
	require.NoError(t, err)
	assert.Nil(t, upper, "slug lookup is case-sensitive")

	byID, err := s.GetCategory(second.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, *second, *byID)
}

func testProviderDefaults(t *testing.T, s store.Store) {
	rating := models.MustDecimal("3.5")
	reviews := 10
	available := false

	data := NewProvider("mike", 1, "Downtown")
	data.Rating = &rating
	data.ReviewCount = &reviews
	data.IsAvailable = &available
	data.Specialties = []string{"Wiring"}

	p := createProvider(t, s, data)
	assert.Equal(t, "0", p.Rating.String())
	assert.Equal(t, 0, p.ReviewCount)
	assert.True(t, p.IsAvailable)
	assert.False(t, p.CreatedAt.IsZero())

	stored, err := s.GetProvider(p.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "0", stored.Rating.String())
	assert.Equal(t, 0, stored.ReviewCount)
	assert.True(t, stored.IsAvailable)
	assert.Equal(t, []string{"Wiring"}, stored.Specialties)
	assert.True(t, p.CreatedAt.Equal(stored.CreatedAt))
}

func testInquiryDefaults(t *testing.T, s store.Store) {
	email := "ann@example.com"
	data := NewInquiry(42, "Ann")
	data.Status = "approved"
	data.CustomerEmail = &email

	inquiry, err := s.CreateInquiry(data)
	require.NoError(t, err)
	require.NotNil(t, inquiry)
	assert.Equal(t, models.InquiryStatusPending, inquiry.Status)
	assert.Equal(t, 42, inquiry.ProviderID, "provider references are not checked")

	stored, err := s.GetInquiry(inquiry.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.InquiryStatusPending, stored.Status)
	require.NotNil(t, stored.CustomerEmail)
	assert.Equal(t, email, *stored.CustomerEmail)
	assert.Nil(t, stored.Message)
}

func testFilterComposition(t *testing.T, s store.Store) {
	a := createProvider(t, s, NewProvider("a", 1, "Downtown"))
	createProvider(t, s, NewProvider("b", 1, "Westside"))
	createProvider(t, s, NewProvider("c", 2, "Downtown"))
	d := createProvider(t, s, NewProvider("d", 1, "Old DOWNTOWN Loop"))
	createProvider(t, s, NewProvider("e", 2, "Westside"))

	got, err := s.ListProviders(store.ProviderFilter{CategoryID: 1, Location: "down"})
	require.NoError(t, err)
	assert.Equal(t, []int{a.ID, d.ID}, providerIDs(got))

	byCategory, err := s.ListProviders(store.ProviderFilter{CategoryID: 2})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byLocation, err := s.ListProviders(store.ProviderFilter{Location: "WEST"})
	require.NoError(t, err)
	assert.Len(t, byLocation, 2)

	none, err := s.ListProviders(store.ProviderFilter{CategoryID: 99})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testSortStability(t *testing.T, s store.Store) {
	first := createProvider(t, s, NewProvider("first", 1, "x"))
	lower := createProvider(t, s, NewProvider("lower", 1, "x"))
	second := createProvider(t, s, NewProvider("second", 1, "x"))

	setRating(t, s, first.ID, "4.9")
	setRating(t, s, lower.ID, "4.7")
	setRating(t, s, second.ID, "4.9")

	want := []int{first.ID, second.ID, lower.ID}

	listed, err := s.ListProviders(store.ProviderFilter{})
	require.NoError(t, err)
	assert.Equal(t, want, providerIDs(listed))

	searched, err := s.SearchProviders("title", 0)
	require.NoError(t, err)
	assert.Equal(t, want, providerIDs(searched))
}

func testSearch(t *testing.T, s store.Store) {
	stone := NewProvider("lisa", 5, "Central")
	stone.Title = "Massage Therapist"
	stone.Description = "Relaxation"
	stone.Specialties = []string{"Deep Tissue", "Hot Stone Therapy"}
	lisa := createProvider(t, s, stone)

	other := NewProvider("mike", 1, "Central")
	other.Title = "Electrician"
	other.Description = "Wiring and panels"
	mike := createProvider(t, s, other)

	tests := []struct {
		name       string
		query      string
		categoryID int
		want       []int
	}{
		{name: "Specialty only", query: "hot stone", want: []int{lisa.ID}},
		{name: "Title", query: "ELECTRIC", want: []int{mike.ID}},
		{name: "Description", query: "panels", want: []int{mike.ID}},
		{name: "Name", query: "LIS", want: []int{lisa.ID}},
		{name: "Category narrows", query: "e", categoryID: 1, want: []int{mike.ID}},
		{name: "No match", query: "plumbing", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.SearchProviders(tt.query, tt.categoryID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, providerIDs(got))
		})
	}
}

func testIdempotentLookup(t *testing.T, s store.Store) {
	data := NewProvider("mike", 1, "Downtown")
	data.Specialties = []string{"Wiring", "Panels"}
	p := createProvider(t, s, data)

	first, err := s.GetProvider(p.ID)
	require.NoError(t, err)
	second, err := s.GetProvider(p.ID)
	require.NoError(t, err)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
}

func testUpdateIsolation(t *testing.T, s store.Store) {
	experience := "5 years"
	data := NewProvider("mike", 1, "Downtown")
	data.Experience = &experience
	data.Specialties = []string{"Wiring"}
	p := createProvider(t, s, data)

	before, err := s.GetProvider(p.ID)
	require.NoError(t, err)
	require.NotNil(t, before)

	available := false
	updated, err := s.UpdateProvider(p.ID, models.ProviderUpdate{IsAvailable: &available})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.False(t, updated.IsAvailable)

	after, err := s.GetProvider(p.ID)
	require.NoError(t, err)
	require.NotNil(t, after)

	expected := *before
	expected.IsAvailable = false
	assert.Equal(t, expected, *after)

	reviews := 12
	rating := models.MustDecimal("4.50")
	after2, err := s.UpdateProvider(p.ID, models.ProviderUpdate{ReviewCount: &reviews, Rating: &rating})
	require.NoError(t, err)
	require.NotNil(t, after2)
	assert.Equal(t, 12, after2.ReviewCount)
	assert.Equal(t, "4.50", after2.Rating.String())
	assert.False(t, after2.IsAvailable, "earlier update is kept")
	assert.True(t, before.CreatedAt.Equal(after2.CreatedAt))
}

func testUnknownIDs(t *testing.T, s store.Store) {
	_, err := s.CreateInquiry(NewInquiry(1, "Ann"))
	require.NoError(t, err)

	inquiry, err := s.UpdateInquiryStatus(9999, models.InquiryStatusResolved)
	require.NoError(t, err)
	assert.Nil(t, inquiry)

	all, err := s.ListInquiries()
	require.NoError(t, err)
	assert.Len(t, all, 1, "no record is created for an unknown id")

	missing, err := s.GetInquiry(9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	available := false
	p, err := s.UpdateProvider(9999, models.ProviderUpdate{IsAvailable: &available})
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = s.GetProvider(9999)
	require.NoError(t, err)
	assert.Nil(t, p)

	c, err := s.GetCategory(9999)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = s.GetCategoryBySlug("nope")
	require.NoError(t, err)
	assert.Nil(t, c)
}

func testRecency(t *testing.T, s store.Store) {
	first, err := s.CreateInquiry(NewInquiry(1, "t1"))
	require.NoError(t, err)
	second, err := s.CreateInquiry(NewInquiry(1, "t2"))
	require.NoError(t, err)
	third, err := s.CreateInquiry(NewInquiry(1, "t3"))
	require.NoError(t, err)

	require.True(t, first.CreatedAt.Before(second.CreatedAt))
	require.True(t, second.CreatedAt.Before(third.CreatedAt))

	all, err := s.ListInquiries()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, third.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
	assert.Equal(t, first.ID, all[2].ID)
}

func testStatusUpdate(t *testing.T, s store.Store) {
	message := "Please call after 5pm"
	data := NewInquiry(3, "Ann")
	data.Message = &message
	inquiry, err := s.CreateInquiry(data)
	require.NoError(t, err)

	for _, status := range []string{models.InquiryStatusContacted, "waiting-on-parts", models.InquiryStatusPending} {
		updated, err := s.UpdateInquiryStatus(inquiry.ID, status)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, status, updated.Status)

		stored, err := s.GetInquiry(inquiry.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, status, stored.Status)
		assert.Equal(t, "Ann", stored.CustomerName)
		require.NotNil(t, stored.Message)
		assert.Equal(t, message, *stored.Message)
		assert.True(t, inquiry.CreatedAt.Equal(stored.CreatedAt))
	}
}

func testNoAliasing(t *testing.T, s store.Store) {
	data := NewProvider("mike", 1, "Downtown")
	data.Specialties = []string{"Wiring"}
	created := createProvider(t, s, data)
	created.Specialties[0] = "changed by caller"
	created.Name = "changed by caller"

	data.Specialties[0] = "input reused by caller"

	got, err := s.GetProvider(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "mike", got.Name)
	assert.Equal(t, []string{"Wiring"}, got.Specialties)

	listed, err := s.ListProviders(store.ProviderFilter{})
	require.NoError(t, err)
	listed[0].Specialties[0] = "changed again"

	got, err = s.GetProvider(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Wiring"}, got.Specialties)
}

func testConcurrentCreates(t *testing.T, s store.Store) {
	const n = 20

	var wg sync.WaitGroup
	ids := make(chan int, n)
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inquiry, err := s.CreateInquiry(NewInquiry(1, "concurrent"))
			if err != nil {
				errs <- err
				return
			}
			ids <- inquiry.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	seen := make(map[int]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)

	all, err := s.ListInquiries()
	require.NoError(t, err)
	assert.Len(t, all, n)
}
