package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-services/models"
	"local-services/store"
	"local-services/store/storetest"
)

func newTestStore(t *testing.T, cfg storetest.Config) store.Store {
	t.Helper()

	opts := []Option{WithClock(cfg.Now)}
	if !cfg.Seed {
		opts = append(opts, WithoutSeed())
	}
	s := New(opts...)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreConformance(t *testing.T) {
	storetest.Run(t, newTestStore)
}

func TestNew_SeedsByDefault(t *testing.T) {
	s := New()

	categories, err := s.ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, len(store.SeedCategories()))

	providers, err := s.ListProviders(store.ProviderFilter{})
	require.NoError(t, err)
	assert.Len(t, providers, len(store.SeedProviders()))

	inquiries, err := s.ListInquiries()
	require.NoError(t, err)
	assert.Empty(t, inquiries)
}

func TestNew_IndependentInstances(t *testing.T) {
	a := New(WithoutSeed())
	b := New(WithoutSeed())

	_, err := a.CreateInquiry(storetest.NewInquiry(1, "Ann"))
	require.NoError(t, err)

	inquiries, err := b.ListInquiries()
	require.NoError(t, err)
	assert.Empty(t, inquiries)

	created, err := b.CreateInquiry(storetest.NewInquiry(1, "Bob"))
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestListInquiries_SameInstantNewestIDFirst(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s := New(WithoutSeed(), WithClock(func() time.Time { return fixed }))

	for _, name := range []string{"a", "b", "c"} {
		_, err := s.CreateInquiry(storetest.NewInquiry(1, name))
		require.NoError(t, err)
	}

	inquiries, err := s.ListInquiries()
	require.NoError(t, err)
	require.Len(t, inquiries, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{
		inquiries[0].CustomerName, inquiries[1].CustomerName, inquiries[2].CustomerName,
	})
}

func TestUpdateProvider_EmptyUpdateKeepsRecord(t *testing.T) {
	s := New()

	before, err := s.GetProvider(1)
	require.NoError(t, err)
	require.NotNil(t, before)

	after, err := s.UpdateProvider(1, models.ProviderUpdate{})
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, *before, *after)
}
