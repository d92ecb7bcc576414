package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-services/models"
)

func TestHome_ListsCategories(t *testing.T) {
	categories := []models.ServiceCategory{
		{ID: 1, Name: "Home Cleaning", Slug: "home-cleaning", Icon: "fas fa-broom", Description: "Cleaning", Color: "blue"},
		{ID: 2, Name: "Plumbing", Slug: "plumbing", Icon: "fas fa-wrench", Description: "Pipes", Color: "cyan"},
	}

	var buf bytes.Buffer
	require.NoError(t, Home(categories, false).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, strings.ToLower(html), "<!doctype html>")
	assert.Contains(t, html, "<code>GET /api/categories/home-cleaning</code>")
	assert.Contains(t, html, `data-icon="fas fa-wrench"`)
	assert.Contains(t, html, "<h2>Plumbing</h2>")
	assert.NotContains(t, html, "development build")
}

func TestHome_EscapesContent(t *testing.T) {
	categories := []models.ServiceCategory{
		{ID: 1, Name: "<script>alert(1)</script>", Slug: "x", Icon: "i", Description: "d", Color: "c"},
	}

	var buf bytes.Buffer
	require.NoError(t, Home(categories, true).Render(context.Background(), &buf))

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.Contains(t, buf.String(), "development build")
}

func TestHome_CardsDoNotLinkToJSON(t *testing.T) {
	categories := []models.ServiceCategory{
		{ID: 1, Name: "Fitness", Slug: "fitness", Icon: "fas fa-dumbbell", Description: "Trainers", Color: "green"},
	}

	var buf bytes.Buffer
	require.NoError(t, Home(categories, false).Render(context.Background(), &buf))

	html := buf.String()
	assert.NotContains(t, html, "href=")
	assert.Contains(t, html, "GET /api/categories/fitness")
	assert.Contains(t, html, `class="api-note"`)
}
