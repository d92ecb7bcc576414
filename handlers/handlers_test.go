package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-services/app"
	"local-services/config/setup"
	"local-services/models"
	"local-services/store"
	"local-services/store/memory"
)

// setupTestApp wires a seeded in-memory store behind the full route table
func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := memory.New()
	t.Cleanup(func() { s.Close() })

	application := app.New(s, logger)

	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(logger)})
	setup.RegisterRoutes(fiberApp, application)
	return fiberApp
}

func doRequest(t *testing.T, fiberApp *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeObject(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeArray(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func ids(items []map[string]interface{}) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, int(item["id"].(float64)))
	}
	return out
}

// ==================== CATEGORIES ====================

func TestGetCategories(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	categories := decodeArray(t, resp)
	require.Len(t, categories, 8)
	assert.Equal(t, "electrician", categories[0]["slug"])
	assert.Equal(t, "fas fa-bolt", categories[0]["icon"])
}

func TestGetCategoryBySlug(t *testing.T) {
	fiberApp := setupTestApp(t)

	tests := []struct {
		name           string
		slug           string
		expectedStatus int
		expectedError  string
		expectedID     float64
	}{
		{name: "Existing slug", slug: "spa", expectedStatus: http.StatusOK, expectedID: 5},
		{name: "Unknown slug", slug: "astrology", expectedStatus: http.StatusNotFound, expectedError: "Category not found"},
		{name: "Slug is case-sensitive", slug: "SPA", expectedStatus: http.StatusNotFound, expectedError: "Category not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodGet, "/api/categories/"+tt.slug, "")
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeObject(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				assert.Equal(t, tt.expectedID, body["id"])
			}
		})
	}
}

func TestCreateCategory(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "New category",
			body:           `{"name":"Gardener","slug":"gardener","icon":"fas fa-leaf","description":"Lawns & hedges","color":"reliable-green"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Slug already taken",
			body:           `{"name":"Spa 2","slug":"spa","icon":"fas fa-spa","description":"Again","color":"reliable-green"}`,
			expectedStatus: http.StatusConflict,
			expectedError:  "Category with this slug already exists",
		},
		{
			name:           "Malformed slug",
			body:           `{"name":"Gardener","slug":"Garden Care","icon":"fas fa-leaf","description":"Lawns","color":"green"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request data",
		},
		{
			name:           "Malformed JSON",
			body:           `{"name":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fiberApp := setupTestApp(t)

			resp := doRequest(t, fiberApp, http.MethodPost, "/api/categories", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeObject(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, float64(9), body["id"])
			assert.Equal(t, "gardener", body["slug"])
		})
	}
}

func TestCreateCategory_ValidationDetails(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/categories", `{"name":"Gardener"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeObject(t, resp)
	errs, ok := body["errors"].([]interface{})
	require.True(t, ok)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.(map[string]interface{})["field"].(string))
	}
	assert.ElementsMatch(t, []string{"slug", "icon", "description", "color"}, fields)
}

// ==================== PROVIDERS ====================

func TestGetProviders(t *testing.T) {
	fiberApp := setupTestApp(t)

	tests := []struct {
		name        string
		query       string
		expectedIDs []int
	}{
		{name: "No filters, highest rated first", query: "", expectedIDs: []int{3, 1, 5, 2, 6, 4}},
		{name: "Category filter", query: "?categoryId=1", expectedIDs: []int{1}},
		{name: "Location is a case-insensitive substring", query: "?location=DISTRICT", expectedIDs: []int{3, 5, 6}},
		{name: "Category and location compose", query: "?categoryId=6&location=district", expectedIDs: []int{5}},
		{name: "Unknown category", query: "?categoryId=42", expectedIDs: []int{}},
		{name: "Malformed category is ignored", query: "?categoryId=abc", expectedIDs: []int{3, 1, 5, 2, 6, 4}},
		{name: "Search matches specialties", query: "?search=hot%20stone", expectedIDs: []int{3}},
		{name: "Search ignores location", query: "?search=hot%20stone&location=Nowhere", expectedIDs: []int{3}},
		{name: "Search honours category", query: "?search=hot%20stone&categoryId=1", expectedIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodGet, "/api/providers"+tt.query, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.expectedIDs, ids(decodeArray(t, resp)))
		})
	}
}

func TestGetProvider(t *testing.T) {
	fiberApp := setupTestApp(t)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedError  string
	}{
		{name: "Existing provider", id: "1", expectedStatus: http.StatusOK},
		{name: "Unknown provider", id: "99", expectedStatus: http.StatusNotFound, expectedError: "Provider not found"},
		{name: "Non-numeric id", id: "abc", expectedStatus: http.StatusBadRequest, expectedError: "Invalid provider ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodGet, "/api/providers/"+tt.id, "")
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body := decodeObject(t, resp)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			assert.Equal(t, "Mike Johnson", body["name"])
			assert.Equal(t, "4.9", body["rating"])
			assert.Equal(t, "75.00", body["hourlyRate"])
			assert.Equal(t, float64(127), body["reviewCount"])
			assert.Len(t, body["specialties"], 3)
		})
	}
}

func TestCreateProvider(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/providers", `{
		"name": "Nina Patel",
		"email": "nina@example.com",
		"phone": "(555) 222-3333",
		"categoryId": 8,
		"title": "Small Business Consultant",
		"description": "Helps owners plan growth",
		"hourlyRate": "120.50",
		"location": "Uptown",
		"rating": "5.0",
		"reviewCount": 300,
		"isAvailable": false,
		"specialties": ["Strategy", "Bookkeeping"]
	}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeObject(t, resp)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "120.50", body["hourlyRate"])
	assert.Equal(t, "0", body["rating"])
	assert.Equal(t, float64(0), body["reviewCount"])
	assert.Equal(t, true, body["isAvailable"])
	assert.Nil(t, body["experience"])
	assert.NotEmpty(t, body["createdAt"])

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/providers?categoryId=8", "")
	assert.Equal(t, []int{7}, ids(decodeArray(t, resp)))
}

func TestCreateProvider_Invalid(t *testing.T) {
	fiberApp := setupTestApp(t)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "Missing hourly rate",
			body:  `{"name":"A","email":"a@example.com","phone":"1","categoryId":1,"title":"T","description":"D","location":"L"}`,
			field: "hourlyRate",
		},
		{
			name:  "Bad email",
			body:  `{"name":"A","email":"nope","phone":"1","categoryId":1,"title":"T","description":"D","hourlyRate":"10","location":"L"}`,
			field: "email",
		},
		{
			name:  "Negative hourly rate",
			body:  `{"name":"A","email":"a@example.com","phone":"1","categoryId":1,"title":"T","description":"D","hourlyRate":"-5","location":"L"}`,
			field: "hourlyRate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodPost, "/api/providers", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			body := decodeObject(t, resp)
			errs := body["errors"].([]interface{})
			require.NotEmpty(t, errs)
			assert.Equal(t, tt.field, errs[0].(map[string]interface{})["field"])
		})
	}

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/providers", `{"name":"A","hourlyRate":"ten"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProvider(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPatch, "/api/providers/2", `{"isAvailable":true,"rating":"4.95"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeObject(t, resp)
	assert.Equal(t, true, body["isAvailable"])
	assert.Equal(t, "4.95", body["rating"])
	assert.Equal(t, "Sarah Williams", body["name"])
	assert.Equal(t, float64(2), body["categoryId"])

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/providers", "")
	assert.Equal(t, []int{3, 2, 1, 5, 6, 4}, ids(decodeArray(t, resp)))

	resp = doRequest(t, fiberApp, http.MethodPatch, "/api/providers/99", `{"isAvailable":true}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodPatch, "/api/providers/1", `{"rating":"7"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodPatch, "/api/providers/x", `{"isAvailable":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProvider_EmptyBody(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPatch, "/api/providers/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "No fields to update", decodeObject(t, resp)["error"])

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/providers/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Mike Johnson", decodeObject(t, resp)["name"])
}

// ==================== INQUIRIES ====================

func TestInquiryLifecycle(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/inquiries",
		`{"providerId":1,"customerName":"John Smith","customerPhone":"(555) 999-0000","serviceNeeded":"Panel upgrade","status":"resolved"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	first := decodeObject(t, resp)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "pending", first["status"])
	assert.Nil(t, first["customerEmail"])

	resp = doRequest(t, fiberApp, http.MethodPost, "/api/inquiries",
		`{"providerId":3,"customerName":"Ana Lima","customerPhone":"(555) 888-0000","customerEmail":"ana@example.com","serviceNeeded":"Massage","message":"Weekend please"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/inquiries", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []int{2, 1}, ids(decodeArray(t, resp)))

	resp = doRequest(t, fiberApp, http.MethodPatch, "/api/inquiries/1/status", `{"status":"contacted"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "contacted", decodeObject(t, resp)["status"])

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/inquiries/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeObject(t, resp)
	assert.Equal(t, "contacted", body["status"])
	assert.Equal(t, "John Smith", body["customerName"])
}

func TestUpdateInquiryStatus_Errors(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/inquiries",
		`{"providerId":1,"customerName":"John","customerPhone":"1","serviceNeeded":"Fix"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	tests := []struct {
		name           string
		id             string
		body           string
		expectedStatus int
		expectedError  string
	}{
		{name: "Missing status", id: "1", body: `{}`, expectedStatus: http.StatusBadRequest, expectedError: "Invalid request data"},
		{name: "Blank status", id: "1", body: `{"status":"   "}`, expectedStatus: http.StatusBadRequest, expectedError: "Status is required"},
		{name: "Unknown inquiry", id: "99", body: `{"status":"contacted"}`, expectedStatus: http.StatusNotFound, expectedError: "Inquiry not found"},
		{name: "Non-numeric id", id: "abc", body: `{"status":"contacted"}`, expectedStatus: http.StatusBadRequest, expectedError: "Invalid inquiry ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, fiberApp, http.MethodPatch, "/api/inquiries/"+tt.id+"/status", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedError, decodeObject(t, resp)["error"])
		})
	}
}

func TestCreateInquiry_Invalid(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodPost, "/api/inquiries", `{"providerId":1}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, fiberApp, http.MethodGet, "/api/inquiries", "")
	assert.Empty(t, decodeArray(t, resp))
}

// ==================== PAGES ====================

func TestHomePage(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	html, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Electrician")
	assert.Contains(t, string(html), `/api/categories/fitness`)
}

func TestHealth(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decodeObject(t, resp)["status"])
}

func TestUnknownRoute(t *testing.T) {
	fiberApp := setupTestApp(t)

	resp := doRequest(t, fiberApp, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, decodeObject(t, resp), "request_id")
}

// ==================== SERVER ERRORS ====================

var errBackend = errors.New("backend unavailable")

// failingStore reports a backend failure for category listing
type failingStore struct {
	store.Store
}

func (failingStore) ListCategories() ([]models.ServiceCategory, error) {
	return nil, errBackend
}

func TestServerError_LogsThroughAppLogger(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	s := memory.New()
	t.Cleanup(func() { s.Close() })

	application := app.New(failingStore{Store: s}, logger)
	fiberApp := fiber.New(fiber.Config{ErrorHandler: setup.CustomErrorHandler(logger)})
	setup.RegisterRoutes(fiberApp, application)

	resp := doRequest(t, fiberApp, http.MethodGet, "/api/categories", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to fetch categories", decodeObject(t, resp)["error"])

	assert.Contains(t, logs.String(), "server error")
	assert.Contains(t, logs.String(), "backend unavailable")
	assert.Contains(t, logs.String(), "path=/api/categories")
}
