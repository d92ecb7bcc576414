package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(logs *bytes.Buffer) *fiber.App {
	logger := slog.New(slog.NewJSONHandler(logs, nil))

	app := fiber.New()
	app.Use(StructuredLogger(logger), Security())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"request_id": c.Locals("requestID")})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})
	return app
}

func TestStructuredLogger_GeneratesRequestID(t *testing.T) {
	var logs bytes.Buffer
	app := setupTestApp(&logs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)

	id := resp.Header.Get(RequestIDHeader)
	_, err = uuid.Parse(id)
	assert.NoError(t, err)
	assert.Contains(t, logs.String(), id)
	assert.Contains(t, logs.String(), "request completed")
}

func TestStructuredLogger_ReusesIncomingRequestID(t *testing.T) {
	var logs bytes.Buffer
	app := setupTestApp(&logs)

	incoming := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, incoming)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, incoming, resp.Header.Get(RequestIDHeader))
}

func TestStructuredLogger_IgnoresMalformedRequestID(t *testing.T) {
	var logs bytes.Buffer
	app := setupTestApp(&logs)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(RequestIDHeader, "<script>")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEqual(t, "<script>", resp.Header.Get(RequestIDHeader))
}

func TestStructuredLogger_ClientErrorLevel(t *testing.T) {
	var logs bytes.Buffer
	app := setupTestApp(&logs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing?q=1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"query":"q=1"`)
}

func TestSecurity_SetsHeaders(t *testing.T) {
	var logs bytes.Buffer
	app := setupTestApp(&logs)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.NotEmpty(t, resp.Header.Get("Content-Security-Policy"))
}
