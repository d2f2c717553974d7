package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) }

func status(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestDeviceAuthMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/", DeviceAuthMiddleware("tok"), okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusUnauthorized, status(t, app, req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer tok")
	assert.Equal(t, http.StatusNoContent, status(t, app, req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	assert.Equal(t, http.StatusUnauthorized, status(t, app, req))
}

func TestSSETokenMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/events", SSETokenMiddleware("tok"), okHandler)
	app.Get("/open", SSETokenMiddleware(""), okHandler)

	assert.Equal(t, http.StatusBadRequest, status(t, app, httptest.NewRequest(http.MethodGet, "/events", nil)))
	assert.Equal(t, http.StatusUnauthorized, status(t, app, httptest.NewRequest(http.MethodGet, "/events?token=nope", nil)))
	assert.Equal(t, http.StatusNoContent, status(t, app, httptest.NewRequest(http.MethodGet, "/events?token=tok", nil)))
	assert.Equal(t, http.StatusNoContent, status(t, app, httptest.NewRequest(http.MethodGet, "/open", nil)))
}

func TestPlayerContextMiddleware(t *testing.T) {
	app := fiber.New()
	var seen string
	app.Get("/", PlayerContextMiddleware(), func(c *fiber.Ctx) error {
		seen = PlayerHandle(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Player-Handle", "  carol ")
	assert.Equal(t, http.StatusNoContent, status(t, app, req))
	assert.Equal(t, "carol", seen)
}
