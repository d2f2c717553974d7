// middleware/sse_auth.go
package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SSETokenMiddleware validates the device token passed as `?token=`, since
// EventSource cannot set an Authorization header.
//
// Usage:
//
//	app.Get("/events/trials", middleware.SSETokenMiddleware(token), playerService.StreamTrialsSSE)
func SSETokenMiddleware(expectedToken string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if expectedToken == "" {
			return c.Next()
		}

		token := strings.TrimSpace(c.Query("token"))
		if token == "" {
			zap.S().Infof("🚫 [SSE_AUTH] Missing token query param for %s", c.Path())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing token in query",
			})
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			zap.S().Warnf("❌ [SSE_AUTH] Invalid token (len=%d) from %s", len(token), c.IP())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid device token",
			})
		}

		return c.Next()
	}
}
