// middleware/gateway.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PlayerHandleKey is the Locals key holding the acting player's handle.
const PlayerHandleKey = "player_handle"

// PlayerContextMiddleware picks up X-Player-Handle, set when a shared device
// acts for another player (e.g. a friend voting on a trial).
// Handlers fall back to the local profile's handle when it is empty.
func PlayerContextMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		handle := strings.TrimSpace(c.Get("X-Player-Handle"))
		c.Locals(PlayerHandleKey, handle)
		if handle != "" {
			zap.S().Debugf("👤 [PLAYER_CTX] Handle=%s | Path: %s", handle, c.Path())
		}
		return c.Next()
	}
}

// PlayerHandle reads the handle stored by PlayerContextMiddleware.
func PlayerHandle(c *fiber.Ctx) string {
	h, _ := c.Locals(PlayerHandleKey).(string)
	return h
}
