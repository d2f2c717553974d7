package handlers

import (
	"mission-mischief/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps a service error kind onto an HTTP status.
func respondError(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	status := fiber.StatusInternalServerError
	switch kind {
	case services.KindGatingViolation:
		status = fiber.StatusForbidden
	case services.KindNotFound:
		status = fiber.StatusNotFound
	case services.KindRangeViolation:
		status = fiber.StatusUnprocessableEntity
	default:
		zap.S().Errorf("❌ [HTTP] %s %s failed: %v", c.Method(), c.Path(), err)
		kind = "internal"
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
		"kind":  kind,
	})
}

func badRequest(c *fiber.Ctx, msg string, cause error) error {
	body := fiber.Map{"error": msg}
	if cause != nil {
		body["cause"] = cause.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
