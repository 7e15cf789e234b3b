package handlers

import (
	"remat/internal/models"

	"github.com/gofiber/fiber/v2"
)

// callerClaims extracts the verified claims the auth middleware stored.
func callerClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}
