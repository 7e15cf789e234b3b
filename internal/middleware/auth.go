// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"strings"

	"remat/internal/utils"
	"remat/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// Auth validates the bearer token and stores the verified claims in the
// request locals. Handlers read the caller UID from there and pass it
// into services explicitly.
func Auth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "missing authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return response.Unauthorized(c, "invalid authorization format")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		_, claims, err := utils.ParseToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "invalid token")
		}

		c.Locals("claims", claims)
		c.Locals("uid", claims.UID)
		return c.Next()
	}
}
