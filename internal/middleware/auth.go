package middleware

import (
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/config"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// PublicPaths bypass authentication entirely. Everything else requires a
// resolved caller.
var PublicPaths = []string{
	"/health",
	"/webhook/register",
}

// Protected verifies the identity provider's session JWT on every request
// outside the public allowlist.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Filter: func(c *fiber.Ctx) bool {
			path := c.Path()
			for _, p := range PublicPaths {
				if path == p {
					return true
				}
			}
			return false
		},
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Err(dto.CodeUnauthorized, "Unauthorized: invalid or expired token"))
		},
	})
}
