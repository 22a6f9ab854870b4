package middleware

import (
	"crypto/subtle"
	"log/slog"

	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/auth"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/config"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/dto"
	"github.com/SAHIL-Sharma21/saas-todo-backend/internal/identity"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired authorizes admin endpoints. Checks in order:
// 1. X-Admin-Token header against the configured operator token
// 2. the caller's role attribute on the identity provider's user record
//
// The role lookup hits the provider on every request and is never cached. An
// authenticated caller without the role gets 403, distinct from the 401 an
// unauthenticated caller gets.
func AdminRequired(client identity.Client, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" {
			if subtle.ConstantTimeCompare([]byte(c.Get("X-Admin-Token")), []byte(cfg.AdminToken)) == 1 {
				return c.Next()
			}
		}

		callerID, err := auth.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(
				dto.Err(dto.CodeUnauthorized, "Unauthorized"))
		}

		user, err := client.GetUser(c.Context(), callerID)
		if err != nil {
			slog.Error("identity provider role lookup failed", "user_id", callerID, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(
				dto.Err(dto.CodeInternal, "Internal server error"))
		}

		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(
				dto.Err(dto.CodeForbidden, "Admin access required"))
		}

		return c.Next()
	}
}
