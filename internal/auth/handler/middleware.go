package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// userIDKey is the fiber locals key under which RequireAuth stores the
// authenticated account id.
const userIDKey = "user_id"

// RequireAuth verifies the bearer access token and stores the subject id in
// request locals. Every failure reads the same to the caller.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		const prefix = "Bearer "

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, prefix) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
		}

		claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(header, prefix))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "could not validate credentials"})
		}

		c.Locals(userIDKey, claims.UserID)
		return c.Next()
	}
}
