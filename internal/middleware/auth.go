package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// AuthMiddleware guards the JSON API with a static bearer token.
// Dashboard access and browser auth are handled upstream by the
// reporting layer; this service only checks the service-to-service
// token.
type AuthMiddleware struct {
	token string
}

// NewAuthMiddleware creates a new auth middleware instance. An empty
// token disables the check (development only).
func NewAuthMiddleware(token string) *AuthMiddleware {
	return &AuthMiddleware{token: token}
}

// RequireToken rejects requests without a matching bearer token.
func (m *AuthMiddleware) RequireToken(c fiber.Ctx) error {
	if m.token == "" {
		return c.Next()
	}

	header := c.Get("Authorization")
	provided, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "missing bearer token",
		})
	}

	if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error",
			"error":  "invalid token",
		})
	}
	return c.Next()
}
