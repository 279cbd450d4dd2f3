package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
)

func newAuthApp(token string) *fiber.App {
	app := fiber.New()
	m := NewAuthMiddleware(token)
	app.Get("/protected", m.RequireToken, func(c fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireToken(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		authHeader string
		wantStatus int
	}{
		{"valid token", "secret", "Bearer secret", fiber.StatusOK},
		{"wrong token", "secret", "Bearer nope", fiber.StatusUnauthorized},
		{"missing header", "secret", "", fiber.StatusUnauthorized},
		{"malformed header", "secret", "Basic secret", fiber.StatusUnauthorized},
		{"empty token disables check", "", "", fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newAuthApp(tt.token)

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test() error = %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
		})
	}
}
