package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"faq-backend/internal/config"
	"faq-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	auth := NewAuth(config.AuthConfig{
		APIKey:     "public-key",
		UserTokens: []string{"alice:alice-token", "bare-token"},
	}, logger)

	app := fiber.New()
	app.Get("/read", auth.APIKey(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Post("/write", auth.UserToken(), func(c *fiber.Ctx) error {
		return c.SendString(services.ActorFromContext(c.UserContext()).UserID)
	})
	return app
}

func TestAPIKey(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		key    string
		status int
	}{
		{"valid key", "public-key", fiber.StatusOK},
		{"wrong key", "nope", fiber.StatusUnauthorized},
		{"missing key", "", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/read", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestUserToken_SetsActor(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name   string
		header string
		status int
		actor  string
	}{
		{"named token", "Bearer alice-token", fiber.StatusOK, "alice"},
		{"bare token", "Bearer bare-token", fiber.StatusOK, anonymousEditor},
		{"unknown token", "Bearer other", fiber.StatusUnauthorized, ""},
		{"api key is not a user token", "Bearer public-key", fiber.StatusUnauthorized, ""},
		{"missing scheme", "alice-token", fiber.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodPost, "/write", nil)
			req.Header.Set(fiber.HeaderAuthorization, tt.header)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.actor != "" {
				body, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, tt.actor, string(body))
			}
		})
	}
}
