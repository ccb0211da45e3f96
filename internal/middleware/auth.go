package middleware

import (
	"crypto/subtle"
	"strings"

	"faq-backend/internal/config"
	"faq-backend/internal/services"
	"faq-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/sirupsen/logrus"
)

const anonymousEditor = "editor"

type Auth struct {
	apiKey string
	tokens map[string]string
	logger *logrus.Logger
}

// NewAuth builds both access modes from cfg. User tokens are configured as
// "user-id:token"; a bare token is attributed to a generic editor.
func NewAuth(cfg config.AuthConfig, logger *logrus.Logger) *Auth {
	tokens := make(map[string]string, len(cfg.UserTokens))
	for _, entry := range cfg.UserTokens {
		userID, token, ok := strings.Cut(entry, ":")
		if !ok {
			userID, token = anonymousEditor, entry
		}
		if token = strings.TrimSpace(token); token != "" {
			tokens[token] = strings.TrimSpace(userID)
		}
	}
	return &Auth{apiKey: cfg.APIKey, tokens: tokens, logger: logger}
}

// APIKey guards public reads with the X-API-Key header.
func (a *Auth) APIKey() fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:X-API-Key",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			if a.apiKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(a.apiKey)) != 1 {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			return true, nil
		},
		ErrorHandler: a.unauthorized("Invalid or missing API key"),
	})
}

// UserToken guards writes with a bearer token and records the caller as the
// actor of the request context.
func (a *Auth) UserToken() fiber.Handler {
	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(c *fiber.Ctx, key string) (bool, error) {
			userID, ok := a.lookup(key)
			if !ok {
				return false, keyauth.ErrMissingOrMalformedAPIKey
			}
			c.SetUserContext(services.WithActor(c.UserContext(), services.Actor{
				UserID:        userID,
				RemoteAddress: c.IP(),
			}))
			return true, nil
		},
		ErrorHandler: a.unauthorized("Invalid or missing user token"),
	})
}

func (a *Auth) lookup(key string) (string, bool) {
	for token, userID := range a.tokens {
		if subtle.ConstantTimeCompare([]byte(key), []byte(token)) == 1 {
			return userID, true
		}
	}
	return "", false
}

func (a *Auth) unauthorized(message string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		a.logger.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"ip":     c.IP(),
		}).Warn("Rejected unauthenticated request")
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, message)
	}
}
