// Package auth attaches the authenticated caller to each request and
// guards the private route group.
package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "autismcare_backend/internals/helpers"
	helperAuth "autismcare_backend/internals/helpers/auth"
)

const locAuthFailed = "auth_failed"

const (
	msgNoCredentials = "Authentication credentials were not provided."
	msgInvalidToken  = "Given token not valid for any token type"
)

// Authenticate never rejects. A valid bearer token yields a Principal in
// Locals; a missing or bad one leaves the request anonymous.
func Authenticate(v helperAuth.Verifier, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := helper.BearerToken(c)
		if raw == "" {
			return c.Next()
		}

		p, err := v.Verify(helper.ReqCtx(c), raw)
		if err != nil {
			c.Locals(locAuthFailed, true)
			if log != nil {
				log.Debug("bearer token rejected",
					zap.String("path", c.Path()),
					zap.Error(err),
				)
			}
			return c.Next()
		}

		helperAuth.SetPrincipal(c, p)
		helper.SetRawAccessToken(c, raw)
		return c.Next()
	}
}

// RequireAuth answers 401 unless Authenticate attached a Principal.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := helperAuth.CurrentPrincipal(c); ok {
			return c.Next()
		}
		c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="api"`)
		if failed, _ := c.Locals(locAuthFailed).(bool); failed {
			return helper.JsonError(c, fiber.StatusUnauthorized, msgInvalidToken)
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, msgNoCredentials)
	}
}
