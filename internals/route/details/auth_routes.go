package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authRoute "autismcare_backend/internals/features/users/auth/route"
	authService "autismcare_backend/internals/features/users/auth/service"
	"autismcare_backend/internals/middlewares"
)

// AuthRoutes mounts /token/{login,refresh,logout} on the public group.
func AuthRoutes(public fiber.Router, tokens *authService.TokenService, log *zap.Logger, loginPerMinute int) {
	authRoute.AuthRoutes(public, tokens, log, middlewares.LoginRateLimiter(loginPerMinute))
}
