package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	authController "autismcare_backend/internals/features/users/auth/controller"
	"autismcare_backend/internals/features/users/auth/service"
)

// AuthRoutes mounts /token/*. loginLimiter may be nil.
func AuthRoutes(r fiber.Router, tokens *service.TokenService, log *zap.Logger, loginLimiter fiber.Handler) {
	ctl := authController.NewAuthController(tokens, log)

	g := r.Group("/token")
	if loginLimiter != nil {
		g.Post("/login", loginLimiter, ctl.Login)
	} else {
		g.Post("/login", ctl.Login)
	}
	g.Post("/refresh", ctl.Refresh)
	g.Post("/logout", ctl.Logout)
}
