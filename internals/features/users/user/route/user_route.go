package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userController "autismcare_backend/internals/features/users/user/controller"
)

// UserPublicRoutes: account registration is open.
func UserPublicRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := userController.NewUserController(db, log)
	r.Post("/user/create", ctl.Create)
}

// UserRoutes expects r to sit behind RequireAuth.
func UserRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := userController.NewUserController(db, log)

	g := r.Group("/user")
	g.Get("/", ctl.List)
	g.Get("/me", ctl.Me)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
