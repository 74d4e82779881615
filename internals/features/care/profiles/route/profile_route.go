package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	profileController "autismcare_backend/internals/features/care/profiles/controller"
)

func ProfileRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := profileController.NewProfileController(db, log)

	g := r.Group("/profile")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
