package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	sessionController "autismcare_backend/internals/features/care/sessions/controller"
)

func SessionRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := sessionController.NewSessionController(db, log)

	g := r.Group("/session")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
