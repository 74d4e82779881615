package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	triggerController "autismcare_backend/internals/features/care/triggers/controller"
)

func TriggerRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := triggerController.NewTriggerController(db, log)

	g := r.Group("/trigger")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
