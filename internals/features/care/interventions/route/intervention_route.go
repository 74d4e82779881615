package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	interventionController "autismcare_backend/internals/features/care/interventions/controller"
)

func InterventionRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := interventionController.NewInterventionController(db, log)

	g := r.Group("/intervention")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
