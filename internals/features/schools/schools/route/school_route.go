package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	schoolController "autismcare_backend/internals/features/schools/schools/controller"
)

func SchoolRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := schoolController.NewSchoolController(db, log)

	g := r.Group("/school")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
