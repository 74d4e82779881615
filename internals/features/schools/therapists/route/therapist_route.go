package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	therapistController "autismcare_backend/internals/features/schools/therapists/controller"
)

func TherapistRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := therapistController.NewTherapistController(db, log)

	g := r.Group("/therapist")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
