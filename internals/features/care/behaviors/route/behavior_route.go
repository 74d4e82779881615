package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	behaviorController "autismcare_backend/internals/features/care/behaviors/controller"
)

func BehaviorRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := behaviorController.NewBehaviorController(db, log)

	g := r.Group("/behavior")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
