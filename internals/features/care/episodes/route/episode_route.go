package route

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	episodeController "autismcare_backend/internals/features/care/episodes/controller"
)

func EpisodeRoutes(r fiber.Router, db *gorm.DB, log *zap.Logger) {
	ctl := episodeController.NewEpisodeController(db, log)

	g := r.Group("/episode")
	g.Post("/create", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Put("/update/:id", ctl.Update)
	g.Delete("/delete/:id", ctl.Delete)
}
