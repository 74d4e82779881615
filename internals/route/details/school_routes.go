package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	schoolRoute "autismcare_backend/internals/features/schools/schools/route"
	therapistRoute "autismcare_backend/internals/features/schools/therapists/route"
)

func SchoolRoutes(private fiber.Router, db *gorm.DB, log *zap.Logger) {
	schoolRoute.SchoolRoutes(private, db, log)
	therapistRoute.TherapistRoutes(private, db, log)
}
