package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	userRoute "autismcare_backend/internals/features/users/user/route"
)

func UserPublicRoutes(public fiber.Router, db *gorm.DB, log *zap.Logger) {
	userRoute.UserPublicRoutes(public, db, log)
}

func UserRoutes(private fiber.Router, db *gorm.DB, log *zap.Logger) {
	userRoute.UserRoutes(private, db, log)
}
