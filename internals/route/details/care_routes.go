package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	behaviorRoute "autismcare_backend/internals/features/care/behaviors/route"
	episodeRoute "autismcare_backend/internals/features/care/episodes/route"
	interventionRoute "autismcare_backend/internals/features/care/interventions/route"
	profileRoute "autismcare_backend/internals/features/care/profiles/route"
	sessionRoute "autismcare_backend/internals/features/care/sessions/route"
	triggerRoute "autismcare_backend/internals/features/care/triggers/route"
)

// CareRoutes: profiles and everything recorded against a profile.
func CareRoutes(private fiber.Router, db *gorm.DB, log *zap.Logger) {
	profileRoute.ProfileRoutes(private, db, log)
	episodeRoute.EpisodeRoutes(private, db, log)
	triggerRoute.TriggerRoutes(private, db, log)
	behaviorRoute.BehaviorRoutes(private, db, log)
	interventionRoute.InterventionRoutes(private, db, log)
	sessionRoute.SessionRoutes(private, db, log)
}
