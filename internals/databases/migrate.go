package database

import (
	"gorm.io/gorm"

	behaviorModel "autismcare_backend/internals/features/care/behaviors/model"
	episodeModel "autismcare_backend/internals/features/care/episodes/model"
	interventionModel "autismcare_backend/internals/features/care/interventions/model"
	profileModel "autismcare_backend/internals/features/care/profiles/model"
	sessionModel "autismcare_backend/internals/features/care/sessions/model"
	triggerModel "autismcare_backend/internals/features/care/triggers/model"
	schoolModel "autismcare_backend/internals/features/schools/schools/model"
	therapistModel "autismcare_backend/internals/features/schools/therapists/model"
	authModel "autismcare_backend/internals/features/users/auth/model"
	userModel "autismcare_backend/internals/features/users/user/model"
)

// Models lists every table in foreign-key order (parents first).
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&authModel.RefreshTokenModel{},
		&authModel.TokenBlacklistModel{},
		&schoolModel.SchoolModel{},
		&therapistModel.TherapistModel{},
		&profileModel.ProfileModel{},
		&episodeModel.EpisodeModel{},
		&triggerModel.TriggerModel{},
		&behaviorModel.BehaviorModel{},
		&interventionModel.InterventionModel{},
		&sessionModel.SessionModel{},
	}
}

// Migrate creates or alters every table, including the foreign keys declared
// on the models: CASCADE for owning parents, SET NULL for optional links.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
