package model

import (
	behaviorModel "autismcare_backend/internals/features/care/behaviors/model"
	episodeModel "autismcare_backend/internals/features/care/episodes/model"
	profileModel "autismcare_backend/internals/features/care/profiles/model"
	"autismcare_backend/internals/softdelete"
)

// InterventionModel answers a behavior. ProfileID is always the behavior's profile.
type InterventionModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	BehaviorID       uint   `gorm:"column:behavior_id;not null;index" json:"behavior_id"`
	ProfileID        uint   `gorm:"column:profile_id;not null;index" json:"profile_id"`
	EpisodeID        *uint  `gorm:"column:episode_id;index" json:"episode_id"`
	InterventionType string `gorm:"size:100;not null" json:"intervention_type"`
	Description      string `gorm:"type:text" json:"description"`
	Effectiveness    string `gorm:"size:100;not null" json:"effectiveness"`

	softdelete.Record

	Behavior *behaviorModel.BehaviorModel `gorm:"foreignKey:BehaviorID;constraint:OnDelete:CASCADE" json:"-"`
	Profile  *profileModel.ProfileModel   `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Episode  *episodeModel.EpisodeModel   `gorm:"foreignKey:EpisodeID;constraint:OnDelete:SET NULL" json:"-"`
}

func (InterventionModel) TableName() string {
	return "interventions"
}
