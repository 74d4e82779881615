package model

import (
	episodeModel "autismcare_backend/internals/features/care/episodes/model"
	profileModel "autismcare_backend/internals/features/care/profiles/model"
	"autismcare_backend/internals/softdelete"
)

type BehaviorModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID    uint   `gorm:"column:profile_id;not null;index" json:"profile_id"`
	EpisodeID    *uint  `gorm:"column:episode_id;index" json:"episode_id"`
	BehaviorType string `gorm:"size:100;not null" json:"behavior_type"`
	Description  string `gorm:"type:text" json:"description"`
	Frequency    int    `gorm:"not null" json:"frequency"`
	Context      string `gorm:"type:text" json:"context"`

	softdelete.Record

	Profile *profileModel.ProfileModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	Episode *episodeModel.EpisodeModel `gorm:"foreignKey:EpisodeID;constraint:OnDelete:SET NULL" json:"-"`
}

func (BehaviorModel) TableName() string {
	return "behaviors"
}
