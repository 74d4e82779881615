package model

import (
	"time"

	"gorm.io/datatypes"

	profileModel "autismcare_backend/internals/features/care/profiles/model"
	"autismcare_backend/internals/softdelete"
)

const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

type EpisodeModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID   uint           `gorm:"column:profile_id;not null;index" json:"profile_id"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	StartTime   time.Time      `gorm:"not null" json:"start_time"`
	EndTime     time.Time      `gorm:"not null" json:"end_time"`
	EpisodeDate datatypes.Date `gorm:"not null" json:"episode_date"`
	Severity    string         `gorm:"size:10;not null" json:"severity"`
	Notes       string         `gorm:"type:text" json:"notes"`

	softdelete.Record

	Profile *profileModel.ProfileModel `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EpisodeModel) TableName() string {
	return "episodes"
}

// Duration is derived from the bounds and never stored.
func (m *EpisodeModel) Duration() time.Duration {
	return m.EndTime.Sub(m.StartTime)
}
