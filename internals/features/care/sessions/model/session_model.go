package model

import (
	"gorm.io/datatypes"

	profileModel "autismcare_backend/internals/features/care/profiles/model"
	therapistModel "autismcare_backend/internals/features/schools/therapists/model"
	"autismcare_backend/internals/softdelete"
)

// SessionModel is a therapy session. Therapist is free text; TherapistID
// optionally links a therapist record.
type SessionModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProfileID   uint           `gorm:"column:profile_id;not null;index" json:"profile_id"`
	SessionDate datatypes.Date `gorm:"not null" json:"session_date"`
	Therapist   string         `gorm:"size:100;not null" json:"therapist"`
	TherapistID *uint          `gorm:"column:therapist_id;index" json:"therapist_id"`
	Notes       string         `gorm:"type:text" json:"notes"`
	Goals       string         `gorm:"type:text" json:"goals"`

	softdelete.Record

	Profile       *profileModel.ProfileModel     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-"`
	TherapistLink *therapistModel.TherapistModel `gorm:"foreignKey:TherapistID;constraint:OnDelete:SET NULL" json:"-"`
}

func (SessionModel) TableName() string {
	return "sessions"
}
