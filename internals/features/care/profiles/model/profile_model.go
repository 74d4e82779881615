package model

import (
	"gorm.io/datatypes"

	userModel "autismcare_backend/internals/features/users/user/model"
	"autismcare_backend/internals/softdelete"
)

// ProfileModel: one live profile per user (checked on write, not by index,
// so a user can get a new profile after the old one is soft-deleted).
type ProfileModel struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             uint           `gorm:"column:user_id;not null;index" json:"user_id"`
	FirstName          string         `gorm:"size:100;not null" json:"first_name"`
	LastName           string         `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth        datatypes.Date `gorm:"not null" json:"date_of_birth"`
	DiagnosisDate      datatypes.Date `gorm:"not null" json:"diagnosis_date"`
	Severity           string         `gorm:"size:50;not null" json:"severity"`
	CommunicationLevel string         `gorm:"size:50;not null" json:"communication_level"`

	softdelete.Record

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}
