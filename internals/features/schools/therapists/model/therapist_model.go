package model

import (
	schoolModel "autismcare_backend/internals/features/schools/schools/model"
	"autismcare_backend/internals/softdelete"
)

type TherapistModel struct {
	ID             uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string `gorm:"size:200;not null" json:"name"`
	Specialization string `gorm:"size:200;not null" json:"specialization"`
	Phone          string `gorm:"size:30" json:"phone"`
	Email          string `gorm:"size:254" json:"email"`
	SchoolID       *uint  `gorm:"column:school_id;index" json:"school_id"`

	softdelete.Record

	School *schoolModel.SchoolModel `gorm:"foreignKey:SchoolID;constraint:OnDelete:SET NULL" json:"-"`
}

func (TherapistModel) TableName() string {
	return "therapists"
}
