package model

import "autismcare_backend/internals/softdelete"

type SchoolModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"size:200;not null" json:"name"`
	Address  string `gorm:"type:text" json:"address"`
	Phone    string `gorm:"size:30" json:"phone"`
	Email    string `gorm:"size:254" json:"email"`
	Capacity int    `gorm:"not null;default:0" json:"capacity"`
	// Ratio is the staff:student ratio, e.g. "1:4".
	Ratio string `gorm:"size:20" json:"ratio"`

	softdelete.Record
}

func (SchoolModel) TableName() string {
	return "schools"
}
