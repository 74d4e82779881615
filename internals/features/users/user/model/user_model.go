package model

import (
	"autismcare_backend/internals/softdelete"
)

const (
	UserTypeAutistic = "autistic"
	UserTypeParent   = "parent"
	UserTypeGuardian = "guardian"
)

// UserModel is the account table. Password holds the bcrypt hash only.
type UserModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"size:150;not null;uniqueIndex:uq_users_username" json:"username"`
	Email    string `gorm:"size:254;not null;uniqueIndex:uq_users_email" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	UserType string `gorm:"size:10;not null;default:autistic" json:"user_type"`
	IsActive bool   `gorm:"not null" json:"is_active"`

	softdelete.Record
}

func (UserModel) TableName() string {
	return "users"
}

// CanLogin reports whether the account may obtain tokens.
func (u *UserModel) CanLogin() bool {
	return u.IsActive && !u.IsDeleted
}
