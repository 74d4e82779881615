package model

import (
	"time"

	userModel "autismcare_backend/internals/features/users/user/model"
)

// RefreshTokenModel records every refresh token handed out so refresh and
// logout can tell a known, unrevoked token from a merely well-signed one.
type RefreshTokenModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI       string     `gorm:"column:jti;size:64;not null;uniqueIndex:uq_refresh_tokens_jti" json:"jti"`
	UserID    uint       `gorm:"column:user_id;not null;index" json:"user_id"`
	ExpiresAt time.Time  `gorm:"column:expires_at;not null;index" json:"expires_at"`
	RevokedAt *time.Time `gorm:"column:revoked_at" json:"revoked_at,omitempty"`
	UserAgent *string    `gorm:"column:user_agent;size:512" json:"user_agent,omitempty"`
	IP        *string    `gorm:"column:ip;size:64" json:"ip,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// Active: not revoked and not past expiry at now.
func (m *RefreshTokenModel) Active(now time.Time) bool {
	return m.RevokedAt == nil && now.Before(m.ExpiresAt)
}
