package model

import "time"

type TokenBlacklistModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	JTI       string    `gorm:"column:jti;size:64;not null;uniqueIndex:uq_token_blacklist_jti" json:"jti"`
	TokenType string    `gorm:"column:token_type;size:10;not null" json:"token_type"`
	ExpiredAt time.Time `gorm:"column:expired_at;not null;index" json:"expired_at"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
