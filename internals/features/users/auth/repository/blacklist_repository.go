package repository

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authModel "autismcare_backend/internals/features/users/auth/model"
	helperAuth "autismcare_backend/internals/helpers/auth"
)

/* ====================== DB BLACKLIST ====================== */

// DBBlacklist keeps revoked jtis in the token_blacklist table.
type DBBlacklist struct {
	DB *gorm.DB
}

var _ helperAuth.Blacklist = (*DBBlacklist)(nil)

func NewDBBlacklist(db *gorm.DB) *DBBlacklist {
	return &DBBlacklist{DB: db}
}

func (b *DBBlacklist) Add(ctx context.Context, jti, tokenType string, expiresAt time.Time) error {
	row := authModel.TokenBlacklistModel{
		JTI:       jti,
		TokenType: tokenType,
		ExpiredAt: expiresAt.UTC(),
	}
	return b.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "jti"}},
		DoUpdates: clause.AssignmentColumns([]string{"expired_at"}),
	}).Create(&row).Error
}

func (b *DBBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	var n int64
	err := b.DB.WithContext(ctx).
		Model(&authModel.TokenBlacklistModel{}).
		Where("jti = ?", jti).
		Count(&n).Error
	return n > 0, err
}

func (b *DBBlacklist) PurgeExpired(ctx context.Context) (int64, error) {
	res := b.DB.WithContext(ctx).
		Where("expired_at <= ?", time.Now().UTC()).
		Delete(&authModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}

/* ====================== REDIS BLACKLIST ====================== */

// RedisBlacklist stores one key per jti and lets redis expire it.
type RedisBlacklist struct {
	Client redis.UniversalClient
	Prefix string
}

var _ helperAuth.Blacklist = (*RedisBlacklist)(nil)

func NewRedisBlacklist(client redis.UniversalClient) *RedisBlacklist {
	return &RedisBlacklist{Client: client, Prefix: "token_blacklist:"}
}

func (b *RedisBlacklist) key(jti string) string { return b.Prefix + jti }

func (b *RedisBlacklist) Add(ctx context.Context, jti, tokenType string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// already expired: the signature check rejects it anyway
		return nil
	}
	return b.Client.Set(ctx, b.key(jti), tokenType, ttl).Err()
}

func (b *RedisBlacklist) Contains(ctx context.Context, jti string) (bool, error) {
	err := b.Client.Get(ctx, b.key(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PurgeExpired is a no-op: keys carry their own TTL.
func (b *RedisBlacklist) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
