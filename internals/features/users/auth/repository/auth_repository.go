package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	authModel "autismcare_backend/internals/features/users/auth/model"
	"autismcare_backend/internals/softdelete"
)

/* ====================== REFRESH TOKEN ====================== */

type RefreshTokenRepository interface {
	Create(ctx context.Context, rt *authModel.RefreshTokenModel) error
	FindByJTI(ctx context.Context, jti string) (*authModel.RefreshTokenModel, error)
	// Revoke stamps revoked_at once; revoking twice is a no-op.
	Revoke(ctx context.Context, jti string, at time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(ctx context.Context, rt *authModel.RefreshTokenModel) error {
	return r.db.WithContext(ctx).Omit("User").Create(rt).Error
}

func (r *refreshTokenRepository) FindByJTI(ctx context.Context, jti string) (*authModel.RefreshTokenModel, error) {
	var rt authModel.RefreshTokenModel
	if err := r.db.WithContext(ctx).Where("jti = ?", jti).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, softdelete.ErrNotFound
		}
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Revoke(ctx context.Context, jti string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&authModel.RefreshTokenModel{}).
		Where("jti = ? AND revoked_at IS NULL", jti).
		Update("revoked_at", at).Error
}

func (r *refreshTokenRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&authModel.RefreshTokenModel{})
	return res.RowsAffected, res.Error
}
