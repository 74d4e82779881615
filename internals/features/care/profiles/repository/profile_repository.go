package repository

import (
	"context"

	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/profiles/model"
	"autismcare_backend/internals/softdelete"
)

type ProfileRepository interface {
	softdelete.Repository[model.ProfileModel]

	// HasLiveProfile reports whether userID already owns a live profile other than excludeID.
	HasLiveProfile(ctx context.Context, userID, excludeID uint) (bool, error)
}

type profileRepository struct {
	*softdelete.GormRepository[model.ProfileModel]
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{GormRepository: softdelete.NewGormRepository[model.ProfileModel](db)}
}

func (r *profileRepository) HasLiveProfile(ctx context.Context, userID, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Scopes(softdelete.Alive).
		Where("user_id = ?", userID)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
