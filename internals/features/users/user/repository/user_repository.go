package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"autismcare_backend/internals/features/users/user/model"
	"autismcare_backend/internals/softdelete"
)

type UserRepository interface {
	softdelete.Repository[model.UserModel]

	// FindByLogin resolves an identifier as an email first, then as a username.
	FindByLogin(ctx context.Context, identifier string) (*model.UserModel, error)
	// UsernameTaken / EmailTaken ignore excludeID (0 = none). Soft-deleted
	// rows still count because the unique index covers them.
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}

type userRepository struct {
	*softdelete.GormRepository[model.UserModel]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{GormRepository: softdelete.NewGormRepository[model.UserModel](db)}
}

func (r *userRepository) FindByLogin(ctx context.Context, identifier string) (*model.UserModel, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, softdelete.ErrNotFound
	}

	var u model.UserModel
	db := r.DB.WithContext(ctx).Scopes(softdelete.Alive)

	err := db.Where("LOWER(email) = ?", strings.ToLower(identifier)).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.DB.WithContext(ctx).Scopes(softdelete.Alive).Where("username = ?", identifier).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, softdelete.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.taken(ctx, "username = ?", username, excludeID)
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.taken(ctx, "LOWER(email) = ?", strings.ToLower(email), excludeID)
}

func (r *userRepository) taken(ctx context.Context, cond string, val string, excludeID uint) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where(cond, val)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
