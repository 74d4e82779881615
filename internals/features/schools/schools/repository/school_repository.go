package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"autismcare_backend/internals/features/schools/schools/model"
	"autismcare_backend/internals/softdelete"
)

type SchoolRepository interface {
	softdelete.Repository[model.SchoolModel]

	// FindByName is used by the seeder to stay idempotent.
	FindByName(ctx context.Context, name string) (*model.SchoolModel, error)
}

type schoolRepository struct {
	*softdelete.GormRepository[model.SchoolModel]
}

func NewSchoolRepository(db *gorm.DB) SchoolRepository {
	return &schoolRepository{GormRepository: softdelete.NewGormRepository[model.SchoolModel](db)}
}

func (r *schoolRepository) FindByName(ctx context.Context, name string) (*model.SchoolModel, error) {
	var m model.SchoolModel
	err := r.DB.WithContext(ctx).
		Scopes(softdelete.Alive).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, softdelete.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
