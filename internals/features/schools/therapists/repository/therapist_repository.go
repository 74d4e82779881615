package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"autismcare_backend/internals/features/schools/therapists/model"
	"autismcare_backend/internals/softdelete"
)

type TherapistRepository interface {
	softdelete.Repository[model.TherapistModel]

	FindByNameAndSchool(ctx context.Context, name string, schoolID *uint) (*model.TherapistModel, error)
}

type therapistRepository struct {
	*softdelete.GormRepository[model.TherapistModel]
}

func NewTherapistRepository(db *gorm.DB) TherapistRepository {
	return &therapistRepository{GormRepository: softdelete.NewGormRepository[model.TherapistModel](db)}
}

func (r *therapistRepository) FindByNameAndSchool(ctx context.Context, name string, schoolID *uint) (*model.TherapistModel, error) {
	q := r.DB.WithContext(ctx).
		Scopes(softdelete.Alive).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if schoolID != nil {
		q = q.Where("school_id = ?", *schoolID)
	} else {
		q = q.Where("school_id IS NULL")
	}

	var m model.TherapistModel
	err := q.First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, softdelete.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
