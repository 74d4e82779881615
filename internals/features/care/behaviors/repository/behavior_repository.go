package repository

import (
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/behaviors/model"
	"autismcare_backend/internals/softdelete"
)

type BehaviorRepository interface {
	softdelete.Repository[model.BehaviorModel]
}

func NewBehaviorRepository(db *gorm.DB) BehaviorRepository {
	return softdelete.NewGormRepository[model.BehaviorModel](db)
}
