package repository

import (
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/triggers/model"
	"autismcare_backend/internals/softdelete"
)

type TriggerRepository interface {
	softdelete.Repository[model.TriggerModel]
}

func NewTriggerRepository(db *gorm.DB) TriggerRepository {
	return softdelete.NewGormRepository[model.TriggerModel](db)
}
