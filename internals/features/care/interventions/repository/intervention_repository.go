package repository

import (
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/interventions/model"
	"autismcare_backend/internals/softdelete"
)

type InterventionRepository interface {
	softdelete.Repository[model.InterventionModel]
}

func NewInterventionRepository(db *gorm.DB) InterventionRepository {
	return softdelete.NewGormRepository[model.InterventionModel](db)
}
