package repository

import (
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/sessions/model"
	"autismcare_backend/internals/softdelete"
)

type SessionRepository interface {
	softdelete.Repository[model.SessionModel]
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return softdelete.NewGormRepository[model.SessionModel](db)
}
