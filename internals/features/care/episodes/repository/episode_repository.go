package repository

import (
	"gorm.io/gorm"

	"autismcare_backend/internals/features/care/episodes/model"
	"autismcare_backend/internals/softdelete"
)

type EpisodeRepository interface {
	softdelete.Repository[model.EpisodeModel]
}

func NewEpisodeRepository(db *gorm.DB) EpisodeRepository {
	return softdelete.NewGormRepository[model.EpisodeModel](db)
}
