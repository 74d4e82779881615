package schools

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/schools/schools/dto"
	"autismcare_backend/internals/features/schools/schools/repository"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

type SchoolSeed = dto.SchoolRequest

// Seed inserts schools whose name is not taken yet.
func Seed(ctx context.Context, db *gorm.DB, rows []SchoolSeed, log *zap.Logger) (int, error) {
	repo := repository.NewSchoolRepository(db)
	inserted := 0

	for i := range rows {
		in := rows[i]
		if fe := helper.ValidateStruct(&in); fe != nil {
			log.Warn("invalid school seed, skipped", zap.String("name", in.Name), zap.Error(fe))
			continue
		}

		_, err := repo.FindByName(ctx, in.Name)
		if err == nil {
			log.Info("school already exists, skipped", zap.String("name", in.Name))
			continue
		}
		if !errors.Is(err, softdelete.ErrNotFound) {
			return inserted, err
		}

		if err := repo.Create(ctx, in.ToModel()); err != nil {
			return inserted, err
		}
		inserted++
		log.Info("school inserted", zap.String("name", in.Name))
	}
	return inserted, nil
}
