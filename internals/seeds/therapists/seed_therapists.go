package therapists

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	schoolRepo "autismcare_backend/internals/features/schools/schools/repository"
	"autismcare_backend/internals/features/schools/therapists/dto"
	"autismcare_backend/internals/features/schools/therapists/repository"
	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

// TherapistSeed links to its school by name since ids are not known upfront.
type TherapistSeed struct {
	dto.TherapistRequest
	School string `json:"school"`
}

func Seed(ctx context.Context, db *gorm.DB, rows []TherapistSeed, log *zap.Logger) (int, error) {
	repo := repository.NewTherapistRepository(db)
	schools := schoolRepo.NewSchoolRepository(db)
	inserted := 0

	for i := range rows {
		in := rows[i]

		if name := strings.TrimSpace(in.School); name != "" {
			s, err := schools.FindByName(ctx, name)
			if errors.Is(err, softdelete.ErrNotFound) {
				log.Warn("therapist school not found, skipped",
					zap.String("name", in.Name), zap.String("school", name))
				continue
			}
			if err != nil {
				return inserted, err
			}
			in.SchoolID = &s.ID
		}

		if fe := helper.ValidateStruct(&in.TherapistRequest); fe != nil {
			log.Warn("invalid therapist seed, skipped", zap.String("name", in.Name), zap.Error(fe))
			continue
		}

		_, err := repo.FindByNameAndSchool(ctx, in.Name, in.SchoolID)
		if err == nil {
			log.Info("therapist already exists, skipped", zap.String("name", in.Name))
			continue
		}
		if !errors.Is(err, softdelete.ErrNotFound) {
			return inserted, err
		}

		if err := repo.Create(ctx, in.ToModel()); err != nil {
			return inserted, err
		}
		inserted++
		log.Info("therapist inserted", zap.String("name", in.Name))
	}
	return inserted, nil
}
