package users

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/features/users/user/dto"
	"autismcare_backend/internals/features/users/user/repository"
	helper "autismcare_backend/internals/helpers"
)

type UserSeed = dto.UserRequest

// Seed inserts users whose username and email are both free.
// Passwords in the seed file are plain text and get hashed here.
func Seed(ctx context.Context, db *gorm.DB, rows []UserSeed, log *zap.Logger) (int, error) {
	repo := repository.NewUserRepository(db)
	inserted := 0

	for i := range rows {
		in := rows[i]
		in.Normalize()
		if fe := helper.ValidateStruct(&in); fe != nil {
			log.Warn("invalid user seed, skipped", zap.String("username", in.Username), zap.Error(fe))
			continue
		}

		taken, err := repo.UsernameTaken(ctx, in.Username, 0)
		if err != nil {
			return inserted, err
		}
		if !taken {
			taken, err = repo.EmailTaken(ctx, in.Email, 0)
			if err != nil {
				return inserted, err
			}
		}
		if taken {
			log.Info("user already exists, skipped", zap.String("username", in.Username))
			continue
		}

		m, err := in.ToModel()
		if err != nil {
			return inserted, err
		}
		if err := repo.Create(ctx, m); err != nil {
			return inserted, err
		}
		inserted++
		log.Info("user inserted", zap.String("username", in.Username))
	}
	return inserted, nil
}
