package seeds

import (
	"context"
	"fmt"
	"os"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autismcare_backend/internals/seeds/schools"
	"autismcare_backend/internals/seeds/therapists"
	"autismcare_backend/internals/seeds/users"
)

// File is the layout of a seed file. Every section is optional.
type File struct {
	Schools    []schools.SchoolSeed       `json:"schools"`
	Therapists []therapists.TherapistSeed `json:"therapists"`
	Users      []users.UserSeed           `json:"users"`
}

// Result counts the rows each seeder inserted.
type Result struct {
	Schools    int
	Therapists int
	Users      int
}

// RunFromFile loads path and seeds schools, then therapists, then users.
// Rows that already exist are skipped, so running twice is harmless.
func RunFromFile(ctx context.Context, db *gorm.DB, path string, log *zap.Logger) (Result, error) {
	log.Info("reading seed file", zap.String("path", path))

	raw, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read seed file: %w", err)
	}
	var f File
	if err := sonic.Unmarshal(raw, &f); err != nil {
		return Result{}, fmt.Errorf("decode seed file: %w", err)
	}
	return Run(ctx, db, f, log)
}

func Run(ctx context.Context, db *gorm.DB, f File, log *zap.Logger) (Result, error) {
	var res Result
	var err error

	if res.Schools, err = schools.Seed(ctx, db, f.Schools, log); err != nil {
		return res, fmt.Errorf("seed schools: %w", err)
	}
	if res.Therapists, err = therapists.Seed(ctx, db, f.Therapists, log); err != nil {
		return res, fmt.Errorf("seed therapists: %w", err)
	}
	if res.Users, err = users.Seed(ctx, db, f.Users, log); err != nil {
		return res, fmt.Errorf("seed users: %w", err)
	}

	log.Info("seeding finished",
		zap.Int("schools", res.Schools),
		zap.Int("therapists", res.Therapists),
		zap.Int("users", res.Users),
	)
	return res, nil
}
