// Package refs checks that referenced rows exist and are live before a
// write. A missing or soft-deleted parent surfaces as a NotFound for that
// parent, never as a foreign-key error from the database.
package refs

import (
	"context"
	"errors"

	"gorm.io/gorm"

	helper "autismcare_backend/internals/helpers"
	"autismcare_backend/internals/softdelete"
)

// Table names of referenced entities.
const (
	TableUsers      = "users"
	TableProfiles   = "profiles"
	TableEpisodes   = "episodes"
	TableBehaviors  = "behaviors"
	TableSchools    = "schools"
	TableTherapists = "therapists"
)

type Checker struct {
	DB *gorm.DB
}

func New(db *gorm.DB) Checker { return Checker{DB: db} }

// Require fails with NotFound(entity) unless table holds a live row id.
func (r Checker) Require(ctx context.Context, table, entity string, id uint) error {
	var n int64
	err := r.DB.WithContext(ctx).
		Table(table).
		Scopes(softdelete.Alive).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound(entity)
	}
	return nil
}

// RequireOptional is Require for nullable references.
func (r Checker) RequireOptional(ctx context.Context, table, entity string, id *uint) error {
	if id == nil {
		return nil
	}
	return r.Require(ctx, table, entity, *id)
}

func (r Checker) User(ctx context.Context, id uint) error {
	return r.Require(ctx, TableUsers, "User", id)
}

func (r Checker) Profile(ctx context.Context, id uint) error {
	return r.Require(ctx, TableProfiles, "Profile", id)
}

// ProfileOf reads profile_id from a live row of a profile-owned table.
func (r Checker) ProfileOf(ctx context.Context, table, entity string, id uint) (uint, error) {
	var row struct {
		ProfileID uint
	}
	err := r.DB.WithContext(ctx).
		Table(table).
		Select("profile_id").
		Scopes(softdelete.Alive).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, helper.NotFound(entity)
	}
	if err != nil {
		return 0, err
	}
	return row.ProfileID, nil
}

// EpisodeInProfile checks an optional episode reference: it must be live and
// belong to profileID.
func (r Checker) EpisodeInProfile(ctx context.Context, episodeID *uint, profileID uint) error {
	if episodeID == nil {
		return nil
	}
	owner, err := r.ProfileOf(ctx, TableEpisodes, "Episode", *episodeID)
	if err != nil {
		return err
	}
	if owner != profileID {
		return helper.FieldError("episode_id", "Episode does not belong to this profile.")
	}
	return nil
}
