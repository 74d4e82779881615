package softdelete

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type note struct {
	ID   uint   `gorm:"primaryKey;autoIncrement"`
	Body string `gorm:"not null"`
	Tag  string
	Record
}

func (note) TableName() string { return "notes" }

func setupRepo(t *testing.T) *GormRepository[note] {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&note{}))
	return NewGormRepository[note](db)
}

func seed(t *testing.T, r *GormRepository[note], bodies ...string) []*note {
	t.Helper()
	out := make([]*note, 0, len(bodies))
	for _, b := range bodies {
		n := &note{Body: b}
		require.NoError(t, r.Create(context.Background(), n))
		out = append(out, n)
	}
	return out
}

func TestSoftDelete_HidesFromDefaultScope(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	n := seed(t, r, "first")[0]

	require.NoError(t, r.SoftDelete(ctx, n.ID))

	_, err := r.Find(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := r.Exists(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := r.FindIncludingDeleted(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.Deleted())
	assert.Equal(t, "first", got.Body)

	rows, total, err := r.List(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)

	rows, total, err = r.List(ctx, ListOptions{IncludeDeleted: true})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.EqualValues(t, 1, total)
}

func TestSoftDelete_TwiceIsNotFound(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	n := seed(t, r, "once")[0]

	require.NoError(t, r.SoftDelete(ctx, n.ID))
	assert.ErrorIs(t, r.SoftDelete(ctx, n.ID), ErrNotFound)
	assert.ErrorIs(t, r.SoftDelete(ctx, 999), ErrNotFound)
}

func TestList_NewestFirst(t *testing.T) {
	r := setupRepo(t)
	seed(t, r, "a", "b", "c")

	rows, total, err := r.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{rows[0].Body, rows[1].Body, rows[2].Body})
}

func TestList_PagingAndFilter(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	ns := seed(t, r, "a", "b", "c", "d")
	for _, n := range ns[:2] {
		n.Tag = "x"
		require.NoError(t, r.Save(ctx, n))
	}

	rows, total, err := r.List(ctx, ListOptions{Offset: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, rows, 2)
	assert.Equal(t, "c", rows[0].Body)
	assert.Equal(t, "b", rows[1].Body)

	rows, total, err = r.List(ctx, ListOptions{
		Filter: func(db *gorm.DB) *gorm.DB { return db.Where("tag = ?", "x") },
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)
}

func TestSave_ReplacesEveryColumn(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	n := seed(t, r, "body")[0]
	n.Tag = "tagged"
	require.NoError(t, r.Save(ctx, n))

	n.Tag = ""
	n.Body = "replaced"
	require.NoError(t, r.Save(ctx, n))

	got, err := r.Find(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "replaced", got.Body)
	assert.Empty(t, got.Tag)
}

func TestSave_DoesNotReviveSoftDeleted(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	n := seed(t, r, "body")[0]

	stale, err := r.Find(ctx, n.ID)
	require.NoError(t, err)
	require.NoError(t, r.SoftDelete(ctx, n.ID))

	stale.Body = "late write"
	assert.ErrorIs(t, r.Save(ctx, stale), ErrNotFound)

	got, err := r.FindIncludingDeleted(ctx, n.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)
	assert.Equal(t, "body", got.Body)
}

func TestHardDelete_RemovesRow(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()
	n := seed(t, r, "gone")[0]

	require.NoError(t, r.HardDelete(ctx, n.ID))
	_, err := r.FindIncludingDeleted(ctx, n.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.HardDelete(ctx, n.ID), ErrNotFound)
}

func TestSoftDelete_IssuesUpdateOnly(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	mock.ExpectExec(`^UPDATE "notes" SET .*"is_deleted"=.* WHERE is_deleted = .* AND id = `).
		WillReturnResult(sqlmock.NewResult(0, 1))

	r := NewGormRepository[note](db)
	require.NoError(t, r.SoftDelete(context.Background(), 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_SkipsDeletedFlag(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	mock.ExpectExec(`^UPDATE "notes" SET "body"=\$1,"tag"=\$2,"updated_at"=\$3 WHERE is_deleted = \$4 AND .*"id" = \$5`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	r := NewGormRepository[note](db)
	err = r.Save(context.Background(), &note{ID: 7, Body: "b"})
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
