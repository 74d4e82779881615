package softdelete

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ListOptions controls List. Limit <= 0 returns every matching row.
type ListOptions struct {
	IncludeDeleted bool
	Offset         int
	Limit          int
	// Filter narrows the query further (e.g. by profile_id). Optional.
	Filter func(*gorm.DB) *gorm.DB
}

// Repository is the storage contract every entity repository builds on.
type Repository[T any] interface {
	Find(ctx context.Context, id uint) (*T, error)
	FindIncludingDeleted(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, opts ListOptions) ([]T, int64, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, m *T) error
	Save(ctx context.Context, m *T) error
	SoftDelete(ctx context.Context, id uint) error
	HardDelete(ctx context.Context, id uint) error
}

// GormRepository implements Repository for any gorm model whose table has
// id, is_deleted and created_at columns.
type GormRepository[T any] struct {
	DB *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{DB: db}
}

func (r *GormRepository[T]) conn(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

func (r *GormRepository[T]) Find(ctx context.Context, id uint) (*T, error) {
	return r.first(r.conn(ctx).Scopes(Alive), id)
}

func (r *GormRepository[T]) FindIncludingDeleted(ctx context.Context, id uint) (*T, error) {
	return r.first(r.conn(ctx), id)
}

func (r *GormRepository[T]) first(db *gorm.DB, id uint) (*T, error) {
	var m T
	if err := db.Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *GormRepository[T]) List(ctx context.Context, opts ListOptions) ([]T, int64, error) {
	q := r.conn(ctx).Model(new(T))
	if !opts.IncludeDeleted {
		q = q.Scopes(Alive)
	}
	if opts.Filter != nil {
		q = opts.Filter(q)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q = q.Scopes(Newest)
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit).Offset(opts.Offset)
	}

	rows := make([]T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *GormRepository[T]) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.conn(ctx).Model(new(T)).Scopes(Alive).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, m *T) error {
	return r.conn(ctx).Create(m).Error
}

// Save writes every column of m, including zero values, to a live row.
// is_deleted and created_at are never written, so a row soft-deleted after
// m was read stays deleted and Save reports ErrNotFound.
func (r *GormRepository[T]) Save(ctx context.Context, m *T) error {
	res := r.conn(ctx).Model(m).
		Scopes(Alive).
		Select("*").
		Omit("is_deleted", "created_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete flips is_deleted on a live row. The row stays in the table.
func (r *GormRepository[T]) SoftDelete(ctx context.Context, id uint) error {
	res := r.conn(ctx).Model(new(T)).
		Scopes(Alive).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_deleted": true,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// HardDelete physically removes the row; foreign keys cascade to children.
func (r *GormRepository[T]) HardDelete(ctx context.Context, id uint) error {
	res := r.conn(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
