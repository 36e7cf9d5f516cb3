package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrIDMismatch is returned by Update when the id argument and the
	// entity's own id disagree.
	ErrIDMismatch = errors.New("repository: id does not match entity id")
	// ErrRecordNotFound is returned by Delete when no row carries the id.
	ErrRecordNotFound = gorm.ErrRecordNotFound
)

// Entity is the base identity contract: every persisted record exposes the
// identifier assigned to it by the database.
type Entity interface {
	GetID() uint
}

// Repository is a uniform CRUD layer over one entity type. Each public
// operation commits its own unit of work; there is no batching across calls.
type Repository[T Entity] struct {
	db *gorm.DB
}

func New[T Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB exposes the backing handle for services that need bespoke queries.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

// GetAll returns every row in the backing store's natural order.
func (r *Repository[T]) GetAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetAllWith eagerly resolves the named relation paths before returning.
func (r *Repository[T]) GetAllWith(ctx context.Context, relations ...string) ([]T, error) {
	query := r.db.WithContext(ctx)
	for _, relation := range relations {
		query = query.Preload(relation)
	}
	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// GetByID returns (nil, nil) when no row carries the id.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// GetByIDWith is GetByID with eager relation resolution.
func (r *Repository[T]) GetByIDWith(ctx context.Context, id uint, relations ...string) (*T, error) {
	query := r.db.WithContext(ctx)
	for _, relation := range relations {
		query = query.Preload(relation)
	}
	var entity T
	if err := query.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Add persists the entity and lets the database assign its identifier.
func (r *Repository[T]) Add(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// Update replaces the whole record. The id argument must match the entity's
// own id; mismatches are rejected rather than silently resolved in favour of
// the entity.
func (r *Repository[T]) Update(ctx context.Context, id uint, entity *T) error {
	if (*entity).GetID() != id {
		return ErrIDMismatch
	}
	return r.db.WithContext(ctx).Save(entity).Error
}

// Delete removes the row carrying the id. A missing row is reported as
// ErrRecordNotFound so callers can tell "deleted" from "nothing to delete".
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return r.db.WithContext(ctx).Delete(&entity).Error
}
