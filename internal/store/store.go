// Package store maps records to rows. Every write runs in its own
// transaction and is rolled back when the database rejects it.
package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no row has the requested primary key.
var ErrNotFound = errors.New("record not found")

// Store wraps the database handle shared by all handlers.
type Store struct {
	db *gorm.DB
}

// New creates a Store backed by db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns every record of type T in primary key order.
func List[T any](ctx context.Context, s *Store) ([]T, error) {
	results := []T{}
	if err := s.db.WithContext(ctx).Order("id").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Get looks up a record of type T by primary key.
func Get[T any](ctx context.Context, s *Store, id uint) (*T, error) {
	var rec T
	err := s.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts rec and fills in its generated fields.
func Create[T any](ctx context.Context, s *Store, rec *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(rec).Error
	})
}

// Save writes every column of rec back to its existing row. It never
// inserts: a row deleted since rec was loaded yields ErrNotFound.
func Save[T any](ctx context.Context, s *Store, rec *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(rec).Omit(clause.Associations).Select("*").Updates(rec)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Delete removes the row of rec.
func Delete[T any](ctx context.Context, s *Store, rec *T) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(rec)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
