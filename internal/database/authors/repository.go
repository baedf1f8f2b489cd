// Package authors provides database operations for the author catalog.
package authors

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ldumont/sqlvsorm/internal/database"
	"github.com/ldumont/sqlvsorm/internal/entities"
)

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns all authors ordered by id.
func (r *Repository) List(ctx context.Context) ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.WithContext(ctx).Order("id ASC").Find(&authors).Error
	return authors, err
}

// GetByID retrieves a single author.
func (r *Repository) GetByID(ctx context.Context, id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).First(&author, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, database.ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Create inserts a new author. The name must be unique; a duplicate
// surfaces from the constraint as ErrNameTaken.
func (r *Repository) Create(ctx context.Context, name string) (*entities.Author, error) {
	author := &entities.Author{Name: name}
	err := r.db.WithContext(ctx).Create(author).Error
	if database.IsUniqueViolation(err) {
		return nil, database.ErrNameTaken
	}
	if err != nil {
		return nil, err
	}
	return author, nil
}

// Update applies a partial update: only the keys present in updates
// overwrite the row, everything else is left as is. An empty map is a
// no-op that still returns the current row.
func (r *Repository) Update(ctx context.Context, id uint, updates map[string]any) (*entities.Author, error) {
	var author entities.Author
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return database.ErrAuthorNotFound
			}
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&author).Updates(updates).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return database.ErrNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &author, nil
}
