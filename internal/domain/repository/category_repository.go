package repository

import (
	"context"

	"blogapi/internal/domain/entity"
)

// CategoryRepository defines the persistence operations for categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]entity.Category, error)
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	Create(ctx context.Context, c *entity.Category) error
	Update(ctx context.Context, c *entity.Category) error
	Delete(ctx context.Context, id int64) error
}
