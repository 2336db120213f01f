package repository

import (
	"context"

	"blogapi/internal/domain/entity"
)

// PostRepository defines the read path over posts. Listing returns posts
// with author and category joined, ordered by last update descending,
// together with the total row count for the applied filter.
type PostRepository interface {
	List(ctx context.Context, offset, limit int) ([]entity.Post, int64, error)
	ListByCategory(ctx context.Context, categorySlug string, offset, limit int) ([]entity.Post, int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	ListAll(ctx context.Context) ([]entity.Post, error)
}
