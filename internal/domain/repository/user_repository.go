package repository

import (
	"context"

	"blogapi/internal/domain/entity"
)

// UserRepository defines the persistence operations for users.
// GetByEmail loads the user together with their role assignments.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateImage(ctx context.Context, email, imageURL string) error
}
