package repository

import (
	"context"

	"retailpos/internal/domain/entity"
	"retailpos/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists staff members. There is deliberately no credential
// or role handling here.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves one user.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*entity.User, error)
}
