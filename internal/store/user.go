package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/rmelo/users-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// UpdatePassword replaces the hashed password of the user identified by
	// email and returns the updated record.
	// Returns ErrUserNotFound if the user does not exist.
	UpdatePassword(ctx context.Context, email, hashedPassword string) (*domain.User, error)

	// FindByName retrieves all users whose name contains the given term,
	// case-insensitive, ordered by name ascending. The hashed password is
	// not populated on the returned records. An empty result is not an
	// error; the caller decides how to report it.
	FindByName(ctx context.Context, term string) ([]*domain.User, error)
}
