package repository

import (
	"context"

	"pedala/internal/domain"
)

// UserRepository defines the persistence operations for users. The backing
// store is a key-value collaborator: whole user records are read, modified
// and written back with no transactional isolation.
type UserRepository interface {
	// GetByEmail retrieves a user by email. Returns ErrNotFound if the
	// user does not exist and ErrCorruptData if the record won't decode.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Save persists the full user record, creating or overwriting.
	Save(ctx context.Context, user *domain.User) error

	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]*domain.User, error)
}
