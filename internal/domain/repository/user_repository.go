// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"busquei/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when persisting a user whose email is already taken.
// Concurrent registrations racing past the existence check end up here via the
// database unique constraint.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// The password hash is accepted and returned as an opaque string; it is stored
// alongside the user but never mapped onto the entity.
type UserRepository interface {
	// Create persists a new user together with their password hash. Both rows
	// are written atomically: either the user and the credential exist, or neither.
	Create(ctx context.Context, user *entity.User, passwordHash string) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the normalized email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// GetPasswordHash returns the stored password hash for a user.
	// Returns ErrUserNotFound when the user has no credential record.
	GetPasswordHash(ctx context.Context, id uuid.UUID) (string, error)

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user and their credential record. Returns ErrUserNotFound
	// when no such user exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
