// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"busquei/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the mutable identity fields. Nil fields are left
// unchanged.
type UpdateProfileInput struct {
	Name     *string
	Email    *string
	IsActive *bool
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
// The password hash never leaves the use case layer.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the authenticated user. Token issuance is the delivery
// layer's responsibility, keeping credential checking independent of token format.
type LoginOutput struct {
	User *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new active account after validating name, email and
	// password policy. The identity and its credential are stored atomically.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the credentials and account state and returns the user.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetCurrentUser resolves a user id (already extracted from a verified
	// token) into the user entity.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies explicit identity mutations for the given user.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// Logout ends the caller's session. With stateless JWTs there is nothing
	// to invalidate server-side, so this is a deliberate no-op that always
	// succeeds; a token denylist would slot in here if ever needed.
	Logout(ctx context.Context, userID uuid.UUID) error
}
