// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrAuthNotFound is returned when no authentication record matches.
var ErrAuthNotFound = errors.New("authentication not found")

// UserRepository defines the standard operations for user profile persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// CountAdmins returns the number of users carrying the ADMIN role.
	CountAdmins(ctx context.Context) (int64, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error
}

// AuthRepository defines operations for authentication credential persistence.
type AuthRepository interface {
	// FindAuthentication retrieves a credential by provider and provider-side user ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// CreateAuthentication persists a new credential for an existing user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
