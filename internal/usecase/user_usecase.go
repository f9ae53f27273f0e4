package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in with email/password.
type LoginInput struct {
	Email    string
	Password string
}

// FirebaseLoginInput carries a Firebase-issued ID token for delegated login.
type FirebaseLoginInput struct {
	IDToken string
}

// RefreshTokenInput carries a refresh token to exchange for a new access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a new access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for identity-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// RegisterUser creates an email/password account with the USER role.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*RegisterOutput, error)

	// Login authenticates an email/password account and issues tokens.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// LoginWithFirebase verifies a Firebase ID token, creating the profile with
	// role set [USER] on first sign-in, and issues service tokens.
	LoginWithFirebase(ctx context.Context, input *FirebaseLoginInput) (*LoginOutput, error)

	// RefreshToken exchanges a valid refresh token for a new access token.
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)

	// GetProfile retrieves the caller's profile.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
