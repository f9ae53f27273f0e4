// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	identityVerifier service.IdentityVerifier
	logger           *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityVerifier service.IdentityVerifier
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		identityVerifier: params.IdentityVerifier,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser orchestrates the complete user registration process.
// A fresh profile always starts with the role set [USER].
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if email == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "email and password are required")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		newUser := &entity.User{
			Name:  input.Name,
			Email: email,
			Roles: entity.Roles{entity.RoleUser},
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login orchestrates the email/password login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var authRecord *entity.Authentication
	var loggedInUser *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.NewAuthRepository()
		userRepo := repoFactory.NewUserRepository()

		var findErr error
		authRecord, findErr = authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		loggedInUser, findErr = userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to find user by id")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.issueTokens(ctx, loggedInUser)
}

// LoginWithFirebase verifies a Firebase-issued ID token and signs the caller in,
// creating the profile with role set [USER] on first sign-in.
func (srv *userService) LoginWithFirebase(ctx context.Context, input *usecase.FirebaseLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling Firebase login")

	if srv.identityVerifier == nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "no identity provider configured")
	}

	// 1. Verify the ID token against the Firebase project.
	ident, err := srv.identityVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Firebase token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to verify ID token")
	}

	// 2. Find or create the profile for the verified identity.
	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateExternalUser(ctx, repoFactory, ident)
		if err != nil {
			return err
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Firebase login transaction")
	}

	return srv.issueTokens(ctx, loggedInUser)
}

// findOrCreateExternalUser finds the existing profile for an external identity
// or creates a fresh one with the role set [USER].
func (srv *userService) findOrCreateExternalUser(ctx context.Context, repoFactory repository.RepositoryFactory, ident *service.ExternalIdentity) (*entity.User, error) {
	authRepo := repoFactory.NewAuthRepository()
	userRepo := repoFactory.NewUserRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, ident.Provider, ident.ID)
	if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find user for external identity")
		}

		return user, nil
	}

	srv.log(ctx).Info("External identity not seen before, creating profile", slog.String("email", ident.Email))

	newUser := &entity.User{
		Name:  ident.Name,
		Email: strings.TrimSpace(strings.ToLower(ident.Email)),
		Roles: entity.Roles{entity.RoleUser},
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for external identity")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       ident.Provider,
		ProviderUserID: ident.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create external authentication")
	}

	return newUser, nil
}

// issueTokens generates an access/refresh token pair for the user.
func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a new access token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "invalid refresh token")
	}

	// Re-read the role set so a revoked or granted role takes effect on refresh.
	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	newAccessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// GetProfile retrieves the caller's profile.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
