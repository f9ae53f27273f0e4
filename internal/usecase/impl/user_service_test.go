package impl

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	identityVerifier *mockService.MockIdentityVerifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	identityVerifier := mockService.NewMockIdentityVerifier(t)

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		IdentityVerifier: identityVerifier,
		Logger:           newDiscardLogger(),
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		identityVerifier: identityVerifier,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "alice@example.com").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "alice@example.com", output.User.Email)
	assert.Equal(t, entity.Roles{entity.RoleUser}, output.User.Roles)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret-password",
	}

	fx.hasher.EXPECT().Hash("secret-password").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "alice@example.com").
				Return(&entity.Authentication{}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_RegisterUser_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	output, err := fx.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Email: "alice@example.com",
		Roles: entity.Roles{entity.RoleUser},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "alice@example.com").
				Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("secret-password", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"USER"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "secret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "alice@example.com").
				Return(&entity.Authentication{UserID: userID, PasswordHash: "stored-hash"}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("wrong-password", "stored-hash").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
				Return(nil, repository.ErrAuthNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_LoginWithFirebase_FirstSignInCreatesProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	ident := &service.ExternalIdentity{
		ID:            "firebase-uid-1",
		Email:         "Bob@Example.com",
		Name:          "Bob",
		Provider:      entity.ProviderTypeFirebase,
		EmailVerified: true,
	}

	fx.identityVerifier.EXPECT().VerifyIDToken(ctx, "firebase-id-token").Return(ident, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeFirebase, "firebase-uid-1").
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()

					assert.Equal(t, "bob@example.com", user.Email)
					assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, entity.ProviderTypeFirebase, auth.Provider)
					assert.Equal(t, "firebase-uid-1", auth.ProviderUserID)
					assert.Empty(t, auth.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"USER"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "firebase-id-token"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "bob@example.com", output.User.Email)
}

func TestUserService_LoginWithFirebase_ExistingUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{ID: userID, Email: "bob@example.com", Roles: entity.Roles{entity.RoleUser}}

	fx.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "firebase-id-token").
		Return(&service.ExternalIdentity{ID: "firebase-uid-1", Provider: entity.ProviderTypeFirebase}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)
			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeFirebase, "firebase-uid-1").
				Return(&entity.Authentication{UserID: userID}, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)

			return fn(mockFactory)
		})

	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"USER"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "firebase-id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing, output.User)
}

func TestUserService_LoginWithFirebase_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.identityVerifier.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, assert.AnError)

	output, err := fx.service.LoginWithFirebase(ctx, &usecase.FirebaseLoginInput{IDToken: "bad-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

	fx.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{"USER", "ADMIN"}).
		Return("new-access-token", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "access"}, nil)

	output, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "access-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "alice@example.com", CreatedAt: time.Now()}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
