package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAdminService(t *testing.T, adminEmail string) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(adminEmail),
		Logger:    newDiscardLogger(),
	})

	return adminServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func TestAdminService_InitializeAdmin_Success(t *testing.T) {
	fx := createTestAdminService(t, "boss@example.com")

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:    userID,
		Email: "boss@example.com",
		Roles: entity.Roles{entity.RoleUser},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
			mockUserRepo.EXPECT().CountAdmins(ctx).Return(0, nil)
			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			return fn(mockFactory)
		})

	promoted, err := fx.service.InitializeAdmin(ctx, userID)

	require.NoError(t, err)
	// The grant is additive: USER stays alongside ADMIN.
	assert.Equal(t, entity.Roles{entity.RoleUser, entity.RoleAdmin}, promoted.Roles)
}

func TestAdminService_InitializeAdmin_NotDesignatedEmail(t *testing.T) {
	fx := createTestAdminService(t, "boss@example.com")

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
				ID:    userID,
				Email: "mallory@example.com",
				Roles: entity.Roles{entity.RoleUser},
			}, nil)

			return fn(mockFactory)
		})

	promoted, err := fx.service.InitializeAdmin(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, promoted)
	assert.ErrorIs(t, err, domainerrors.ErrNotDesignatedAdmin)
}

func TestAdminService_InitializeAdmin_AdminAlreadyExists(t *testing.T) {
	fx := createTestAdminService(t, "boss@example.com")

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{
				ID:    userID,
				Email: "boss@example.com",
				Roles: entity.Roles{entity.RoleUser},
			}, nil)
			mockUserRepo.EXPECT().CountAdmins(ctx).Return(1, nil)

			return fn(mockFactory)
		})

	promoted, err := fx.service.InitializeAdmin(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, promoted)
	assert.ErrorIs(t, err, domainerrors.ErrAdminAlreadyExists)
}

func TestAdminService_InitializeAdmin_NoConfiguredEmail(t *testing.T) {
	fx := createTestAdminService(t, "")

	promoted, err := fx.service.InitializeAdmin(context.Background(), uuid.New())

	require.Error(t, err)
	assert.Nil(t, promoted)
	assert.ErrorIs(t, err, domainerrors.ErrNotDesignatedAdmin)
}

func TestAdminService_InitializeAdmin_UserNotFound(t *testing.T) {
	fx := createTestAdminService(t, "boss@example.com")

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	promoted, err := fx.service.InitializeAdmin(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, promoted)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
