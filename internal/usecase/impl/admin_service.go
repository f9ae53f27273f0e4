package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager  repository.TransactionManager
	adminEmail string
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	adminEmail := ""
	if params.Config.Auth != nil {
		adminEmail = strings.TrimSpace(strings.ToLower(params.Config.Auth.AdminEmail))
	}

	return &adminService{
		txManager:  params.TxManager,
		adminEmail: adminEmail,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// InitializeAdmin grants the ADMIN role to the caller's account. It succeeds
// exactly once per deployment: the caller must hold the designated bootstrap
// email, and no account may already carry the ADMIN role. The existence check
// and the grant run in the same transaction so two concurrent calls cannot
// both succeed.
func (srv *adminService) InitializeAdmin(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Info("Admin initialization requested", slog.Any("userID", userID))

	if srv.adminEmail == "" {
		return nil, errors.Wrap(domainerrors.ErrNotDesignatedAdmin, "no designated admin email configured")
	}

	var promotedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if !strings.EqualFold(user.Email, srv.adminEmail) {
			return errors.Wrap(domainerrors.ErrNotDesignatedAdmin, "caller is not the designated admin account")
		}

		adminCount, err := userRepo.CountAdmins(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count admins")
		}
		if adminCount > 0 {
			return errors.Wrap(domainerrors.ErrAdminAlreadyExists, "an admin account already exists")
		}

		// The grant is additive: the USER role is kept.
		if !user.Roles.Contains(entity.RoleAdmin) {
			user.Roles = append(user.Roles, entity.RoleAdmin)
		}
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to grant admin role")
		}

		promotedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Admin initialization failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute admin initialization transaction")
	}

	srv.log(ctx).Info("Admin role granted", slog.Any("userID", promotedUser.ID), slog.String("email", promotedUser.Email))

	return promotedUser, nil
}
