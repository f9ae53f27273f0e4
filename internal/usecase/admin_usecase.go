package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase defines the one-time administrator bootstrap operation.
type AdminUsecase interface {
	// InitializeAdmin grants the caller the role set [USER, ADMIN].
	// It succeeds only when the caller's email is the configured designated
	// admin email and no ADMIN exists yet; the check and the grant happen in
	// one transaction.
	InitializeAdmin(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
