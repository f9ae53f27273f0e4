// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies the authenticated caller of a usecase operation.
// It is built from verified token claims by the delivery layer; usecases
// trust it and never re-parse tokens.
type Actor struct {
	ID    uuid.UUID
	Roles entity.Roles
}

// IsAdmin reports whether the actor carries the ADMIN role.
func (a Actor) IsAdmin() bool {
	return a.Roles.IsAdmin()
}
