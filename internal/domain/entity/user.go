// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the profile document kept for every identity-service account.
// The role set drives all authorization decisions; it is non-empty from the
// moment the profile is created and an ADMIN grant is only ever additive.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	Name      string    // The user's display name.
	Roles     Roles     // The permission tags attached to this profile, subset of {USER, ADMIN}.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Authentication represents a single method of logging in (a credential).
// A user's email/password is one record, while a linked Firebase account is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g., "email", "firebase".
	ProviderUserID string       // The user's unique ID from the external provider (e.g., the Firebase UID).
	PasswordHash   string       // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time    // Timestamp of when this authentication method was linked to the user account.
}

// ProviderType identifies an authentication provider.
type ProviderType string

// Authentication provider types.
const (
	ProviderTypeEmail    ProviderType = "email"
	ProviderTypeFirebase ProviderType = "firebase"
)
