// Package entity contains the core business objects of the project.
package entity

import (
	"slices"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular customer role.
	RoleUser Role = "USER"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// IsAdmin reports whether the role set grants administrator access.
func (rs Roles) IsAdmin() bool {
	return rs.Contains(RoleAdmin)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}

// Requirement names an authorization rule checked by Authorize.
type Requirement string

const (
	// RequireAdmin grants access only to administrators.
	RequireAdmin Requirement = "ADMIN"
	// RequireOwnerOrAdmin grants access to the resource owner or any administrator.
	RequireOwnerOrAdmin Requirement = "OWNER_OR_ADMIN"
)

// Authorize is the single authorization predicate for mutations.
// An empty role set (unauthenticated caller) is always denied. For
// RequireOwnerOrAdmin the requester must either carry the ADMIN role or be the
// owner of the target resource. This predicate is evaluated server-side only;
// whatever a client hides or disables in its UI carries no security weight.
func Authorize(roles Roles, requirement Requirement, requesterID, ownerID uuid.UUID) bool {
	if len(roles) == 0 {
		return false
	}

	switch requirement {
	case RequireAdmin:
		return roles.IsAdmin()
	case RequireOwnerOrAdmin:
		return roles.IsAdmin() || (requesterID != uuid.Nil && requesterID == ownerID)
	default:
		return false
	}
}
