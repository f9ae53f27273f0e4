package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthorize_AdminRequirement(t *testing.T) {
	requester := uuid.New()

	tests := []struct {
		name  string
		roles Roles
		want  bool
	}{
		{name: "admin role grants access", roles: Roles{RoleUser, RoleAdmin}, want: true},
		{name: "admin alone grants access", roles: Roles{RoleAdmin}, want: true},
		{name: "user role is denied", roles: Roles{RoleUser}, want: false},
		{name: "empty role set is denied", roles: Roles{}, want: false},
		{name: "nil role set is denied", roles: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.roles, RequireAdmin, requester, uuid.Nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorize_OwnerOrAdmin(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.True(t, Authorize(Roles{RoleUser}, RequireOwnerOrAdmin, owner, owner))
	assert.True(t, Authorize(Roles{RoleUser, RoleAdmin}, RequireOwnerOrAdmin, stranger, owner))
	assert.False(t, Authorize(Roles{RoleUser}, RequireOwnerOrAdmin, stranger, owner))
	assert.False(t, Authorize(nil, RequireOwnerOrAdmin, owner, owner))
}

func TestAuthorize_NilRequesterNeverOwns(t *testing.T) {
	// A zero requester ID must not match a zero owner ID; both mean "unknown".
	assert.False(t, Authorize(Roles{RoleUser}, RequireOwnerOrAdmin, uuid.Nil, uuid.Nil))
}

func TestAuthorize_UnknownRequirement(t *testing.T) {
	assert.False(t, Authorize(Roles{RoleAdmin}, Requirement("SOMETHING_ELSE"), uuid.New(), uuid.Nil))
}

func TestRolesFromStrings_FiltersInvalid(t *testing.T) {
	roles := RolesFromStrings([]string{"USER", "ADMIN", "merchant", ""})
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
}
