package access_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, email string, role access.Role) access.Actor {
	t.Helper()
	e, err := kernel.NewEmail(email)
	require.NoError(t, err)
	return access.Actor{UserID: kernel.NewUUID(), Email: e, Role: role}
}

func TestParseRole(t *testing.T) {
	r, err := access.ParseRole("picker")
	require.NoError(t, err)
	assert.Equal(t, access.RolePicker, r)

	_, err = access.ParseRole("janitor")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActor_Privileges(t *testing.T) {
	tests := []struct {
		role       access.Role
		privileged bool
		billing    bool
	}{
		{access.RoleSuperAdmin, true, true},
		{access.RoleAdmin, true, true},
		{access.RoleBilling, false, true},
		{access.RolePicker, false, false},
		{access.RolePacker, false, false},
		{access.RoleDriver, false, false},
		{access.RoleUser, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			a := actor(t, "someone@x.com", tt.role)

			assert.Equal(t, tt.privileged, a.IsPrivileged())
			assert.Equal(t, tt.privileged, access.ScopeFor(a).AllowsAll())
			if tt.billing {
				require.NoError(t, a.RequireBilling("import invoices"))
			} else {
				require.ErrorIs(t, a.RequireBilling("import invoices"), errs.ErrForbidden)
			}
		})
	}
}

func TestActor_RequireSelfOrPrivileged(t *testing.T) {
	alice := actor(t, "alice@x.com", access.RolePicker)
	bob, _ := kernel.NewEmail("bob@x.com")

	require.NoError(t, alice.RequireSelfOrPrivileged("view active task", alice.Email))

	err := alice.RequireSelfOrPrivileged("view active task", bob)
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "view active task", forbidden.Action)

	admin := actor(t, "admin@x.com", access.RoleAdmin)
	require.NoError(t, admin.RequireSelfOrPrivileged("view active task", bob))
}

func TestScopeFor(t *testing.T) {
	a := actor(t, "alice@x.com", access.RolePacker)

	scope := access.ScopeFor(a)

	assert.False(t, scope.AllowsAll())
	assert.True(t, scope.UserID().IsEqual(a.UserID))
	assert.Equal(t, "alice@x.com", scope.Email().String())
}

func TestActor_DisplayName(t *testing.T) {
	a := actor(t, "alice@x.com", access.RolePicker)
	assert.Equal(t, "alice@x.com", a.DisplayName())

	a.Name = "Alice"
	assert.Equal(t, "Alice", a.DisplayName())

	assert.Equal(t, "BILLING", access.Actor{Role: access.RoleBilling}.DisplayName())
}
