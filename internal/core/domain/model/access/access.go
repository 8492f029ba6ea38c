package access

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Role is the coarse permission group of an authenticated user.
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleBilling    Role = "BILLING"
	RolePicker     Role = "PICKER"
	RolePacker     Role = "PACKER"
	RoleDriver     Role = "DRIVER"
	RoleUser       Role = "USER"
)

// ParseRole accepts any known role name in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleBilling, RolePicker, RolePacker, RoleDriver, RoleUser:
		return r, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
	}
}

// IsPrivileged reports whether the role bypasses ownership scoping.
func (r Role) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Actor is the verified identity behind a request. UserID is zero for
// integrations authenticated with the static API key.
type Actor struct {
	UserID kernel.UUID
	Email  kernel.Email
	Name   string
	Role   Role
}

func (a Actor) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}

// DisplayName is the name recorded in free-text audit columns such as returned_by.
func (a Actor) DisplayName() string {
	switch {
	case a.Name != "":
		return a.Name
	case !a.Email.IsZero():
		return a.Email.String()
	default:
		return string(a.Role)
	}
}

// RequireBilling allows BILLING and privileged actors to perform action.
func (a Actor) RequireBilling(action string) error {
	if a.Role == RoleBilling || a.IsPrivileged() {
		return nil
	}
	return errs.NewForbiddenError(action, fmt.Sprintf("role %s may not %s", a.Role, action))
}

// RequireSelfOrPrivileged allows an actor to look at a worker's data only when
// the worker is the actor, unless the actor is privileged.
func (a Actor) RequireSelfOrPrivileged(action string, worker kernel.Email) error {
	if a.IsPrivileged() || (!a.Email.IsZero() && a.Email.IsEqual(worker)) {
		return nil
	}
	return errs.NewForbiddenError(action, fmt.Sprintf("%s may not access %s", a.DisplayName(), worker))
}

// Scope is the ownership predicate applied to list and detail reads. A
// privileged actor's scope admits every row; otherwise rows are restricted to
// those owned by the actor.
type Scope struct {
	all    bool
	userID kernel.UUID
	email  kernel.Email
}

// ScopeFor derives the read scope of actor.
func ScopeFor(actor Actor) Scope {
	return Scope{
		all:    actor.IsPrivileged(),
		userID: actor.UserID,
		email:  actor.Email,
	}
}

// AllowsAll reports whether the scope is unrestricted.
func (s Scope) AllowsAll() bool { return s.all }

// UserID is the owning user of imported invoices, zero for API-key actors.
func (s Scope) UserID() kernel.UUID { return s.userID }

// Email is the worker e-mail that owns sessions.
func (s Scope) Email() kernel.Email { return s.email }
