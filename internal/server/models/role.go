package models

import (
	"fmt"

	"github.com/anshumat/paystream/internal/common"
)

// Role is the closed set of account roles. It is validated at every
// boundary (signup, token issuance, authorization) instead of being
// trusted as free text.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleAdmin
}

// ParseRole converts an external string into a Role. An empty string
// defaults to employee; anything outside the closed set is rejected.
func ParseRole(s string) (Role, error) {
	if s == "" {
		return RoleEmployee, nil
	}
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: unknown role %q", common.ErrorInvalidArgument, s)
	}
	return r, nil
}
