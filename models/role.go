package models

import "fmt"

// Role is the closed set of principal roles. The raw column keeps the
// historical string values ("admin" / "user") for interop with existing rows.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "user"
)

// ParseRole maps a stored role string to a Role. Anything outside the two
// known values is an error rather than a silent fall-through.
func ParseRole(raw string) (Role, error) {
	switch raw {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleCustomer):
		return RoleCustomer, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Surface names the UI surface a role is routed to.
func (r Role) Surface() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "customer"
}
