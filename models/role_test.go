package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	role, err := ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
	assert.Equal(t, "admin", role.Surface())

	role, err = ParseRole("user")
	require.NoError(t, err)
	assert.Equal(t, RoleCustomer, role)
	assert.Equal(t, "customer", role.Surface())
}

func TestParseRoleUnknown(t *testing.T) {
	for _, raw := range []string{"", "manager", "Admin", "customer"} {
		_, err := ParseRole(raw)
		assert.Error(t, err, "role %q", raw)
	}
}
