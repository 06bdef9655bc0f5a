package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"Admin", "Manager", "Employee"} {
		role, ok := ParseRole(s)
		assert.True(t, ok, s)
		assert.Equal(t, Role(s), role)
	}

	for _, s := range []string{"", "admin", "Owner", "root", "ADMIN"} {
		_, ok := ParseRole(s)
		assert.False(t, ok, s)
	}
}

func TestCanAccessConsole(t *testing.T) {
	assert.True(t, RoleAdmin.CanAccessConsole())
	assert.True(t, RoleManager.CanAccessConsole())
	assert.False(t, RoleEmployee.CanAccessConsole())
	assert.False(t, Role("Owner").CanAccessConsole())
}
