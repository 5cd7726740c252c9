package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuperAdminGrantsEveryRole(t *testing.T) {
	assert.Equal(t, AllRoles, RoleSuperAdmin.Grants())
	for _, r := range Roles() {
		assert.True(t, RoleSuperAdmin.Grants().Has(r), r)
	}
}

func TestCanAccess(t *testing.T) {
	tests := []struct {
		name     string
		required []Role
		current  Role
		want     bool
	}{
		{"super admin passes any check", []Role{RoleModerator}, RoleSuperAdmin, true},
		{"listed role", []Role{RoleSuperAdmin, RoleContentAdmin}, RoleContentAdmin, true},
		{"moderator is not content staff", []Role{RoleSuperAdmin, RoleContentAdmin}, RoleModerator, false},
		{"staff roles carry user", []Role{RoleUser}, RoleFinance, true},
		{"user is not staff", DashboardRoles, RoleUser, false},
		{"empty role", []Role{RoleUser}, "", false},
		{"unknown role", []Role{RoleUser}, Role("ROOT"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccess(tt.required, tt.current))
		})
	}
}

func TestRequireRole(t *testing.T) {
	require.ErrorIs(t, RequireRole(OrderRoles, ""), ErrUnauthorized)
	require.ErrorIs(t, RequireRole(OrderRoles, RoleModerator), ErrForbidden)
	require.NoError(t, RequireRole(OrderRoles, RoleFinance))
	assert.Equal(t, ErrUnauthorized.Error(), ErrForbidden.Error())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("MATCH_ADMIN")
	require.NoError(t, err)
	assert.Equal(t, RoleMatchAdmin, r)

	_, err = ParseRole("match_admin")
	require.Error(t, err)
}
