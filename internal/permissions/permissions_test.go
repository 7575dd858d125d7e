package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForRoleAdmin(t *testing.T) {
	caps := ForRole("admin")

	for _, c := range []Capability{
		CapManageBudgets,
		CapManageClients,
		CapManageCatalog,
		CapManageBranches,
		CapViewAuditLogs,
	} {
		assert.True(t, caps.Has(c), "admin missing %s", c)
	}
}

func TestForRoleOperator(t *testing.T) {
	caps := ForRole("operator")

	assert.True(t, caps.Has(CapManageBudgets))
	assert.True(t, caps.Has(CapManageClients))
	assert.False(t, caps.Has(CapManageCatalog))
	assert.False(t, caps.Has(CapManageBranches))
	assert.False(t, caps.Has(CapViewAuditLogs))
}

func TestForRoleUnknown(t *testing.T) {
	for _, role := range []string{"", "viewer", "ADMIN"} {
		caps := ForRole(role)
		assert.Empty(t, caps, "role %q should have no capabilities", role)
	}
}
