package permissions

// Role-to-capability mapping, computed once per request from the role
// claim and carried in the request context. Pure: no lookups, no state.

type Capability string

const (
	CapManageBudgets  Capability = "manage_budgets"
	CapManageClients  Capability = "manage_clients"
	CapManageCatalog  Capability = "manage_catalog"
	CapManageBranches Capability = "manage_branches"
	CapViewAuditLogs  Capability = "view_audit_logs"
)

type Capabilities map[Capability]bool

func (c Capabilities) Has(cap Capability) bool {
	return c[cap]
}

// ForRole resolves the capability set for a role string. Unknown roles get
// an empty set: they can read, not write.
func ForRole(role string) Capabilities {
	switch role {
	case "admin":
		return Capabilities{
			CapManageBudgets:  true,
			CapManageClients:  true,
			CapManageCatalog:  true,
			CapManageBranches: true,
			CapViewAuditLogs:  true,
		}
	case "operator":
		return Capabilities{
			CapManageBudgets: true,
			CapManageClients: true,
		}
	default:
		return Capabilities{}
	}
}
