package domain

// Role defines the permission level of a member within an organization.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// AllRoles returns every known role in privilege order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleEmployee}
}

// Known reports whether r is one of the three defined roles.
func (r Role) Known() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanManage reports whether the role may create, update and delete
// organization data. Unknown or empty roles get no capabilities.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}

// IsAdmin reports whether the role has full control over the organization
// and its members.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// SortRank orders roles for directory listings: lower is more privileged.
// Unknown roles sort last.
func (r Role) SortRank() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleManager:
		return 2
	case RoleEmployee:
		return 3
	}
	return 4
}

// AssignableRoles returns the roles an acting user may assign to another
// member: the full role set minus the actor's own role. Assigning a role to
// oneself is blocked separately by comparing user ids.
func AssignableRoles(actor Role) []Role {
	roles := make([]Role, 0, 2)
	for _, r := range AllRoles() {
		if r != actor {
			roles = append(roles, r)
		}
	}
	return roles
}
