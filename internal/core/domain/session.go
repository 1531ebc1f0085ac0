package domain

// SessionInfo is the immutable identity snapshot injected into every
// component that needs to know who is acting. While the identity fetch has
// not resolved all fields are zero and Resolved reports false; callers must
// treat that as "not yet authorized to act".
type SessionInfo struct {
	UserID         int64
	OrganizationID int64
	Role           Role
}

// Resolved reports whether the identity fetch has completed.
func (s SessionInfo) Resolved() bool {
	return s.UserID != 0
}

// InOrganization reports whether the session user belongs to an organization.
func (s SessionInfo) InOrganization() bool {
	return s.OrganizationID != 0
}
