package services

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// MembershipSvcFacade is the member directory: role-ordered listing plus the
// admin-gated role change, removal and invitation operations.
type MembershipSvcFacade interface {
	// ListMembers returns the organization's members sorted most privileged
	// role first.
	ListMembers(ctx context.Context) ([]domain.Member, error)
	// ChangeRole reassigns a member's role. Admin only; a user may never
	// change their own role, and the target role must come from the acting
	// admin's assignable set.
	ChangeRole(ctx context.Context, memberID int64, role domain.Role, occupation *string) error
	RemoveMember(ctx context.Context, memberID int64) error
	// InviteMember sends an invitation; the returned message comes from the
	// server and is shown to the user as-is.
	InviteMember(ctx context.Context, email string, role domain.Role) (string, error)
}
