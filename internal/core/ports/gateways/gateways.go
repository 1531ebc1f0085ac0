// Package gateways declares the ports over the organization-management REST
// API. The backend owns all persistence and re-checks authorization on every
// call; these interfaces are this layer's only way to read or write state.
package gateways

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// IdentityGateway resolves the current identity snapshot.
type IdentityGateway interface {
	Me(ctx context.Context) (*domain.User, error)
}

// GoalGateway covers the per-organization goal resource.
type GoalGateway interface {
	ListGoals(ctx context.Context, orgID int64) ([]domain.Goal, error)
	GetGoal(ctx context.Context, orgID, goalID int64) (*domain.Goal, error)
	CreateGoal(ctx context.Context, orgID int64, draft domain.GoalDraft) (*domain.Goal, error)
	ReplaceGoal(ctx context.Context, orgID, goalID int64, draft domain.GoalDraft) (*domain.Goal, error)
	PatchGoalStatus(ctx context.Context, orgID, goalID int64, status domain.GoalStatus) error
	PatchGoalPinned(ctx context.Context, orgID, goalID int64, pinned bool) error
}

// TransactionGateway covers the per-organization transaction resource.
type TransactionGateway interface {
	ListTransactions(ctx context.Context, orgID int64) ([]domain.Transaction, error)
	CreateTransaction(ctx context.Context, orgID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, orgID, transactionID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, orgID, transactionID int64) error
}

// MemberGateway covers the member listing and membership mutations.
type MemberGateway interface {
	ListMembers(ctx context.Context, orgID int64) ([]domain.Member, error)
	RemoveMember(ctx context.Context, orgID, memberID int64) error
	InviteMember(ctx context.Context, orgID int64, email string, role domain.Role) (string, error)
	UpdateMember(ctx context.Context, memberID int64, role domain.Role, occupation *string) error
}

// OrganizationGateway covers the organization resource itself.
type OrganizationGateway interface {
	GetOrganization(ctx context.Context, orgID int64) (*domain.Organization, error)
	CreateOrganization(ctx context.Context, draft domain.OrganizationDraft) (*domain.Organization, error)
	ReplaceOrganization(ctx context.Context, orgID int64, draft domain.OrganizationDraft) (*domain.Organization, error)
}

// DashboardGateway fetches the server-computed aggregate summary.
type DashboardGateway interface {
	DashboardSummary(ctx context.Context, orgID int64) (*domain.DashboardSummary, error)
}

// UserGateway covers the user resource: profile updates and the invitation
// accept/revoke toggle (one endpoint serves both).
type UserGateway interface {
	UpdateProfile(ctx context.Context, userID int64, name, email, phoneNumber string) error
	AnswerInvitation(ctx context.Context, userID int64) error
}
