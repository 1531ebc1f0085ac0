package services_test

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// mockSession satisfies SessionSvcFacade with canned data.
type mockSession struct {
	info       domain.SessionInfo
	user       *domain.User
	resolveErr error
	refreshes  int
	refreshErr error
}

func (m *mockSession) Resolve(ctx context.Context) (domain.SessionInfo, error) {
	if m.resolveErr != nil {
		return domain.SessionInfo{}, m.resolveErr
	}
	return m.info, nil
}

func (m *mockSession) Current() domain.SessionInfo {
	return m.info
}

func (m *mockSession) CurrentUser() (*domain.User, bool) {
	return m.user, m.user != nil
}

func (m *mockSession) Refresh(ctx context.Context) (domain.SessionInfo, error) {
	m.refreshes++
	if m.refreshErr != nil {
		return domain.SessionInfo{}, m.refreshErr
	}
	return m.info, nil
}

func adminSession(userID, orgID int64) *mockSession {
	return &mockSession{info: domain.SessionInfo{UserID: userID, OrganizationID: orgID, Role: domain.RoleAdmin}}
}

func managerSession(userID, orgID int64) *mockSession {
	return &mockSession{info: domain.SessionInfo{UserID: userID, OrganizationID: orgID, Role: domain.RoleManager}}
}

func employeeSession(userID, orgID int64) *mockSession {
	return &mockSession{info: domain.SessionInfo{UserID: userID, OrganizationID: orgID, Role: domain.RoleEmployee}}
}

// mockIdentityGateway satisfies gateways.IdentityGateway.
type mockIdentityGateway struct {
	MeFn    func(ctx context.Context) (*domain.User, error)
	meCalls int
}

func (m *mockIdentityGateway) Me(ctx context.Context) (*domain.User, error) {
	m.meCalls++
	return m.MeFn(ctx)
}

// mockGoalGateway satisfies gateways.GoalGateway; unset handlers return
// empty successes.
type mockGoalGateway struct {
	ListGoalsFn       func(ctx context.Context, orgID int64) ([]domain.Goal, error)
	GetGoalFn         func(ctx context.Context, orgID, goalID int64) (*domain.Goal, error)
	CreateGoalFn      func(ctx context.Context, orgID int64, draft domain.GoalDraft) (*domain.Goal, error)
	ReplaceGoalFn     func(ctx context.Context, orgID, goalID int64, draft domain.GoalDraft) (*domain.Goal, error)
	PatchGoalStatusFn func(ctx context.Context, orgID, goalID int64, status domain.GoalStatus) error
	PatchGoalPinnedFn func(ctx context.Context, orgID, goalID int64, pinned bool) error
	createCalls       int
}

func (m *mockGoalGateway) ListGoals(ctx context.Context, orgID int64) ([]domain.Goal, error) {
	if m.ListGoalsFn == nil {
		return nil, nil
	}
	return m.ListGoalsFn(ctx, orgID)
}

func (m *mockGoalGateway) GetGoal(ctx context.Context, orgID, goalID int64) (*domain.Goal, error) {
	return m.GetGoalFn(ctx, orgID, goalID)
}

func (m *mockGoalGateway) CreateGoal(ctx context.Context, orgID int64, draft domain.GoalDraft) (*domain.Goal, error) {
	m.createCalls++
	if m.CreateGoalFn == nil {
		return &domain.Goal{}, nil
	}
	return m.CreateGoalFn(ctx, orgID, draft)
}

func (m *mockGoalGateway) ReplaceGoal(ctx context.Context, orgID, goalID int64, draft domain.GoalDraft) (*domain.Goal, error) {
	if m.ReplaceGoalFn == nil {
		return &domain.Goal{ID: goalID}, nil
	}
	return m.ReplaceGoalFn(ctx, orgID, goalID, draft)
}

func (m *mockGoalGateway) PatchGoalStatus(ctx context.Context, orgID, goalID int64, status domain.GoalStatus) error {
	if m.PatchGoalStatusFn == nil {
		return nil
	}
	return m.PatchGoalStatusFn(ctx, orgID, goalID, status)
}

func (m *mockGoalGateway) PatchGoalPinned(ctx context.Context, orgID, goalID int64, pinned bool) error {
	if m.PatchGoalPinnedFn == nil {
		return nil
	}
	return m.PatchGoalPinnedFn(ctx, orgID, goalID, pinned)
}

// mockTransactionGateway satisfies gateways.TransactionGateway and
// gateways.DashboardGateway.
type mockTransactionGateway struct {
	ListTransactionsFn  func(ctx context.Context, orgID int64) ([]domain.Transaction, error)
	CreateTransactionFn func(ctx context.Context, orgID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	UpdateTransactionFn func(ctx context.Context, orgID, transactionID int64, draft domain.TransactionDraft) (*domain.Transaction, error)
	DeleteTransactionFn func(ctx context.Context, orgID, transactionID int64) error
	DashboardSummaryFn  func(ctx context.Context, orgID int64) (*domain.DashboardSummary, error)
	createCalls         int
}

func (m *mockTransactionGateway) ListTransactions(ctx context.Context, orgID int64) ([]domain.Transaction, error) {
	if m.ListTransactionsFn == nil {
		return nil, nil
	}
	return m.ListTransactionsFn(ctx, orgID)
}

func (m *mockTransactionGateway) CreateTransaction(ctx context.Context, orgID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	m.createCalls++
	if m.CreateTransactionFn == nil {
		return &domain.Transaction{}, nil
	}
	return m.CreateTransactionFn(ctx, orgID, draft)
}

func (m *mockTransactionGateway) UpdateTransaction(ctx context.Context, orgID, transactionID int64, draft domain.TransactionDraft) (*domain.Transaction, error) {
	if m.UpdateTransactionFn == nil {
		return &domain.Transaction{ID: transactionID}, nil
	}
	return m.UpdateTransactionFn(ctx, orgID, transactionID, draft)
}

func (m *mockTransactionGateway) DeleteTransaction(ctx context.Context, orgID, transactionID int64) error {
	if m.DeleteTransactionFn == nil {
		return nil
	}
	return m.DeleteTransactionFn(ctx, orgID, transactionID)
}

func (m *mockTransactionGateway) DashboardSummary(ctx context.Context, orgID int64) (*domain.DashboardSummary, error) {
	return m.DashboardSummaryFn(ctx, orgID)
}

// mockMemberGateway satisfies gateways.MemberGateway.
type mockMemberGateway struct {
	ListMembersFn  func(ctx context.Context, orgID int64) ([]domain.Member, error)
	RemoveMemberFn func(ctx context.Context, orgID, memberID int64) error
	InviteMemberFn func(ctx context.Context, orgID int64, email string, role domain.Role) (string, error)
	UpdateMemberFn func(ctx context.Context, memberID int64, role domain.Role, occupation *string) error
	updateCalls    int
	inviteCalls    int
}

func (m *mockMemberGateway) ListMembers(ctx context.Context, orgID int64) ([]domain.Member, error) {
	return m.ListMembersFn(ctx, orgID)
}

func (m *mockMemberGateway) RemoveMember(ctx context.Context, orgID, memberID int64) error {
	if m.RemoveMemberFn == nil {
		return nil
	}
	return m.RemoveMemberFn(ctx, orgID, memberID)
}

func (m *mockMemberGateway) InviteMember(ctx context.Context, orgID int64, email string, role domain.Role) (string, error) {
	m.inviteCalls++
	if m.InviteMemberFn == nil {
		return "", nil
	}
	return m.InviteMemberFn(ctx, orgID, email, role)
}

func (m *mockMemberGateway) UpdateMember(ctx context.Context, memberID int64, role domain.Role, occupation *string) error {
	m.updateCalls++
	if m.UpdateMemberFn == nil {
		return nil
	}
	return m.UpdateMemberFn(ctx, memberID, role, occupation)
}

// mockOrganizationGateway satisfies gateways.OrganizationGateway.
type mockOrganizationGateway struct {
	GetOrganizationFn     func(ctx context.Context, orgID int64) (*domain.Organization, error)
	CreateOrganizationFn  func(ctx context.Context, draft domain.OrganizationDraft) (*domain.Organization, error)
	ReplaceOrganizationFn func(ctx context.Context, orgID int64, draft domain.OrganizationDraft) (*domain.Organization, error)
	createCalls           int
}

func (m *mockOrganizationGateway) GetOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	return m.GetOrganizationFn(ctx, orgID)
}

func (m *mockOrganizationGateway) CreateOrganization(ctx context.Context, draft domain.OrganizationDraft) (*domain.Organization, error) {
	m.createCalls++
	if m.CreateOrganizationFn == nil {
		return &domain.Organization{ID: 1}, nil
	}
	return m.CreateOrganizationFn(ctx, draft)
}

func (m *mockOrganizationGateway) ReplaceOrganization(ctx context.Context, orgID int64, draft domain.OrganizationDraft) (*domain.Organization, error) {
	if m.ReplaceOrganizationFn == nil {
		return &domain.Organization{ID: orgID}, nil
	}
	return m.ReplaceOrganizationFn(ctx, orgID, draft)
}

// mockUserGateway satisfies gateways.UserGateway.
type mockUserGateway struct {
	UpdateProfileFn    func(ctx context.Context, userID int64, name, email, phoneNumber string) error
	AnswerInvitationFn func(ctx context.Context, userID int64) error
	answerCalls        int
}

func (m *mockUserGateway) UpdateProfile(ctx context.Context, userID int64, name, email, phoneNumber string) error {
	if m.UpdateProfileFn == nil {
		return nil
	}
	return m.UpdateProfileFn(ctx, userID, name, email, phoneNumber)
}

func (m *mockUserGateway) AnswerInvitation(ctx context.Context, userID int64) error {
	m.answerCalls++
	if m.AnswerInvitationFn == nil {
		return nil
	}
	return m.AnswerInvitationFn(ctx, userID)
}

// countingSubscriber subscribes to key and counts refetches.
func countingSubscriber(registry *cache.Registry, key cache.Key) *int {
	count := new(int)
	registry.Subscribe(key, func(ctx context.Context) error {
		*count++
		return nil
	})
	return count
}
