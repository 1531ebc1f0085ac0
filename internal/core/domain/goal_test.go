package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

func TestGoalStatus_Known(t *testing.T) {
	for _, s := range domain.AllGoalStatuses() {
		assert.True(t, s.Known(), string(s))
	}
	assert.False(t, domain.GoalStatus("archived").Known())
	assert.False(t, domain.GoalStatus("").Known())
}

func TestGoalStatus_TransitionTargets(t *testing.T) {
	for _, s := range domain.AllGoalStatuses() {
		targets := s.TransitionTargets()
		assert.Len(t, targets, 3, string(s))
		assert.NotContains(t, targets, s, "current status must never be offered")
	}
}

func TestGoalDraft_CoerceOwnership(t *testing.T) {
	otherUser := int64(99)
	tests := []struct {
		name       string
		draft      domain.GoalDraft
		session    domain.SessionInfo
		wantType   domain.GoalType
		wantUserID *int64
	}{
		{
			name:       "admin keeps submitted type and assignee",
			draft:      domain.GoalDraft{GoalType: domain.CompanyGoal, UserID: &otherUser},
			session:    domain.SessionInfo{UserID: 1, Role: domain.RoleAdmin},
			wantType:   domain.CompanyGoal,
			wantUserID: &otherUser,
		},
		{
			name:       "admin draft without a type defaults to employee goal",
			draft:      domain.GoalDraft{},
			session:    domain.SessionInfo{UserID: 1, Role: domain.RoleAdmin},
			wantType:   domain.EmployeeGoal,
			wantUserID: nil,
		},
		{
			name:       "manager is forced onto an employee goal for themselves",
			draft:      domain.GoalDraft{GoalType: domain.CompanyGoal, UserID: &otherUser},
			session:    domain.SessionInfo{UserID: 7, Role: domain.RoleManager},
			wantType:   domain.EmployeeGoal,
			wantUserID: int64Ptr(7),
		},
		{
			name:       "employee is forced onto an employee goal for themselves",
			draft:      domain.GoalDraft{GoalType: domain.CompanyGoal, UserID: &otherUser},
			session:    domain.SessionInfo{UserID: 12, Role: domain.RoleEmployee},
			wantType:   domain.EmployeeGoal,
			wantUserID: int64Ptr(12),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.draft.CoerceOwnership(tt.session)
			assert.Equal(t, tt.wantType, got.GoalType)
			if tt.wantUserID == nil {
				assert.Nil(t, got.UserID)
			} else {
				assert.NotNil(t, got.UserID)
				assert.Equal(t, *tt.wantUserID, *got.UserID)
			}
		})
	}
}

func TestGoal_Affordances(t *testing.T) {
	tests := []struct {
		status domain.GoalStatus
		want   domain.GoalAffordances
	}{
		{domain.GoalInProgress, domain.GoalAffordances{ViewDetails: true, Edit: true, TogglePin: true}},
		{domain.GoalPaused, domain.GoalAffordances{ViewDetails: true, Edit: true, TogglePin: true, Resume: true}},
		{domain.GoalCancelled, domain.GoalAffordances{ViewDetails: true, Edit: true, TogglePin: true}},
		{domain.GoalFinished, domain.GoalAffordances{ViewDetails: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Goal{Status: tt.status}.Affordances())
		})
	}
}

func TestSelectHighlighted(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("empty list selects nothing", func(t *testing.T) {
		_, ok := domain.SelectHighlighted(nil)
		assert.False(t, ok)
	})

	t.Run("first pinned goal wins regardless of age", func(t *testing.T) {
		goals := []domain.Goal{
			{ID: 1, CreatedAt: base.AddDate(0, 0, 5)},
			{ID: 2, Pinned: true, CreatedAt: base},
			{ID: 3, Pinned: true, CreatedAt: base.AddDate(0, 0, 9)},
		}
		got, ok := domain.SelectHighlighted(goals)
		assert.True(t, ok)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("no pin falls back to the most recently created", func(t *testing.T) {
		goals := []domain.Goal{
			{ID: 1, CreatedAt: base},
			{ID: 2, CreatedAt: base.AddDate(0, 0, 9)},
			{ID: 3, CreatedAt: base.AddDate(0, 0, 5)},
		}
		got, ok := domain.SelectHighlighted(goals)
		assert.True(t, ok)
		assert.Equal(t, int64(2), got.ID)
	})

	t.Run("finished pinned goal is still highlighted", func(t *testing.T) {
		goals := []domain.Goal{
			{ID: 1, CreatedAt: base.AddDate(0, 0, 1)},
			{ID: 2, Pinned: true, Status: domain.GoalFinished, CreatedAt: base},
		}
		got, ok := domain.SelectHighlighted(goals)
		assert.True(t, ok)
		assert.Equal(t, int64(2), got.ID)
	})
}

func int64Ptr(v int64) *int64 { return &v }
