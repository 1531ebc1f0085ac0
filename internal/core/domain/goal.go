package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus is the lifecycle state of a goal.
type GoalStatus string

const (
	GoalInProgress GoalStatus = "in_progress"
	GoalPaused     GoalStatus = "paused"
	GoalCancelled  GoalStatus = "cancelled"
	GoalFinished   GoalStatus = "finished"
)

// AllGoalStatuses returns every lifecycle state.
func AllGoalStatuses() []GoalStatus {
	return []GoalStatus{GoalInProgress, GoalPaused, GoalCancelled, GoalFinished}
}

// Known reports whether s is a defined lifecycle state.
func (s GoalStatus) Known() bool {
	switch s {
	case GoalInProgress, GoalPaused, GoalCancelled, GoalFinished:
		return true
	}
	return false
}

// TransitionTargets returns the statuses offered by the general status
// selector: every status except the current one, so a no-op transition is
// never selectable. The underlying update operation itself accepts any
// status.
func (s GoalStatus) TransitionTargets() []GoalStatus {
	targets := make([]GoalStatus, 0, 3)
	for _, t := range AllGoalStatuses() {
		if t != s {
			targets = append(targets, t)
		}
	}
	return targets
}

// GoalType distinguishes company-wide goals from goals assigned to a single
// employee.
type GoalType string

const (
	CompanyGoal  GoalType = "company_goal"
	EmployeeGoal GoalType = "employee_goal"
)

// Goal is a tracked objective with a lifecycle status, optionally pinned for
// highlight. Goals are never hard-deleted; they only move between statuses.
type Goal struct {
	ID             int64
	Title          string
	Description    string
	DueDate        time.Time
	Status         GoalStatus
	OrganizationID int64
	TargetAmount   *decimal.Decimal
	GoalType       GoalType
	UserID         *int64 // nil for goals not tied to a single employee
	Pinned         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// GoalDraft carries the caller-editable goal fields for create and
// full-update operations.
type GoalDraft struct {
	Title        string
	Description  string
	DueDate      time.Time
	Status       GoalStatus
	TargetAmount *decimal.Decimal
	GoalType     GoalType
	UserID       *int64
	Pinned       bool
}

// CoerceOwnership applies the ownership rule for goal type and assignee:
// a non-admin always writes an employee goal assigned to themselves,
// whatever values they submitted. Admins keep their choices; an admin draft
// without a type defaults to employee_goal.
func (d GoalDraft) CoerceOwnership(session SessionInfo) GoalDraft {
	if session.Role.IsAdmin() {
		if d.GoalType == "" {
			d.GoalType = EmployeeGoal
		}
		return d
	}
	d.GoalType = EmployeeGoal
	actorID := session.UserID
	d.UserID = &actorID
	return d
}

// GoalAffordances lists the actions the default flow offers for a goal in
// its current status.
type GoalAffordances struct {
	ViewDetails bool
	Edit        bool
	TogglePin   bool
	Resume      bool // the single paused -> in_progress shortcut
}

// Affordances returns the actions offered for the goal. Finished goals keep
// only the details view; paused goals get exactly one quick transition.
func (g Goal) Affordances() GoalAffordances {
	if g.Status == GoalFinished {
		return GoalAffordances{ViewDetails: true}
	}
	return GoalAffordances{
		ViewDetails: true,
		Edit:        true,
		TogglePin:   true,
		Resume:      g.Status == GoalPaused,
	}
}

// SelectHighlighted picks the goal to feature from the viewer's goal list:
// the first pinned goal in list order, or the most recently created goal
// when none is pinned. The pin tie-break is deliberately "first in list
// order" since pin state carries no timestamp; the data layer tolerates more
// than one pinned goal. ok is false for an empty list, and callers render a
// creation prompt instead of the highlight.
func SelectHighlighted(goals []Goal) (Goal, bool) {
	for _, g := range goals {
		if g.Pinned {
			return g, true
		}
	}
	var newest Goal
	found := false
	for _, g := range goals {
		if !found || g.CreatedAt.After(newest.CreatedAt) {
			newest = g
			found = true
		}
	}
	return newest, found
}
