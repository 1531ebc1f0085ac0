package services

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// GoalSvcFacade enforces the goal lifecycle rules on top of the goal
// resource: ownership coercion, status transitions, pin toggling and the
// cache refresh after each successful mutation.
type GoalSvcFacade interface {
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, goalID int64) (*domain.Goal, error)
	// Highlighted picks the goal to feature: first pinned in list order,
	// else the most recently created. ok is false when there are no goals.
	Highlighted(ctx context.Context) (domain.Goal, bool, error)
	CreateGoal(ctx context.Context, payload dto.GoalPayload) (*domain.Goal, error)
	UpdateGoal(ctx context.Context, goalID int64, payload dto.GoalPayload) (*domain.Goal, error)
	ChangeStatus(ctx context.Context, goalID int64, status domain.GoalStatus) error
	SetPinned(ctx context.Context, goalID int64, pinned bool) error
}
