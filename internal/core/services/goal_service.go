package services

import (
	"context"
	"log/slog"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// goalService implements the GoalSvcFacade interface. Displayed goal state
// always reflects the last successfully fetched server state: mutations are
// never applied optimistically, and a failed mutation touches nothing.
type goalService struct {
	BaseService
	goals    gateways.GoalGateway
	registry *cache.Registry
}

// NewGoalService creates a new goal service with the provided dependencies
func NewGoalService(goals gateways.GoalGateway, session portssvc.SessionSvcFacade, registry *cache.Registry) portssvc.GoalSvcFacade {
	return &goalService{
		BaseService: BaseService{Session: session},
		goals:       goals,
		registry:    registry,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// ListGoals retrieves the goals visible to the session user.
func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.ListGoals(ctx, info.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goals",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return goals, nil
}

// GetGoal retrieves a single goal by its ID.
func (s *goalService) GetGoal(ctx context.Context, goalID int64) (*domain.Goal, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	goal, err := s.goals.GetGoal(ctx, info.OrganizationID, goalID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get goal", slog.Int64("goal_id", goalID))
		return nil, err
	}
	return goal, nil
}

// Highlighted picks the goal to feature from the viewer's list.
func (s *goalService) Highlighted(ctx context.Context) (domain.Goal, bool, error) {
	goals, err := s.ListGoals(ctx)
	if err != nil {
		return domain.Goal{}, false, err
	}
	goal, ok := domain.SelectHighlighted(goals)
	return goal, ok, nil
}

// CreateGoal validates the payload, applies the ownership rule and creates
// the goal. Success refreshes the active goals listing.
func (s *goalService) CreateGoal(ctx context.Context, payload dto.GoalPayload) (*domain.Goal, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}
	draft = draft.CoerceOwnership(info)

	created, err := s.goals.CreateGoal(ctx, info.OrganizationID, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to create goal",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}

	s.registry.Invalidate(ctx, cache.GoalsKey())
	s.LogInfo(ctx, "Goal created",
		slog.Int64("goal_id", created.ID),
		slog.String("goal_type", string(created.GoalType)))
	return created, nil
}

// UpdateGoal validates the payload, applies the ownership rule and replaces
// the goal. Success refreshes the goals listing and the single-goal view.
func (s *goalService) UpdateGoal(ctx context.Context, goalID int64, payload dto.GoalPayload) (*domain.Goal, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}
	draft = draft.CoerceOwnership(info)

	updated, err := s.goals.ReplaceGoal(ctx, info.OrganizationID, goalID, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to update goal", slog.Int64("goal_id", goalID))
		return nil, err
	}

	s.registry.Invalidate(ctx, cache.GoalsKey(), cache.GoalKey(goalID))
	s.LogInfo(ctx, "Goal updated", slog.Int64("goal_id", goalID))
	return updated, nil
}

// ChangeStatus writes a new lifecycle status. Any known status may be
// written; the affordance filtering happens at display time.
func (s *goalService) ChangeStatus(ctx context.Context, goalID int64, status domain.GoalStatus) error {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return err
	}
	if !status.Known() {
		return apperrors.Validation("invalid goal status", apperrors.ErrValidation)
	}

	if err := s.goals.PatchGoalStatus(ctx, info.OrganizationID, goalID, status); err != nil {
		s.LogError(ctx, err, "Failed to change goal status",
			slog.Int64("goal_id", goalID),
			slog.String("status", string(status)))
		return err
	}

	s.registry.Invalidate(ctx, cache.GoalsKey())
	s.LogInfo(ctx, "Goal status changed",
		slog.Int64("goal_id", goalID),
		slog.String("status", string(status)))
	return nil
}

// SetPinned toggles the pin flag on one goal. Siblings are deliberately left
// alone; the selector tolerates any number of pinned goals on read.
func (s *goalService) SetPinned(ctx context.Context, goalID int64, pinned bool) error {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return err
	}

	if err := s.goals.PatchGoalPinned(ctx, info.OrganizationID, goalID, pinned); err != nil {
		s.LogError(ctx, err, "Failed to change goal pin",
			slog.Int64("goal_id", goalID),
			slog.Bool("pinned", pinned))
		return err
	}

	s.registry.Invalidate(ctx, cache.GoalsKey())
	s.LogInfo(ctx, "Goal pin changed",
		slog.Int64("goal_id", goalID),
		slog.Bool("pinned", pinned))
	return nil
}

func (s *goalService) draftFromPayload(payload dto.GoalPayload) (domain.GoalDraft, error) {
	if err := validate.Struct(payload); err != nil {
		return domain.GoalDraft{}, apperrors.Validation("invalid goal data", err)
	}
	draft, err := payload.ToDraft()
	if err != nil {
		return domain.GoalDraft{}, apperrors.Validation("invalid goal due date", err)
	}
	return draft, nil
}
