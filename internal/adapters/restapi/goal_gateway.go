package restapi

import (
	"context"
	"fmt"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// GoalGateway implements the goal resource port.
type GoalGateway struct {
	client *Client
}

// NewGoalGateway builds the goal gateway on the shared client.
func NewGoalGateway(client *Client) *GoalGateway {
	return &GoalGateway{client: client}
}

var _ gateways.GoalGateway = (*GoalGateway)(nil)

func (g *GoalGateway) ListGoals(ctx context.Context, orgID int64) ([]domain.Goal, error) {
	var body []dto.GoalResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d/goals", orgID), &body); err != nil {
		return nil, err
	}
	return dto.ToDomainGoals(body), nil
}

func (g *GoalGateway) GetGoal(ctx context.Context, orgID, goalID int64) (*domain.Goal, error) {
	var body dto.GoalResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d/goals/%d", orgID, goalID), &body); err != nil {
		return nil, err
	}
	goal := body.ToDomain()
	return &goal, nil
}

func (g *GoalGateway) CreateGoal(ctx context.Context, orgID int64, draft domain.GoalDraft) (*domain.Goal, error) {
	envelope := dto.GoalEnvelope{Goal: dto.FromGoalDraft(draft)}
	var body dto.GoalResponse
	if err := g.client.post(ctx, fmt.Sprintf("/organizations/%d/goals", orgID), envelope, &body); err != nil {
		return nil, err
	}
	goal := body.ToDomain()
	return &goal, nil
}

func (g *GoalGateway) ReplaceGoal(ctx context.Context, orgID, goalID int64, draft domain.GoalDraft) (*domain.Goal, error) {
	envelope := dto.GoalEnvelope{Goal: dto.FromGoalDraft(draft)}
	var body dto.GoalResponse
	if err := g.client.put(ctx, fmt.Sprintf("/organizations/%d/goals/%d", orgID, goalID), envelope, &body); err != nil {
		return nil, err
	}
	goal := body.ToDomain()
	return &goal, nil
}

func (g *GoalGateway) PatchGoalStatus(ctx context.Context, orgID, goalID int64, status domain.GoalStatus) error {
	var patch dto.GoalStatusPatch
	patch.Goal.Status = status
	return g.client.patch(ctx, fmt.Sprintf("/organizations/%d/goals/%d", orgID, goalID), patch, nil)
}

func (g *GoalGateway) PatchGoalPinned(ctx context.Context, orgID, goalID int64, pinned bool) error {
	var patch dto.GoalPinnedPatch
	patch.Goal.Pinned = pinned
	return g.client.patch(ctx, fmt.Sprintf("/organizations/%d/goals/%d", orgID, goalID), patch, nil)
}
