package restapi

import (
	"context"
	"fmt"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// OrganizationGateway implements the organization resource port.
type OrganizationGateway struct {
	client *Client
}

// NewOrganizationGateway builds the organization gateway on the shared client.
func NewOrganizationGateway(client *Client) *OrganizationGateway {
	return &OrganizationGateway{client: client}
}

var _ gateways.OrganizationGateway = (*OrganizationGateway)(nil)

func (g *OrganizationGateway) GetOrganization(ctx context.Context, orgID int64) (*domain.Organization, error) {
	var body dto.OrganizationResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d", orgID), &body); err != nil {
		return nil, err
	}
	org := body.ToDomain()
	return &org, nil
}

func (g *OrganizationGateway) CreateOrganization(ctx context.Context, draft domain.OrganizationDraft) (*domain.Organization, error) {
	var body dto.OrganizationResponse
	if err := g.client.post(ctx, "/organizations", dto.FromOrganizationDraft(draft), &body); err != nil {
		return nil, err
	}
	org := body.ToDomain()
	return &org, nil
}

func (g *OrganizationGateway) ReplaceOrganization(ctx context.Context, orgID int64, draft domain.OrganizationDraft) (*domain.Organization, error) {
	var body dto.OrganizationResponse
	if err := g.client.put(ctx, fmt.Sprintf("/organizations/%d", orgID), dto.FromOrganizationDraft(draft), &body); err != nil {
		return nil, err
	}
	org := body.ToDomain()
	return &org, nil
}
