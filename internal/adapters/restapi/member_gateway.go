package restapi

import (
	"context"
	"fmt"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// MemberGateway implements the membership port: listing, removal,
// invitation and the admin-side member update.
type MemberGateway struct {
	client *Client
}

// NewMemberGateway builds the member gateway on the shared client.
func NewMemberGateway(client *Client) *MemberGateway {
	return &MemberGateway{client: client}
}

var _ gateways.MemberGateway = (*MemberGateway)(nil)

func (g *MemberGateway) ListMembers(ctx context.Context, orgID int64) ([]domain.Member, error) {
	var body []dto.MemberResponse
	if err := g.client.get(ctx, fmt.Sprintf("/organizations/%d/members", orgID), &body); err != nil {
		return nil, err
	}
	return dto.ToDomainMembers(body), nil
}

func (g *MemberGateway) RemoveMember(ctx context.Context, orgID, memberID int64) error {
	return g.client.delete(ctx, fmt.Sprintf("/organizations/%d/members/%d", orgID, memberID))
}

func (g *MemberGateway) InviteMember(ctx context.Context, orgID int64, email string, role domain.Role) (string, error) {
	req := dto.InviteMemberRequest{Email: email, Role: role}
	var body dto.MessageResponse
	if err := g.client.post(ctx, fmt.Sprintf("/organizations/%d/invite", orgID), req, &body); err != nil {
		return "", err
	}
	return body.Message, nil
}

// UpdateMember goes through the users resource: the member row is a user,
// and the admin patch carries role and occupation under the "user" key.
func (g *MemberGateway) UpdateMember(ctx context.Context, memberID int64, role domain.Role, occupation *string) error {
	envelope := dto.MemberUpdateEnvelope{User: dto.MemberUpdatePayload{Role: role, Occupation: occupation}}
	return g.client.patch(ctx, fmt.Sprintf("/users/%d", memberID), envelope, nil)
}
