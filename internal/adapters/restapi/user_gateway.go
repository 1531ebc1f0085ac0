package restapi

import (
	"context"
	"fmt"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// UserGateway implements the identity and user resource ports.
type UserGateway struct {
	client *Client
}

// NewUserGateway builds the user gateway on the shared client.
func NewUserGateway(client *Client) *UserGateway {
	return &UserGateway{client: client}
}

var (
	_ gateways.IdentityGateway = (*UserGateway)(nil)
	_ gateways.UserGateway     = (*UserGateway)(nil)
)

func (g *UserGateway) Me(ctx context.Context) (*domain.User, error) {
	var body dto.MeResponse
	if err := g.client.get(ctx, "/me", &body); err != nil {
		return nil, err
	}
	user := body.ToDomain()
	return &user, nil
}

func (g *UserGateway) UpdateProfile(ctx context.Context, userID int64, name, email, phoneNumber string) error {
	envelope := dto.ProfileUpdateEnvelope{User: dto.ProfileUpdatePayload{
		Name:        name,
		Email:       email,
		PhoneNumber: phoneNumber,
	}}
	return g.client.patch(ctx, fmt.Sprintf("/users/%d", userID), envelope, nil)
}

// AnswerInvitation hits the invitation toggle. The API derives accept vs
// revoke from the invitation's current state, so the call carries no body.
func (g *UserGateway) AnswerInvitation(ctx context.Context, userID int64) error {
	return g.client.patch(ctx, fmt.Sprintf("/users/%d/accept_invitation", userID), nil, nil)
}
