package services

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// UserSvcFacade covers self-service user operations: profile updates and the
// invitation answer toggle.
type UserSvcFacade interface {
	UpdateProfile(ctx context.Context, payload dto.ProfileUpdatePayload) error
	// AcceptInvitation answers the pending invitation positively and
	// refreshes the identity snapshot.
	AcceptInvitation(ctx context.Context) error
	// RevokeInvitation declines the pending invitation; the API uses the
	// same endpoint for both answers.
	RevokeInvitation(ctx context.Context) error
}
