package services

import (
	"context"
	"log/slog"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// userService implements the UserSvcFacade interface. All operations act on
// the session user; every success re-resolves the identity snapshot so the
// session context and "me" subscribers stay consistent.
type userService struct {
	BaseService
	users gateways.UserGateway
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(users gateways.UserGateway, session portssvc.SessionSvcFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Session: session},
		users:       users,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// UpdateProfile patches the session user's own profile fields.
func (s *userService) UpdateProfile(ctx context.Context, payload dto.ProfileUpdatePayload) error {
	info, err := s.RequireSession(ctx)
	if err != nil {
		return err
	}
	if err := validate.Struct(payload); err != nil {
		return apperrors.Validation("invalid profile data", err)
	}

	if err := s.users.UpdateProfile(ctx, info.UserID, payload.Name, payload.Email, payload.PhoneNumber); err != nil {
		s.LogError(ctx, err, "Failed to update profile", slog.Int64("user_id", info.UserID))
		return err
	}

	if _, err := s.Session.Refresh(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh session after profile update")
	}
	s.LogInfo(ctx, "Profile updated", slog.Int64("user_id", info.UserID))
	return nil
}

// AcceptInvitation answers the pending invitation positively.
func (s *userService) AcceptInvitation(ctx context.Context) error {
	return s.answerInvitation(ctx, "accept")
}

// RevokeInvitation declines the pending invitation. The API exposes one
// endpoint for both answers and derives the outcome from the invitation's
// current state.
func (s *userService) RevokeInvitation(ctx context.Context) error {
	return s.answerInvitation(ctx, "revoke")
}

func (s *userService) answerInvitation(ctx context.Context, answer string) error {
	if _, err := s.RequireSession(ctx); err != nil {
		return err
	}
	user, ok := s.Session.CurrentUser()
	if !ok || !user.PendingInvitation() {
		return apperrors.Validation("no pending invitation to answer", apperrors.ErrValidation)
	}

	if err := s.users.AnswerInvitation(ctx, user.ID); err != nil {
		s.LogError(ctx, err, "Failed to answer invitation",
			slog.Int64("user_id", user.ID),
			slog.String("answer", answer))
		return err
	}

	if _, err := s.Session.Refresh(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh session after invitation answer")
	}
	s.LogInfo(ctx, "Invitation answered",
		slog.Int64("user_id", user.ID),
		slog.String("answer", answer))
	return nil
}
