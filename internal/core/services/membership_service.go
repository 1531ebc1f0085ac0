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

// membershipService implements the MembershipSvcFacade interface.
type membershipService struct {
	BaseService
	members  gateways.MemberGateway
	registry *cache.Registry
}

// NewMembershipService creates a new membership service with the provided dependencies
func NewMembershipService(members gateways.MemberGateway, session portssvc.SessionSvcFacade, registry *cache.Registry) portssvc.MembershipSvcFacade {
	return &membershipService{
		BaseService: BaseService{Session: session},
		members:     members,
		registry:    registry,
	}
}

var _ portssvc.MembershipSvcFacade = (*membershipService)(nil)

// ListMembers retrieves the member directory, most privileged role first.
func (s *membershipService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	members, err := s.members.ListMembers(ctx, info.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}
	domain.SortMembers(members)
	return members, nil
}

// ChangeRole reassigns a member's role (and optionally occupation). Admins
// only; a user may never change their own role, and the target role must
// come from the acting admin's assignable set, which excludes the admin's
// own role.
func (s *membershipService) ChangeRole(ctx context.Context, memberID int64, role domain.Role, occupation *string) error {
	info, err := s.RequireAdmin(ctx)
	if err != nil {
		return err
	}
	if memberID == info.UserID {
		return apperrors.Validation("users cannot change their own role", apperrors.ErrForbidden)
	}
	if !role.Known() {
		return apperrors.Validation("unknown role", apperrors.ErrValidation)
	}
	if role == info.Role {
		return apperrors.Validation("role is not assignable by the acting user", apperrors.ErrForbidden)
	}

	if err := s.members.UpdateMember(ctx, memberID, role, occupation); err != nil {
		s.LogError(ctx, err, "Failed to change member role",
			slog.Int64("member_id", memberID),
			slog.String("role", string(role)))
		return err
	}

	s.registry.Invalidate(ctx, cache.MembersKey(info.OrganizationID))
	s.LogInfo(ctx, "Member role changed",
		slog.Int64("member_id", memberID),
		slog.String("role", string(role)))
	return nil
}

// RemoveMember removes a member from the organization. Admins only; members
// cannot remove themselves.
func (s *membershipService) RemoveMember(ctx context.Context, memberID int64) error {
	info, err := s.RequireAdmin(ctx)
	if err != nil {
		return err
	}
	if memberID == info.UserID {
		return apperrors.Validation("users cannot remove themselves", apperrors.ErrForbidden)
	}

	if err := s.members.RemoveMember(ctx, info.OrganizationID, memberID); err != nil {
		s.LogError(ctx, err, "Failed to remove member", slog.Int64("member_id", memberID))
		return err
	}

	s.registry.Invalidate(ctx, cache.MembersKey(info.OrganizationID))
	s.LogInfo(ctx, "Member removed", slog.Int64("member_id", memberID))
	return nil
}

// InviteMember sends an invitation email. Admins only; an empty role
// defaults to EMPLOYEE, matching the invitation dialog. The returned message
// comes from the server and is displayed as-is.
func (s *membershipService) InviteMember(ctx context.Context, email string, role domain.Role) (string, error) {
	info, err := s.RequireAdmin(ctx)
	if err != nil {
		return "", err
	}
	if role == "" {
		role = domain.RoleEmployee
	}
	req := dto.InviteMemberRequest{Email: email, Role: role}
	if err := validate.Struct(req); err != nil {
		return "", apperrors.Validation("invalid invitation data", err)
	}

	message, err := s.members.InviteMember(ctx, info.OrganizationID, email, role)
	if err != nil {
		s.LogError(ctx, err, "Failed to invite member",
			slog.String("role", string(role)))
		return "", err
	}

	s.LogInfo(ctx, "Member invited", slog.String("role", string(role)))
	return message, nil
}
