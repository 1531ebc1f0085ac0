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

// organizationService implements the OrganizationSvcFacade interface.
type organizationService struct {
	BaseService
	organizations gateways.OrganizationGateway
	registry      *cache.Registry
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(organizations gateways.OrganizationGateway, session portssvc.SessionSvcFacade, registry *cache.Registry) portssvc.OrganizationSvcFacade {
	return &organizationService{
		BaseService:   BaseService{Session: session},
		organizations: organizations,
		registry:      registry,
	}
}

var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// GetOrganization retrieves the session user's organization.
func (s *organizationService) GetOrganization(ctx context.Context) (*domain.Organization, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.organizations.GetOrganization(ctx, info.OrganizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to get organization",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}
	return org, nil
}

// CreateOrganization registers a new tenant. Only a user without an
// organization may create one; success re-resolves the identity since the
// snapshot's organization_id changes server-side.
func (s *organizationService) CreateOrganization(ctx context.Context, payload dto.OrganizationPayload) (*domain.Organization, error) {
	info, err := s.RequireSession(ctx)
	if err != nil {
		return nil, err
	}
	if info.InOrganization() {
		return nil, apperrors.Validation("user already belongs to an organization", apperrors.ErrValidation)
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.organizations.CreateOrganization(ctx, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to create organization")
		return nil, err
	}

	if _, err := s.Session.Refresh(ctx); err != nil {
		s.LogError(ctx, err, "Failed to refresh session after organization creation")
	}
	s.LogInfo(ctx, "Organization created", slog.Int64("organization_id", created.ID))
	return created, nil
}

// UpdateOrganization replaces the organization's editable fields. Manage
// capability required.
func (s *organizationService) UpdateOrganization(ctx context.Context, payload dto.OrganizationPayload) (*domain.Organization, error) {
	info, err := s.RequireManage(ctx)
	if err != nil {
		return nil, err
	}
	draft, err := s.draftFromPayload(payload)
	if err != nil {
		return nil, err
	}

	updated, err := s.organizations.ReplaceOrganization(ctx, info.OrganizationID, draft)
	if err != nil {
		s.LogError(ctx, err, "Failed to update organization",
			slog.Int64("organization_id", info.OrganizationID))
		return nil, err
	}

	s.registry.Invalidate(ctx, cache.OrganizationKey(info.OrganizationID))
	s.LogInfo(ctx, "Organization updated", slog.Int64("organization_id", info.OrganizationID))
	return updated, nil
}

func (s *organizationService) draftFromPayload(payload dto.OrganizationPayload) (domain.OrganizationDraft, error) {
	if err := validate.Struct(payload); err != nil {
		return domain.OrganizationDraft{}, apperrors.Validation("invalid organization data", err)
	}
	draft, err := payload.ToDraft()
	if err != nil {
		return domain.OrganizationDraft{}, apperrors.Validation("invalid founding date", err)
	}
	return draft, nil
}
