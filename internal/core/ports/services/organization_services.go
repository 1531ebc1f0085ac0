package services

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

// OrganizationSvcFacade covers the organization resource itself.
type OrganizationSvcFacade interface {
	GetOrganization(ctx context.Context) (*domain.Organization, error)
	// CreateOrganization registers a new tenant for a user who has none yet.
	CreateOrganization(ctx context.Context, payload dto.OrganizationPayload) (*domain.Organization, error)
	// UpdateOrganization replaces the organization's editable fields.
	// Requires the manage capability.
	UpdateOrganization(ctx context.Context, payload dto.OrganizationPayload) (*domain.Organization, error)
}
