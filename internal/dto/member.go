package dto

import (
	"time"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// --- Member DTOs ---

// MemberResponse is one row of the organization member listing.
type MemberResponse struct {
	ID                  int64       `json:"id"`
	Name                string      `json:"name"`
	Email               string      `json:"email"`
	Role                domain.Role `json:"role"`
	Occupation          *string     `json:"occupation"`
	AvatarURL           string      `json:"avatar_url"`
	PredefinedAvatarURL *string     `json:"predefined_avatar_url"`
	InvitationStatus    *string     `json:"invitation_status"`
	OrganizationID      int64       `json:"organization_id"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// ToDomain converts the wire member into the domain model.
func (r MemberResponse) ToDomain() domain.Member {
	return domain.Member{
		ID:                  r.ID,
		Name:                r.Name,
		Email:               r.Email,
		Role:                r.Role,
		Occupation:          r.Occupation,
		AvatarURL:           r.AvatarURL,
		PredefinedAvatarURL: r.PredefinedAvatarURL,
		InvitationStatus:    r.InvitationStatus,
		OrganizationID:      r.OrganizationID,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

// ToDomainMembers converts a member listing.
func ToDomainMembers(rs []MemberResponse) []domain.Member {
	members := make([]domain.Member, len(rs))
	for i, r := range rs {
		members[i] = r.ToDomain()
	}
	return members
}

// MemberUpdatePayload is the admin-side member update: role and occupation,
// wrapped under the "user" key on the wire.
type MemberUpdatePayload struct {
	Role       domain.Role `json:"role" validate:"required,oneof=ADMIN MANAGER EMPLOYEE"`
	Occupation *string     `json:"occupation,omitempty"`
}

// MemberUpdateEnvelope wraps a member update for the users endpoint.
type MemberUpdateEnvelope struct {
	User MemberUpdatePayload `json:"user"`
}
