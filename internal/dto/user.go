package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// --- User DTOs ---

// AddressResponse is the postal address nested in the identity snapshot.
type AddressResponse struct {
	ID           int64   `json:"id"`
	Street       string  `json:"street"`
	Number       string  `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood string  `json:"neighborhood"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	ZipCode      string  `json:"zip_code"`
}

// MeResponse is the `/me` identity snapshot body.
type MeResponse struct {
	ID                    int64                   `json:"id"`
	Name                  string                  `json:"name"`
	Email                 string                  `json:"email"`
	Role                  domain.Role             `json:"role"`
	OrganizationID        *int64                  `json:"organization_id"`
	InvitedOrganizationID *int64                  `json:"invited_organization_id"`
	InvitationStatus      domain.InvitationStatus `json:"invitation_status"`
	Occupation            *string                 `json:"occupation"`
	Salary                *decimal.Decimal        `json:"salary"`
	PhoneNumber           *string                 `json:"phone_number"`
	ManagerID             *int64                  `json:"manager_id"`
	AvatarURL             string                  `json:"avatar_url"`
	PredefinedAvatarURL   *string                 `json:"predefined_avatar_url"`
	Address               *AddressResponse        `json:"address"`
	CreatedAt             time.Time               `json:"created_at"`
	UpdatedAt             time.Time               `json:"updated_at"`
}

// ToDomain converts the identity snapshot into the domain model.
func (r MeResponse) ToDomain() domain.User {
	user := domain.User{
		ID:                    r.ID,
		Name:                  r.Name,
		Email:                 r.Email,
		Role:                  r.Role,
		OrganizationID:        r.OrganizationID,
		InvitedOrganizationID: r.InvitedOrganizationID,
		InvitationStatus:      r.InvitationStatus,
		Occupation:            r.Occupation,
		Salary:                r.Salary,
		PhoneNumber:           r.PhoneNumber,
		ManagerID:             r.ManagerID,
		AvatarURL:             r.AvatarURL,
		PredefinedAvatarURL:   r.PredefinedAvatarURL,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
	if r.Address != nil {
		user.Address = &domain.Address{
			ID:           r.Address.ID,
			Street:       r.Address.Street,
			Number:       r.Address.Number,
			Complement:   r.Address.Complement,
			Neighborhood: r.Address.Neighborhood,
			City:         r.Address.City,
			State:        r.Address.State,
			ZipCode:      r.Address.ZipCode,
		}
	}
	return user
}

// ProfileUpdatePayload is the self-service profile update, wrapped under the
// "user" key on the wire.
type ProfileUpdatePayload struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phone_number"`
}

// ProfileUpdateEnvelope wraps a profile update for the users endpoint.
type ProfileUpdateEnvelope struct {
	User ProfileUpdatePayload `json:"user"`
}
