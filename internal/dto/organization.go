package dto

import (
	"time"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// --- Organization DTOs ---

// OrganizationPayload defines the caller-editable organization fields. The
// organization endpoints take these fields flat, without a wrapping key.
type OrganizationPayload struct {
	CompanyName    string `json:"company_name" validate:"required"`
	DocumentNumber string `json:"document_number,omitempty"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone"`
	WebsiteURL     string `json:"website_url"`
	FoundingDate   string `json:"founding_date" validate:"omitempty,datetime=2006-01-02"`
	Description    string `json:"description"`
}

// ToDraft converts the validated payload into a domain draft.
func (p OrganizationPayload) ToDraft() (domain.OrganizationDraft, error) {
	draft := domain.OrganizationDraft{
		CompanyName:    p.CompanyName,
		DocumentNumber: p.DocumentNumber,
		Email:          p.Email,
		Phone:          p.Phone,
		WebsiteURL:     p.WebsiteURL,
		Description:    p.Description,
	}
	if p.FoundingDate != "" {
		foundingDate, err := ParseWireDate(p.FoundingDate)
		if err != nil {
			return domain.OrganizationDraft{}, err
		}
		draft.FoundingDate = foundingDate
	}
	return draft, nil
}

// FromOrganizationDraft converts a domain draft into the wire payload.
func FromOrganizationDraft(d domain.OrganizationDraft) OrganizationPayload {
	payload := OrganizationPayload{
		CompanyName:    d.CompanyName,
		DocumentNumber: d.DocumentNumber,
		Email:          d.Email,
		Phone:          d.Phone,
		WebsiteURL:     d.WebsiteURL,
		Description:    d.Description,
	}
	if !d.FoundingDate.IsZero() {
		payload.FoundingDate = d.FoundingDate.Format(DateLayout)
	}
	return payload
}

// OrganizationResponse is the organization resource as the API returns it.
type OrganizationResponse struct {
	ID             int64     `json:"id"`
	CompanyName    string    `json:"company_name"`
	DocumentNumber string    `json:"document_number"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	WebsiteURL     string    `json:"website_url"`
	FoundingDate   string    `json:"founding_date"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToDomain converts the wire organization into the domain model.
func (r OrganizationResponse) ToDomain() domain.Organization {
	foundingDate, _ := ParseWireDate(r.FoundingDate)
	return domain.Organization{
		ID:             r.ID,
		CompanyName:    r.CompanyName,
		DocumentNumber: r.DocumentNumber,
		Email:          r.Email,
		Phone:          r.Phone,
		WebsiteURL:     r.WebsiteURL,
		FoundingDate:   foundingDate,
		Description:    r.Description,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// InviteMemberRequest is the invitation body: email plus the initial role.
type InviteMemberRequest struct {
	Email string      `json:"email" validate:"required,email"`
	Role  domain.Role `json:"role" validate:"required,oneof=ADMIN MANAGER EMPLOYEE"`
}
