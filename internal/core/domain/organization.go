package domain

import "time"

// Organization is the tenant boundary: it owns members, goals and
// transactions.
type Organization struct {
	ID             int64
	CompanyName    string
	DocumentNumber string
	Email          string
	Phone          string
	WebsiteURL     string
	FoundingDate   time.Time
	Description    string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrganizationDraft carries the caller-editable organization fields for
// create and full-update operations.
type OrganizationDraft struct {
	CompanyName    string
	DocumentNumber string
	Email          string
	Phone          string
	WebsiteURL     string
	FoundingDate   time.Time
	Description    string
}
