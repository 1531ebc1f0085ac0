package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
)

// InvitationStatus tracks the lifecycle of an organization invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending_invitation"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRevoked  InvitationStatus = "revoked"
)

// Address is the postal address attached to a user profile.
type Address struct {
	ID           int64
	Street       string
	Number       string
	Complement   *string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// User is the read-only identity snapshot owned by the backend. This layer
// never mutates it directly; it is refreshed by re-running the identity fetch.
type User struct {
	ID                    int64
	Name                  string
	Email                 string
	Role                  Role
	OrganizationID        *int64
	InvitedOrganizationID *int64
	InvitationStatus      InvitationStatus
	Occupation            *string
	Salary                *decimal.Decimal
	PhoneNumber           *string
	ManagerID             *int64
	AvatarURL             string
	PredefinedAvatarURL   *string
	Address               *Address
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// SessionInfo derives the injectable identity value from the snapshot.
func (u *User) SessionInfo() SessionInfo {
	info := SessionInfo{UserID: u.ID, Role: u.Role}
	if u.OrganizationID != nil {
		info.OrganizationID = *u.OrganizationID
	}
	return info
}

// PendingInvitation reports whether the user has an outstanding invitation
// to join an organization.
func (u *User) PendingInvitation() bool {
	return u.InvitedOrganizationID != nil && u.InvitationStatus == InvitationPending
}

// ValidateMembership enforces the invariant that a user cannot belong to an
// organization and simultaneously hold a pending invitation to a different one.
func (u *User) ValidateMembership() error {
	if u.OrganizationID == nil || u.InvitedOrganizationID == nil {
		return nil
	}
	if *u.OrganizationID != *u.InvitedOrganizationID && u.InvitationStatus == InvitationPending {
		return apperrors.Validation("user already belongs to an organization", apperrors.ErrValidation)
	}
	return nil
}
