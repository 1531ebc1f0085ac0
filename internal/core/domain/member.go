package domain

import (
	"sort"
	"strings"
	"time"
)

// Member is a user viewed in the context of one organization.
type Member struct {
	ID                  int64
	Name                string
	Email               string
	Role                Role
	Occupation          *string
	AvatarURL           string
	PredefinedAvatarURL *string
	InvitationStatus    *string
	OrganizationID      int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// SortMembers orders a member listing for display: most privileged role
// first, name as the tie-break. The sort is stable so equal members keep
// their server order.
func SortMembers(members []Member) {
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := members[i].Role.SortRank(), members[j].Role.SortRank()
		if ri != rj {
			return ri < rj
		}
		return strings.ToLower(members[i].Name) < strings.ToLower(members[j].Name)
	})
}
