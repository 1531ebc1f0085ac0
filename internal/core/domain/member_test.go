package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

func TestSortMembers(t *testing.T) {
	members := []domain.Member{
		{ID: 1, Name: "Zelda", Role: domain.RoleEmployee},
		{ID: 2, Name: "ana", Role: domain.RoleAdmin},
		{ID: 3, Name: "Bruno", Role: domain.RoleManager},
		{ID: 4, Name: "Carla", Role: domain.RoleEmployee},
		{ID: 5, Name: "dora", Role: domain.Role("CONTRACTOR")},
	}

	domain.SortMembers(members)

	gotIDs := make([]int64, 0, len(members))
	for _, m := range members {
		gotIDs = append(gotIDs, m.ID)
	}
	// admin, manager, employees by case-insensitive name, unknown role last
	assert.Equal(t, []int64{2, 3, 4, 1, 5}, gotIDs)
}

func TestSortMembers_StableForEqualMembers(t *testing.T) {
	members := []domain.Member{
		{ID: 1, Name: "Alex", Role: domain.RoleEmployee},
		{ID: 2, Name: "alex", Role: domain.RoleEmployee},
	}

	domain.SortMembers(members)

	assert.Equal(t, int64(1), members[0].ID)
	assert.Equal(t, int64(2), members[1].ID)
}
