package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/services"
)

func identityOf(user domain.User) *mockIdentityGateway {
	return &mockIdentityGateway{
		MeFn: func(ctx context.Context) (*domain.User, error) {
			snapshot := user
			return &snapshot, nil
		},
	}
}

func TestSessionService_Resolve_FetchesOnce(t *testing.T) {
	orgID := int64(3)
	identity := identityOf(domain.User{ID: 7, Role: domain.RoleManager, OrganizationID: &orgID})
	svc := services.NewSessionService(identity, cache.NewRegistry())

	info, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), info.UserID)
	assert.Equal(t, int64(3), info.OrganizationID)
	assert.Equal(t, domain.RoleManager, info.Role)

	_, err = svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, identity.meCalls, "second resolve must serve the cached snapshot")
}

func TestSessionService_Resolve_FailurePropagatesAndStaysUnresolved(t *testing.T) {
	identity := &mockIdentityGateway{
		MeFn: func(ctx context.Context) (*domain.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := services.NewSessionService(identity, cache.NewRegistry())

	_, err := svc.Resolve(context.Background())
	require.Error(t, err)
	assert.False(t, svc.Current().Resolved())
	_, ok := svc.CurrentUser()
	assert.False(t, ok)
}

func TestSessionService_CurrentUser_ReturnsACopy(t *testing.T) {
	identity := identityOf(domain.User{ID: 7, Name: "Ana", Role: domain.RoleAdmin})
	svc := services.NewSessionService(identity, cache.NewRegistry())

	_, err := svc.Resolve(context.Background())
	require.NoError(t, err)

	user, ok := svc.CurrentUser()
	require.True(t, ok)
	user.Name = "mutated"

	again, ok := svc.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ana", again.Name)
}

func TestSessionService_Refresh_RefetchesAndNotifiesSubscribers(t *testing.T) {
	registry := cache.NewRegistry()
	meFetches := countingSubscriber(registry, cache.MeKey())

	role := domain.RoleEmployee
	identity := &mockIdentityGateway{
		MeFn: func(ctx context.Context) (*domain.User, error) {
			return &domain.User{ID: 7, Role: role}, nil
		},
	}
	svc := services.NewSessionService(identity, registry)

	_, err := svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, *meFetches)

	role = domain.RoleManager
	info, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, info.Role)
	assert.Equal(t, 2, identity.meCalls)
	assert.Equal(t, 1, *meFetches, "refresh must notify the me subscribers")
}

func TestSessionService_Refresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	fail := false
	identity := &mockIdentityGateway{
		MeFn: func(ctx context.Context) (*domain.User, error) {
			if fail {
				return nil, errors.New("boom")
			}
			return &domain.User{ID: 7, Role: domain.RoleAdmin}, nil
		},
	}
	svc := services.NewSessionService(identity, cache.NewRegistry())

	_, err := svc.Resolve(context.Background())
	require.NoError(t, err)

	fail = true
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, svc.Current().Resolved(), "failed refresh must not drop the snapshot")
}
