package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/services"
	"github.com/orgtrack/orgtrack_client/internal/dto"
)

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("success patches the profile and refreshes the session", func(t *testing.T) {
		session := employeeSession(12, 3)
		var gotUserID int64
		var gotName, gotEmail string
		users := &mockUserGateway{
			UpdateProfileFn: func(ctx context.Context, userID int64, name, email, phoneNumber string) error {
				gotUserID, gotName, gotEmail = userID, name, email
				return nil
			},
		}
		svc := services.NewUserService(users, session)

		err := svc.UpdateProfile(context.Background(), dto.ProfileUpdatePayload{
			Name:  "Ana Souza",
			Email: "ana@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), gotUserID)
		assert.Equal(t, "Ana Souza", gotName)
		assert.Equal(t, "ana@example.com", gotEmail)
		assert.Equal(t, 1, session.refreshes)
	})

	t.Run("invalid email never dispatches", func(t *testing.T) {
		session := employeeSession(12, 3)
		dispatched := false
		users := &mockUserGateway{
			UpdateProfileFn: func(ctx context.Context, userID int64, name, email, phoneNumber string) error {
				dispatched = true
				return nil
			},
		}
		svc := services.NewUserService(users, session)

		err := svc.UpdateProfile(context.Background(), dto.ProfileUpdatePayload{
			Name:  "Ana Souza",
			Email: "not-an-email",
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.False(t, dispatched)
		assert.Equal(t, 0, session.refreshes)
	})
}

func TestUserService_AnswerInvitation(t *testing.T) {
	invitedOrg := int64(5)
	pendingUser := func() *domain.User {
		return &domain.User{
			ID:                    12,
			Role:                  domain.RoleEmployee,
			InvitedOrganizationID: &invitedOrg,
			InvitationStatus:      domain.InvitationPending,
		}
	}

	t.Run("accept requires a pending invitation", func(t *testing.T) {
		session := employeeSession(12, 3)
		session.user = &domain.User{ID: 12, Role: domain.RoleEmployee}
		users := &mockUserGateway{}
		svc := services.NewUserService(users, session)

		err := svc.AcceptInvitation(context.Background())
		require.Error(t, err)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
		assert.Equal(t, 0, users.answerCalls)
	})

	t.Run("accept answers and refreshes the session", func(t *testing.T) {
		session := employeeSession(12, 0)
		session.user = pendingUser()
		var gotUserID int64
		users := &mockUserGateway{
			AnswerInvitationFn: func(ctx context.Context, userID int64) error {
				gotUserID = userID
				return nil
			},
		}
		svc := services.NewUserService(users, session)

		err := svc.AcceptInvitation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(12), gotUserID)
		assert.Equal(t, 1, session.refreshes)
	})

	t.Run("revoke hits the same endpoint", func(t *testing.T) {
		session := employeeSession(12, 0)
		session.user = pendingUser()
		users := &mockUserGateway{}
		svc := services.NewUserService(users, session)

		err := svc.RevokeInvitation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, users.answerCalls)
		assert.Equal(t, 1, session.refreshes)
	})
}
