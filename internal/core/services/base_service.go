package services

import (
	"context"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/orgtrack/orgtrack_client/internal/apperrors"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
	"github.com/orgtrack/orgtrack_client/internal/platform/applog"
)

// validate checks dto payloads before anything is dispatched; failures are
// KindValidation and never reach the network.
var validate = validator.New(validator.WithRequiredStructEnabled())

// BaseService provides common functionality for all services: context-scoped
// logging and the capability gates derived from the session.
type BaseService struct {
	Session portssvc.SessionSvcFacade
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return applog.FromContext(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireSession resolves the session and fails closed while the identity
// fetch has not completed: an unresolved session may not act.
func (s *BaseService) RequireSession(ctx context.Context) (domain.SessionInfo, error) {
	info, err := s.Session.Resolve(ctx)
	if err != nil {
		return domain.SessionInfo{}, apperrors.Validation("session not resolved", apperrors.ErrSessionUnresolved)
	}
	if !info.Resolved() {
		return domain.SessionInfo{}, apperrors.Validation("session not resolved", apperrors.ErrSessionUnresolved)
	}
	return info, nil
}

// RequireOrganization additionally requires membership in an organization.
func (s *BaseService) RequireOrganization(ctx context.Context) (domain.SessionInfo, error) {
	info, err := s.RequireSession(ctx)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	if !info.InOrganization() {
		return domain.SessionInfo{}, apperrors.Validation("user does not belong to an organization", apperrors.ErrForbidden)
	}
	return info, nil
}

// RequireManage gates mutations behind the manage capability. This is a UI
// affordance gate, not a security boundary: the API re-checks authorization
// on every call.
func (s *BaseService) RequireManage(ctx context.Context) (domain.SessionInfo, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	if !info.Role.CanManage() {
		s.LogDebug(ctx, "User lacks manage capability",
			slog.Int64("user_id", info.UserID),
			slog.String("role", string(info.Role)))
		return domain.SessionInfo{}, apperrors.Validation("action requires a manager role", apperrors.ErrForbidden)
	}
	return info, nil
}

// RequireAdmin gates member administration behind the admin capability.
func (s *BaseService) RequireAdmin(ctx context.Context) (domain.SessionInfo, error) {
	info, err := s.RequireOrganization(ctx)
	if err != nil {
		return domain.SessionInfo{}, err
	}
	if !info.Role.IsAdmin() {
		s.LogDebug(ctx, "User lacks admin capability",
			slog.Int64("user_id", info.UserID),
			slog.String("role", string(info.Role)))
		return domain.SessionInfo{}, apperrors.Validation("action requires the admin role", apperrors.ErrForbidden)
	}
	return info, nil
}
