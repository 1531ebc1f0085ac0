package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/orgtrack/orgtrack_client/internal/cache"
	"github.com/orgtrack/orgtrack_client/internal/core/domain"
	"github.com/orgtrack/orgtrack_client/internal/core/ports/gateways"
	portssvc "github.com/orgtrack/orgtrack_client/internal/core/ports/services"
)

// sessionService implements the SessionSvcFacade interface. It holds the
// identity snapshot for the session's lifetime; mutations that touch the
// identity (profile update, invitation answer, organization creation) call
// Refresh, which re-runs the fetch and then notifies subscribers of the
// "me" cache key.
type sessionService struct {
	BaseService
	identity gateways.IdentityGateway
	registry *cache.Registry

	mu   sync.RWMutex
	user *domain.User
}

// NewSessionService creates a new session service with the provided dependencies
func NewSessionService(identity gateways.IdentityGateway, registry *cache.Registry) portssvc.SessionSvcFacade {
	return &sessionService{identity: identity, registry: registry}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// Resolve fetches the identity snapshot once and returns the derived session
// info; subsequent calls serve the cached snapshot.
func (s *sessionService) Resolve(ctx context.Context) (domain.SessionInfo, error) {
	s.mu.RLock()
	user := s.user
	s.mu.RUnlock()
	if user != nil {
		return user.SessionInfo(), nil
	}

	if err := s.fetch(ctx); err != nil {
		return domain.SessionInfo{}, err
	}
	return s.Current(), nil
}

// Current returns the session info without fetching; zero while unresolved.
func (s *sessionService) Current() domain.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.SessionInfo{}
	}
	return s.user.SessionInfo()
}

// CurrentUser returns the cached identity snapshot, if resolved.
func (s *sessionService) CurrentUser() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	snapshot := *s.user
	return &snapshot, true
}

// Refresh re-runs the identity fetch and notifies every other subscriber of
// the "me" key.
func (s *sessionService) Refresh(ctx context.Context) (domain.SessionInfo, error) {
	if err := s.fetch(ctx); err != nil {
		return domain.SessionInfo{}, err
	}
	s.registry.Invalidate(ctx, cache.MeKey())
	return s.Current(), nil
}

func (s *sessionService) fetch(ctx context.Context) error {
	user, err := s.identity.Me(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve identity")
		return err
	}
	if err := user.ValidateMembership(); err != nil {
		// Backend-owned invariant; a violation here means a stale or
		// inconsistent snapshot, not a local failure.
		s.LogError(ctx, err, "Identity snapshot violates membership invariant",
			slog.Int64("user_id", user.ID))
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	s.LogDebug(ctx, "Session resolved",
		slog.Int64("user_id", user.ID),
		slog.String("role", string(user.Role)))
	return nil
}
