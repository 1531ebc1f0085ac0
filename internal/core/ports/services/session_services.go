package services

import (
	"context"

	"github.com/orgtrack/orgtrack_client/internal/core/domain"
)

// SessionSvcFacade resolves the current identity once per session and
// exposes it read-only to every other component.
type SessionSvcFacade interface {
	// Resolve fetches the identity snapshot if it has not been fetched yet
	// and returns the derived session info.
	Resolve(ctx context.Context) (domain.SessionInfo, error)
	// Current returns the session info without fetching; the zero value
	// (Resolved()==false) while the identity fetch has not completed.
	Current() domain.SessionInfo
	// CurrentUser returns the full cached identity snapshot, if resolved.
	CurrentUser() (*domain.User, bool)
	// Refresh re-runs the identity fetch, e.g. after login or a profile
	// update, and refreshes the "me" cache key.
	Refresh(ctx context.Context) (domain.SessionInfo, error)
}
