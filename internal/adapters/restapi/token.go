package restapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// BearerToken is a static credential handed over by the auth layer. Before
// attaching the token it inspects the registered claims (unverified; the
// server owns signature validation) and withholds a token that is already
// expired, so the user gets a clean authorization failure instead of a
// confusing rejection mid-session.
type BearerToken struct {
	raw string
}

// NewBearerToken wraps a raw token string; empty means unauthenticated.
func NewBearerToken(raw string) BearerToken {
	return BearerToken{raw: raw}
}

// Token implements TokenProvider.
func (b BearerToken) Token() (string, bool) {
	if b.raw == "" {
		return "", false
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(b.raw, claims); err == nil {
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			return "", false
		}
	}
	// Opaque (non-JWT) tokens pass through untouched.
	return b.raw, true
}

// Subject returns the token's subject claim for diagnostics, when present.
func (b BearerToken) Subject() string {
	if b.raw == "" {
		return ""
	}
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(b.raw, claims); err != nil {
		return ""
	}
	return claims.Subject
}
