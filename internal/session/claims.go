package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims decodes the bearer token's registered claims for display
// (issued-at, expiry). The signature is not verified and expiry is never
// enforced client-side; a stale token only fails on the next protected call.
func (s *Store) TokenClaims() (emitido, expira time.Time, ok bool) {
	if s.token == "" {
		return time.Time{}, time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return time.Time{}, time.Time{}, false
	}
	if d, err := claims.GetIssuedAt(); err == nil && d != nil {
		emitido = d.Time
	}
	if d, err := claims.GetExpirationTime(); err == nil && d != nil {
		expira = d.Time
	}
	return emitido, expira, true
}
