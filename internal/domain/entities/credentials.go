package entities

import "time"

// TokenState is the lifecycle of the accounting credentials held for a session.
//
//	NO_CREDENTIALS -> AUTHORIZED -> EXPIRED_ACCESS -> AUTHORIZED | REVOKED
type TokenState string

const (
	TokenStateNoCredentials TokenState = "NO_CREDENTIALS"
	TokenStateAuthorized    TokenState = "AUTHORIZED"
	TokenStateExpiredAccess TokenState = "EXPIRED_ACCESS"
	TokenStateRevoked       TokenState = "REVOKED"
)

// CredentialPair is the access/refresh token pair issued by the accounting
// provider for one company (realm).
//
// Security notes:
//   - Both tokens are secrets. Never log them; use logger.MaskToken when a
//     correlation hint is needed.
//   - The pair lives server-side only and is keyed by operator session.
type CredentialPair struct {
	AccessToken     string    `json:"-"`
	RefreshToken    string    `json:"-"`
	RealmID         string    `json:"realm_id"`
	AccessExpiresAt time.Time `json:"access_expires_at"`
	Expired         bool      `json:"-"`
	Revoked         bool      `json:"-"`
}

// State derives the lifecycle state of the pair. A zero AccessExpiresAt means
// the expiry is unknown and the pair is treated as authorized until the
// provider says otherwise.
func (p *CredentialPair) State(now time.Time) TokenState {
	switch {
	case p == nil || (p.AccessToken == "" && p.RefreshToken == ""):
		return TokenStateNoCredentials
	case p.Revoked:
		return TokenStateRevoked
	case p.Expired:
		return TokenStateExpiredAccess
	case !p.AccessExpiresAt.IsZero() && !now.Before(p.AccessExpiresAt):
		return TokenStateExpiredAccess
	default:
		return TokenStateAuthorized
	}
}

// MarkExpired records that the provider rejected the access token as expired.
func (p *CredentialPair) MarkExpired() {
	p.Expired = true
}

// MarkRevoked records that the refresh token can no longer be exchanged.
// Only a new consent flow recovers from this state.
func (p *CredentialPair) MarkRevoked() {
	p.Revoked = true
	p.AccessToken = ""
}

// Replace installs a freshly issued pair, returning the state to AUTHORIZED.
func (p *CredentialPair) Replace(next CredentialPair) {
	realm := p.RealmID
	*p = next
	if p.RealmID == "" {
		p.RealmID = realm
	}
}
