package interfaces

import "time"

// IPasswordHasher hashes and verifies operator passwords.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// SessionClaims are the verified contents of an operator token.
type SessionClaims struct {
	Email     string
	SessionID string
	ExpiresAt time.Time
}

// ITokenIssuer signs and verifies operator session tokens.
type ITokenIssuer interface {
	Issue(email, sessionID string) (token string, expiresAt time.Time, err error)
	Parse(token string) (SessionClaims, error)
}
