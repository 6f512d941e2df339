package interfaces

import "locksmith_invoicing/internal/domain/entities"

// ISessionStore keeps per-session context: the selected customer, the
// accounting credentials and the pending OAuth state.
//
// The store never authenticates the session id; callers resolve it from the
// operator's verified token.
type ISessionStore interface {
	Get(sessionID string) (customerRef string, ok bool)
	Set(sessionID, customerRef string)
	Clear(sessionID string)

	GetCredentials(sessionID string) (entities.CredentialPair, bool)
	SetCredentials(sessionID string, creds entities.CredentialPair)
	// SwapCredentials stores next only when the current pair still equals
	// old, and reports whether it did.
	SwapCredentials(sessionID string, old, next entities.CredentialPair) bool
	ClearCredentials(sessionID string)

	SetOAuthState(sessionID, state string)
	ConsumeOAuthState(sessionID string) (string, bool)

	Delete(sessionID string)
}
