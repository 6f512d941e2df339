package entities

import "time"

// Session is the per-operator interaction context.
//
// Domain notes:
//   - Identified by the opaque session id carried in the operator's token.
//   - Holds the selected accounting customer and the accounting credentials.
//   - In memory only; lost on restart.
type Session struct {
	ID                  string
	SelectedCustomerRef string
	Credentials         *CredentialPair
	OAuthState          string
	UpdatedAt           time.Time
}
