package interfaces

import (
	"context"

	"locksmith_invoicing/internal/domain/entities"
)

// ITokenManager runs the OAuth lifecycle for the accounting provider.
type ITokenManager interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code, realmID string) (entities.CredentialPair, error)
	// Refresh replaces the pair in place. On invalid_grant the pair is marked
	// revoked and ErrCredentialsRevoked is returned.
	Refresh(ctx context.Context, creds *entities.CredentialPair) error
}
