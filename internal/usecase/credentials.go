package usecase

import (
	"context"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// withCredentials runs fn with a copy of the session's credential pair and
// stores the pair back when fn changed it (refresh, expiry or revocation).
// The pair is stored even when fn fails so a revocation sticks. The write-back
// is skipped when another request replaced the pair meanwhile, so a stale
// result never overwrites a fresher one.
func withCredentials(ctx context.Context, sessions interfaces.ISessionStore, sessionID string, fn func(creds *entities.CredentialPair) error) error {
	stored, ok := sessions.GetCredentials(sessionID)
	if !ok {
		return interfaces.ErrNotConnected
	}
	creds := stored
	err := fn(&creds)
	if creds != stored && !sessions.SwapCredentials(sessionID, stored, creds) {
		logger.FromContext(ctx).Debug("[credentials][usecase] pair changed concurrently, write-back skipped",
			zap.Bool("revoked", creds.Revoked))
	}
	return err
}
