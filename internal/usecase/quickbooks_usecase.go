package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase/interfaces"
)

var (
	ErrOAuthStateMismatch = errors.New("oauth state mismatch")
	ErrConsentDenied      = errors.New("accounting consent denied")
)

// CallbackInput is the query string of the provider's consent redirect.
type CallbackInput struct {
	Code    string
	RealmID string
	State   string
	// Error is set by the provider when the operator declined consent.
	Error string
}

// ConnectionStatus describes the session's accounting connection without
// exposing any token.
type ConnectionStatus struct {
	State           entities.TokenState `json:"state"`
	RealmID         string              `json:"realm_id,omitempty"`
	AccessExpiresAt time.Time           `json:"access_expires_at,omitempty"`
}

// IQuickBooksUseCase runs the consent flow and reads the provider catalog.
type IQuickBooksUseCase interface {
	Connect(ctx context.Context, sessionID string) (string, error)
	Callback(ctx context.Context, sessionID string, in CallbackInput) (ConnectionStatus, error)
	Status(ctx context.Context, sessionID string) ConnectionStatus
	Disconnect(ctx context.Context, sessionID string)
	Items(ctx context.Context, sessionID string) ([]entities.CatalogItem, error)
}

type QuickBooksUseCase struct {
	sessions interfaces.ISessionStore
	tokens   interfaces.ITokenManager
	gateway  interfaces.IAccountingGateway
	now      func() time.Time
}

var _ IQuickBooksUseCase = (*QuickBooksUseCase)(nil)

func NewQuickBooksUseCase(sessions interfaces.ISessionStore, tokens interfaces.ITokenManager, gateway interfaces.IAccountingGateway) *QuickBooksUseCase {
	return &QuickBooksUseCase{sessions: sessions, tokens: tokens, gateway: gateway, now: time.Now}
}

// Connect stores a fresh state value for the session and returns the consent
// URL carrying it.
func (u *QuickBooksUseCase) Connect(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrUnauthenticated
	}
	state := strings.ReplaceAll(uuid.NewString(), "-", "")
	u.sessions.SetOAuthState(sessionID, state)
	logger.FromContext(ctx).Debug("[qb][usecase] consent started", zap.String("session_id", sessionID))
	return u.tokens.AuthCodeURL(state), nil
}

func (u *QuickBooksUseCase) Callback(ctx context.Context, sessionID string, in CallbackInput) (ConnectionStatus, error) {
	log := logger.FromContext(ctx)
	expected, ok := u.sessions.ConsumeOAuthState(sessionID)
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(in.State)) != 1 {
		log.Warn("[qb][usecase] callback state mismatch", zap.String("session_id", sessionID))
		return ConnectionStatus{}, ErrOAuthStateMismatch
	}
	if in.Error != "" {
		log.Info("[qb][usecase] consent declined", zap.String("provider_error", in.Error))
		return ConnectionStatus{}, ErrConsentDenied
	}

	creds, err := u.tokens.ExchangeCode(ctx, in.Code, in.RealmID)
	if err != nil {
		return ConnectionStatus{}, err
	}
	u.sessions.SetCredentials(sessionID, creds)
	log.Info("[qb][usecase] connected", zap.String("realm_id", creds.RealmID))
	return u.statusOf(creds), nil
}

func (u *QuickBooksUseCase) Status(_ context.Context, sessionID string) ConnectionStatus {
	creds, ok := u.sessions.GetCredentials(sessionID)
	if !ok {
		return ConnectionStatus{State: entities.TokenStateNoCredentials}
	}
	return u.statusOf(creds)
}

func (u *QuickBooksUseCase) Disconnect(ctx context.Context, sessionID string) {
	u.sessions.ClearCredentials(sessionID)
	logger.FromContext(ctx).Info("[qb][usecase] disconnected", zap.String("session_id", sessionID))
}

func (u *QuickBooksUseCase) Items(ctx context.Context, sessionID string) ([]entities.CatalogItem, error) {
	var items []entities.CatalogItem
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		items, err = u.gateway.ListItems(ctx, creds)
		return err
	})
	return items, err
}

func (u *QuickBooksUseCase) statusOf(creds entities.CredentialPair) ConnectionStatus {
	return ConnectionStatus{
		State:           creds.State(u.now()),
		RealmID:         creds.RealmID,
		AccessExpiresAt: creds.AccessExpiresAt,
	}
}
