package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/usecase/interfaces"
)

const errCodeInvalidGrant = "invalid_grant"

// Config holds the OAuth client registration at the accounting provider.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string
}

// TokenManager runs the authorization code flow and refreshes credential
// pairs against the provider token endpoint (client auth via HTTP Basic).
type TokenManager struct {
	oauth   *oauth2.Config
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

var _ interfaces.ITokenManager = (*TokenManager)(nil)

func NewTokenManager(cfg Config, httpClient *http.Client, log *zap.Logger, m *metrics.Metrics) *TokenManager {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &TokenManager{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		http:    httpClient,
		log:     log.Named("oauth"),
		metrics: m,
	}
}

// AuthCodeURL is the consent page the operator is redirected to.
func (m *TokenManager) AuthCodeURL(state string) string {
	return m.oauth.AuthCodeURL(state)
}

// ExchangeCode trades the callback code for a fresh AUTHORIZED pair.
func (m *TokenManager) ExchangeCode(ctx context.Context, code, realmID string) (entities.CredentialPair, error) {
	if code == "" || realmID == "" {
		return entities.CredentialPair{}, fmt.Errorf("%w: missing code or realm id", interfaces.ErrInvalidReference)
	}
	tok, err := m.oauth.Exchange(m.clientContext(ctx), code)
	if err != nil {
		m.log.Warn("code exchange failed", zap.String("realm_id", realmID), zap.String("error_code", retrieveErrorCode(err)))
		if retrieveErrorCode(err) == errCodeInvalidGrant {
			return entities.CredentialPair{}, fmt.Errorf("%w: authorization code rejected", interfaces.ErrCredentialsRevoked)
		}
		return entities.CredentialPair{}, fmt.Errorf("%w: token exchange: %s", interfaces.ErrExternalServiceUnavailable, retrieveErrorCode(err))
	}

	pair := pairFromToken(tok, realmID)
	m.log.Info("credentials issued",
		zap.String("realm_id", realmID),
		zap.Time("access_expires_at", pair.AccessExpiresAt),
	)
	m.log.Debug("credentials issued", zap.String("access_token", logger.MaskToken(pair.AccessToken)))
	return pair, nil
}

// Refresh exchanges the refresh token and replaces creds in place. An
// invalid_grant answer moves the pair to REVOKED.
func (m *TokenManager) Refresh(ctx context.Context, creds *entities.CredentialPair) error {
	if creds == nil || creds.RefreshToken == "" {
		return interfaces.ErrNotConnected
	}
	if creds.Revoked {
		return interfaces.ErrCredentialsRevoked
	}

	src := m.oauth.TokenSource(m.clientContext(ctx), &oauth2.Token{RefreshToken: creds.RefreshToken})
	tok, err := src.Token()
	if err != nil {
		code := retrieveErrorCode(err)
		if code == errCodeInvalidGrant {
			creds.MarkRevoked()
			m.metrics.IncTokenRefresh("revoked")
			m.log.Warn("refresh token rejected, reconnect required", zap.String("realm_id", creds.RealmID))
			return fmt.Errorf("%w: refresh token rejected", interfaces.ErrCredentialsRevoked)
		}
		m.metrics.IncTokenRefresh("error")
		m.log.Warn("token refresh failed", zap.String("realm_id", creds.RealmID), zap.String("error_code", code), zap.Error(redactErr(err)))
		return fmt.Errorf("%w: token refresh", interfaces.ErrExternalServiceUnavailable)
	}

	creds.Replace(pairFromToken(tok, creds.RealmID))
	m.metrics.IncTokenRefresh("ok")
	m.log.Info("access token refreshed", zap.String("realm_id", creds.RealmID), zap.Time("access_expires_at", creds.AccessExpiresAt))
	return nil
}

func (m *TokenManager) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, m.http)
}

func pairFromToken(tok *oauth2.Token, realmID string) entities.CredentialPair {
	return entities.CredentialPair{
		AccessToken:     tok.AccessToken,
		RefreshToken:    tok.RefreshToken,
		RealmID:         realmID,
		AccessExpiresAt: tok.Expiry,
	}
}

func retrieveErrorCode(err error) string {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.ErrorCode != "" {
			return re.ErrorCode
		}
		if re.Response != nil {
			return re.Response.Status
		}
	}
	return "transport"
}

// redactErr drops RetrieveError bodies; they can echo request parameters.
func redactErr(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		return fmt.Errorf("token endpoint error %s", retrieveErrorCode(err))
	}
	return err
}
