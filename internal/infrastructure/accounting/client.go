package accounting

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/usecase/interfaces"
)

const maxResponseBytes = 4 << 20

// Config configures the QuickBooks Online gateway.
type Config struct {
	BaseURL      string // e.g. https://quickbooks.api.intuit.com/v3/company
	MinorVersion string
	Timeout      time.Duration
	// Location decides what "today" means for daily invoices.
	Location *time.Location
}

// Gateway talks to the QuickBooks Online accounting API on behalf of a
// session. It holds no credentials itself.
type Gateway struct {
	cfg     Config
	http    *http.Client
	tokens  interfaces.ITokenManager
	log     *zap.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ interfaces.IAccountingGateway = (*Gateway)(nil)

func NewGateway(cfg Config, tokens interfaces.ITokenManager, httpClient *http.Client, log *zap.Logger, m *metrics.Metrics) *Gateway {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if log == nil {
		log = zap.NewNop()
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Gateway{
		cfg:     cfg,
		http:    httpClient,
		tokens:  tokens,
		log:     log.Named("accounting"),
		metrics: m,
		now:     time.Now,
	}
}

type call struct {
	op       string
	method   string
	resource string
	query    url.Values
	body     any
	// contentType overrides the JSON default (invoice send).
	contentType string
}

// do executes c with the session credentials. A 401 reporting an expired
// access token refreshes creds in place and replays the call exactly once.
func (g *Gateway) do(ctx context.Context, creds *entities.CredentialPair, c call, out any) error {
	switch creds.State(g.now()) {
	case entities.TokenStateNoCredentials:
		return interfaces.ErrNotConnected
	case entities.TokenStateRevoked:
		return interfaces.ErrCredentialsRevoked
	}
	if creds.RealmID == "" {
		return fmt.Errorf("%w: missing realm id", interfaces.ErrNotConnected)
	}

	// At most one refresh per call, proactive or after a 401.
	replayed := false
	if creds.State(g.now()) == entities.TokenStateExpiredAccess {
		replayed = true
		if err := g.tokens.Refresh(ctx, creds); err != nil {
			return err
		}
	}
	for {
		body, err := g.send(ctx, creds, c)
		if errors.Is(err, errAccessExpired) {
			if replayed {
				return fmt.Errorf("%w: access token rejected after refresh", interfaces.ErrAccountingUnauthorized)
			}
			replayed = true
			g.log.Info("access token expired, refreshing", zap.String("operation", c.op), zap.String("realm_id", creds.RealmID))
			creds.MarkExpired()
			if err := g.tokens.Refresh(ctx, creds); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			g.log.Error("decode response failed", zap.String("operation", c.op), zap.Error(err))
			return fmt.Errorf("%w: decode %s response: %v", interfaces.ErrExternalServiceUnavailable, c.op, err)
		}
		return nil
	}
}

func (g *Gateway) send(ctx context.Context, creds *entities.CredentialPair, c call) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	q := url.Values{}
	for k, v := range c.query {
		q[k] = v
	}
	if g.cfg.MinorVersion != "" {
		q.Set("minorversion", g.cfg.MinorVersion)
	}
	endpoint := g.cfg.BaseURL + "/" + url.PathEscape(creds.RealmID) + "/" + c.resource
	if encoded := q.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var reader io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Accept", "application/json")
	switch {
	case c.contentType != "":
		req.Header.Set("Content-Type", c.contentType)
	case c.body != nil:
		req.Header.Set("Content-Type", "application/json")
	}

	if ce := g.log.Check(zap.DebugLevel, "request"); ce != nil {
		ce.Write(
			zap.String("operation", c.op),
			zap.String("method", c.method),
			zap.String("resource", c.resource),
			zap.String("authorization", logger.MaskAuthorization(req.Header.Get("Authorization"))),
		)
	}

	start := time.Now()
	resp, err := g.http.Do(req)
	if err != nil {
		g.metrics.ObserveAccountingRequest(c.op, 0, time.Since(start))
		g.log.Warn("request failed", zap.String("operation", c.op), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %v", interfaces.ErrExternalServiceUnavailable, c.op, err)
	}
	defer resp.Body.Close()
	g.metrics.ObserveAccountingRequest(c.op, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", interfaces.ErrExternalServiceUnavailable, c.op, err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	err = classify(c.op, resp.StatusCode, resp.Header, body)
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		apiErr.Message = redact(apiErr.Message, creds)
		apiErr.Detail = redact(apiErr.Detail, creds)
		g.log.Warn("provider error",
			zap.String("operation", apiErr.Operation),
			zap.Int("status", apiErr.Status),
			zap.String("code", apiErr.Code),
			zap.String("message", apiErr.Message),
			zap.String("detail", apiErr.Detail),
			zap.String("intuit_tid", resp.Header.Get("intuit_tid")),
		)
	}
	return nil, err
}

// query runs a provider SQL-like query; the result lands in out.QueryResponse.
func (g *Gateway) query(ctx context.Context, creds *entities.CredentialPair, op, stmt string, out any) error {
	return g.do(ctx, creds, call{
		op:       op,
		method:   http.MethodGet,
		resource: "query",
		query:    url.Values{"query": {stmt}},
	}, out)
}

func (g *Gateway) today() string {
	return g.now().In(g.cfg.Location).Format("2006-01-02")
}

// redact strips the session tokens from provider supplied text.
func redact(s string, creds *entities.CredentialPair) string {
	for _, secret := range []string{creds.AccessToken, creds.RefreshToken} {
		if secret != "" {
			s = strings.ReplaceAll(s, secret, logger.MaskToken(secret))
		}
	}
	return s
}
