package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/usecase/interfaces"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrWeakPassword       = errors.New("password too short")
	ErrPasswordUnchanged  = errors.New("new password must be different")
	ErrOperatorNotFound   = errors.New("operator not found")
)

// MinPasswordLength is the shortest operator password accepted.
const MinPasswordLength = 8

// LoginResult is a freshly opened operator session.
type LoginResult struct {
	Operator  entities.Operator
	Token     string
	SessionID string
	ExpiresAt time.Time
}

// IAuthUseCase authenticates operators and owns their sessions.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (interfaces.SessionClaims, error)
	Current(ctx context.Context, email string) (entities.Operator, error)
	Logout(ctx context.Context, sessionID string)
	ChangePassword(ctx context.Context, email, current, next string) error
}

type AuthUseCase struct {
	operators interfaces.IOperatorRepository
	hasher    interfaces.IPasswordHasher
	tokens    interfaces.ITokenIssuer
	sessions  interfaces.ISessionStore
	metrics   *metrics.Metrics

	dummyOnce sync.Once
	dummyHash string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	operators interfaces.IOperatorRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenIssuer,
	sessions interfaces.ISessionStore,
	m *metrics.Metrics,
) *AuthUseCase {
	return &AuthUseCase{operators: operators, hasher: hasher, tokens: tokens, sessions: sessions, metrics: m}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		u.metrics.IncLogin("invalid")
		return LoginResult{}, ErrInvalidCredentials
	}
	log := logger.FromContext(ctx)

	op, err := u.operators.GetByEmail(ctx, email)
	if err != nil {
		u.metrics.IncLogin("error")
		return LoginResult{}, err
	}
	if op.Email == "" {
		// Spend the same bcrypt time as a real mismatch.
		u.hasher.Compare(u.dummy(), password)
		u.metrics.IncLogin("rejected")
		log.Info("[auth][usecase] login rejected", zap.String("reason", "unknown_operator"))
		return LoginResult{}, ErrInvalidCredentials
	}
	if !u.hasher.Compare(op.PasswordHash, password) {
		u.metrics.IncLogin("rejected")
		log.Info("[auth][usecase] login rejected", zap.String("email", op.Email), zap.String("reason", "bad_password"))
		return LoginResult{}, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	token, exp, err := u.tokens.Issue(op.Email, sessionID)
	if err != nil {
		u.metrics.IncLogin("error")
		return LoginResult{}, fmt.Errorf("issue session token: %w", err)
	}
	u.metrics.IncLogin("ok")
	log.Info("[auth][usecase] login", zap.String("email", op.Email), zap.String("session_id", sessionID))
	return LoginResult{Operator: op, Token: token, SessionID: sessionID, ExpiresAt: exp}, nil
}

func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (interfaces.SessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.SessionClaims{}, ErrUnauthenticated
	}
	claims, err := u.tokens.Parse(token)
	if err != nil {
		logger.FromContext(ctx).Debug("[auth][usecase] token rejected", zap.Error(err))
		return interfaces.SessionClaims{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return claims, nil
}

func (u *AuthUseCase) Current(ctx context.Context, email string) (entities.Operator, error) {
	op, err := u.operators.GetByEmail(ctx, email)
	if err != nil {
		return entities.Operator{}, err
	}
	if op.Email == "" {
		return entities.Operator{}, ErrUnauthenticated
	}
	return op, nil
}

// Logout drops everything the session held, accounting credentials included.
func (u *AuthUseCase) Logout(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	u.sessions.Delete(sessionID)
	logger.FromContext(ctx).Info("[auth][usecase] logout", zap.String("session_id", sessionID))
}

func (u *AuthUseCase) ChangePassword(ctx context.Context, email, current, next string) error {
	if len(next) < MinPasswordLength {
		return ErrWeakPassword
	}
	op, err := u.operators.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if op.Email == "" {
		return ErrOperatorNotFound
	}
	if !u.hasher.Compare(op.PasswordHash, current) {
		return ErrIncorrectPassword
	}
	if u.hasher.Compare(op.PasswordHash, next) {
		return ErrPasswordUnchanged
	}

	hash, err := u.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	updated, err := u.operators.UpdatePasswordHash(ctx, op.Email, hash)
	if err != nil {
		return err
	}
	if updated.Email == "" {
		return ErrOperatorNotFound
	}
	logger.FromContext(ctx).Info("[auth][usecase] password changed", zap.String("email", op.Email))
	return nil
}

func (u *AuthUseCase) dummy() string {
	u.dummyOnce.Do(func() {
		h, err := u.hasher.Hash(uuid.NewString())
		if err == nil {
			u.dummyHash = h
		}
	})
	return u.dummyHash
}
