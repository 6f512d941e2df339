package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase/interfaces"
)

var ErrInvalidCustomer = errors.New("invalid customer")

const maxDisplayNameLen = 500

// ICustomerUseCase searches accounting customers and manages which one is
// selected in the operator's session.
type ICustomerUseCase interface {
	Search(ctx context.Context, sessionID, query string, limit int) ([]entities.Customer, error)
	Get(ctx context.Context, sessionID, customerID string) (entities.Customer, error)
	Create(ctx context.Context, sessionID string, attrs entities.CustomerCreate) (entities.Customer, error)
	Select(ctx context.Context, sessionID, customerID string) (entities.Customer, error)
	Selected(ctx context.Context, sessionID string) (entities.Customer, error)
	Reset(ctx context.Context, sessionID string)
}

type CustomerUseCase struct {
	sessions interfaces.ISessionStore
	gateway  interfaces.IAccountingGateway
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(sessions interfaces.ISessionStore, gateway interfaces.IAccountingGateway) *CustomerUseCase {
	return &CustomerUseCase{sessions: sessions, gateway: gateway}
}

func (u *CustomerUseCase) Search(ctx context.Context, sessionID, query string, limit int) ([]entities.Customer, error) {
	var out []entities.Customer
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		out, err = u.gateway.SearchCustomers(ctx, creds, strings.TrimSpace(query), limit)
		return err
	})
	return out, err
}

func (u *CustomerUseCase) Get(ctx context.Context, sessionID, customerID string) (entities.Customer, error) {
	var c entities.Customer
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		c, err = u.gateway.GetCustomer(ctx, creds, customerID)
		return err
	})
	return c, err
}

func (u *CustomerUseCase) Create(ctx context.Context, sessionID string, attrs entities.CustomerCreate) (entities.Customer, error) {
	attrs.DisplayName = strings.TrimSpace(attrs.DisplayName)
	attrs.Email = strings.TrimSpace(attrs.Email)
	attrs.Phone = strings.TrimSpace(attrs.Phone)
	if attrs.DisplayName == "" {
		return entities.Customer{}, ErrInvalidCustomer
	}
	if len(attrs.DisplayName) > maxDisplayNameLen {
		return entities.Customer{}, ErrInvalidCustomer
	}

	var c entities.Customer
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		c, err = u.gateway.CreateCustomer(ctx, creds, attrs)
		return err
	})
	if err != nil {
		return entities.Customer{}, err
	}
	logger.FromContext(ctx).Info("[customer][usecase] customer created", zap.String("customer_id", c.ID))
	return c, nil
}

// Select makes customerID the session's current customer after confirming
// it exists.
func (u *CustomerUseCase) Select(ctx context.Context, sessionID, customerID string) (entities.Customer, error) {
	c, err := u.Get(ctx, sessionID, strings.TrimSpace(customerID))
	if err != nil {
		return entities.Customer{}, err
	}
	u.sessions.Set(sessionID, c.ID)
	logger.FromContext(ctx).Info("[customer][usecase] customer selected", zap.String("customer_id", c.ID))
	return c, nil
}

func (u *CustomerUseCase) Selected(ctx context.Context, sessionID string) (entities.Customer, error) {
	ref, ok := u.sessions.Get(sessionID)
	if !ok || ref == "" {
		return entities.Customer{}, ErrNoCustomerSelected
	}
	return u.Get(ctx, sessionID, ref)
}

func (u *CustomerUseCase) Reset(ctx context.Context, sessionID string) {
	u.sessions.Clear(sessionID)
	logger.FromContext(ctx).Debug("[customer][usecase] selection cleared")
}
