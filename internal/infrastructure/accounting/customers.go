package accounting

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
)

const (
	defaultCustomerLimit = 25
	maxCustomerLimit     = 100
)

// SearchCustomers returns customers whose display name contains query. An
// empty query lists the first limit customers. Failures are returned, never
// reported as an empty result.
func (g *Gateway) SearchCustomers(ctx context.Context, creds *entities.CredentialPair, query string, limit int) ([]entities.Customer, error) {
	limit = clampLimit(limit)

	stmt := "select * from Customer"
	if q := strings.TrimSpace(query); q != "" {
		stmt += " where DisplayName like " + quoteContains(q)
	}
	stmt += fmt.Sprintf(" startposition 1 maxresults %d", limit)

	var resp queryResponse
	if err := g.query(ctx, creds, "customer.search", stmt, &resp); err != nil {
		return nil, err
	}

	out := make([]entities.Customer, 0, len(resp.QueryResponse.Customer))
	for _, c := range resp.QueryResponse.Customer {
		out = append(out, c.toEntity())
	}
	return out, nil
}

func (g *Gateway) GetCustomer(ctx context.Context, creds *entities.CredentialPair, customerID string) (entities.Customer, error) {
	id, err := checkID("customer", customerID)
	if err != nil {
		return entities.Customer{}, err
	}

	var resp customerEnvelope
	err = g.do(ctx, creds, call{op: "customer.get", method: http.MethodGet, resource: "customer/" + id}, &resp)
	if errors.Is(err, errObjectNotFound) {
		return entities.Customer{}, fmt.Errorf("%w: %s", interfaces.ErrCustomerNotFound, id)
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return resp.Customer.toEntity(), nil
}

// CreateCustomer creates a customer; email and phone are only sent when set.
func (g *Gateway) CreateCustomer(ctx context.Context, creds *entities.CredentialPair, attrs entities.CustomerCreate) (entities.Customer, error) {
	name := strings.TrimSpace(attrs.DisplayName)
	if name == "" {
		return entities.Customer{}, fmt.Errorf("%w: display name required", interfaces.ErrInvalidReference)
	}

	body := qboCustomer{DisplayName: name}
	if email := strings.TrimSpace(attrs.Email); email != "" {
		body.PrimaryEmailAddr = &emailAddr{Address: email}
	}
	if ph := strings.TrimSpace(attrs.Phone); ph != "" {
		body.PrimaryPhone = &phone{FreeFormNumber: ph}
	}

	var resp customerEnvelope
	if err := g.do(ctx, creds, call{op: "customer.create", method: http.MethodPost, resource: "customer", body: body}, &resp); err != nil {
		return entities.Customer{}, err
	}
	g.log.Info("customer created", zap.String("customer_id", resp.Customer.ID))
	return resp.Customer.toEntity(), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultCustomerLimit
	case limit > maxCustomerLimit:
		return maxCustomerLimit
	default:
		return limit
	}
}
