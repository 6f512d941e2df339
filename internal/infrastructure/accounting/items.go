package accounting

import (
	"context"
	"fmt"
	"strings"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
)

func (g *Gateway) ListItems(ctx context.Context, creds *entities.CredentialPair) ([]entities.CatalogItem, error) {
	var resp queryResponse
	if err := g.query(ctx, creds, "item.list", "select * from Item where Active = true startposition 1 maxresults 1000", &resp); err != nil {
		return nil, err
	}
	out := make([]entities.CatalogItem, 0, len(resp.QueryResponse.Item))
	for _, it := range resp.QueryResponse.Item {
		out = append(out, entities.CatalogItem{ID: it.ID, Name: it.Name, Description: it.Description})
	}
	return out, nil
}

// ResolveItemByName returns the id of the catalog item named exactly name.
func (g *Gateway) ResolveItemByName(ctx context.Context, creds *entities.CredentialPair, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty name", interfaces.ErrUnknownCatalogItem)
	}

	var resp queryResponse
	if err := g.query(ctx, creds, "item.resolve", "select Id, Name from Item where Name = "+quoteString(name), &resp); err != nil {
		return "", err
	}
	// the provider compares names case-insensitively
	for _, it := range resp.QueryResponse.Item {
		if it.Name == name {
			return it.ID, nil
		}
	}
	for _, it := range resp.QueryResponse.Item {
		if strings.EqualFold(it.Name, name) {
			return it.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %q", interfaces.ErrUnknownCatalogItem, name)
}
