package interfaces

import (
	"context"

	"locksmith_invoicing/internal/domain/entities"
)

// IAccountingGateway abstracts the external accounting provider (QuickBooks Online).
//
// Every call receives the session's credential pair. When the provider reports
// an expired access token the gateway refreshes the pair in place and replays
// the request once; callers persist the pair afterwards.
type IAccountingGateway interface {
	SearchCustomers(ctx context.Context, creds *entities.CredentialPair, query string, limit int) ([]entities.Customer, error)
	GetCustomer(ctx context.Context, creds *entities.CredentialPair, customerID string) (entities.Customer, error)
	CreateCustomer(ctx context.Context, creds *entities.CredentialPair, attrs entities.CustomerCreate) (entities.Customer, error)

	FindTodayInvoice(ctx context.Context, creds *entities.CredentialPair, customerRef string) (entities.Invoice, bool, error)
	FindOrCreateTodayInvoice(ctx context.Context, creds *entities.CredentialPair, customerRef string) (entities.Invoice, error)
	GetInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID string) (entities.Invoice, error)
	ListInvoices(ctx context.Context, creds *entities.CredentialPair, customerRef string) ([]entities.Invoice, error)
	AppendInvoiceLine(ctx context.Context, creds *entities.CredentialPair, invoiceID string, line entities.InvoiceLine) (entities.Invoice, error)
	SendInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID, sendTo string) (entities.Invoice, error)
	CloseInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID string) (entities.Invoice, error)

	ListItems(ctx context.Context, creds *entities.CredentialPair) ([]entities.CatalogItem, error)
	ResolveItemByName(ctx context.Context, creds *entities.CredentialPair, name string) (string, error)
}
