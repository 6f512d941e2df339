package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase/interfaces"
)

// SendInvoiceInput selects the invoice to send. An empty InvoiceID means the
// selected customer's open invoice for today.
type SendInvoiceInput struct {
	InvoiceID string
	SendTo    string
}

// IInvoiceUseCase reads invoices and completes them.
//
// Completing an invoice sends it, marks it closed and clears the session's
// selected customer, so the next job starts a fresh invoice.
type IInvoiceUseCase interface {
	Current(ctx context.Context, sessionID string) (entities.Invoice, error)
	Get(ctx context.Context, sessionID, invoiceID string) (entities.Invoice, error)
	List(ctx context.Context, sessionID, customerRef string) ([]entities.Invoice, error)
	Send(ctx context.Context, sessionID string, in SendInvoiceInput) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	sessions interfaces.ISessionStore
	gateway  interfaces.IAccountingGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(sessions interfaces.ISessionStore, gateway interfaces.IAccountingGateway) *InvoiceUseCase {
	return &InvoiceUseCase{sessions: sessions, gateway: gateway}
}

// Current returns today's open invoice for the selected customer without
// creating one.
func (u *InvoiceUseCase) Current(ctx context.Context, sessionID string) (entities.Invoice, error) {
	customerRef, ok := u.sessions.Get(sessionID)
	if !ok || customerRef == "" {
		return entities.Invoice{}, ErrNoCustomerSelected
	}
	var inv entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		inv, err = u.current(ctx, creds, customerRef)
		return err
	})
	return inv, err
}

func (u *InvoiceUseCase) Get(ctx context.Context, sessionID, invoiceID string) (entities.Invoice, error) {
	var inv entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		inv, err = u.gateway.GetInvoice(ctx, creds, invoiceID)
		return err
	})
	return inv, err
}

// List returns recent invoices; an empty customerRef lists all customers.
func (u *InvoiceUseCase) List(ctx context.Context, sessionID, customerRef string) ([]entities.Invoice, error) {
	var out []entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		var err error
		out, err = u.gateway.ListInvoices(ctx, creds, strings.TrimSpace(customerRef))
		return err
	})
	return out, err
}

func (u *InvoiceUseCase) Send(ctx context.Context, sessionID string, in SendInvoiceInput) (entities.Invoice, error) {
	invoiceID := strings.TrimSpace(in.InvoiceID)
	selected, hasSelected := u.sessions.Get(sessionID)
	if invoiceID == "" && (!hasSelected || selected == "") {
		return entities.Invoice{}, ErrNoCustomerSelected
	}
	log := logger.FromContext(ctx)

	var sent entities.Invoice
	err := withCredentials(ctx, u.sessions, sessionID, func(creds *entities.CredentialPair) error {
		if invoiceID == "" {
			inv, err := u.current(ctx, creds, selected)
			if err != nil {
				return err
			}
			invoiceID = inv.ID
		}
		var err error
		sent, err = u.gateway.SendInvoice(ctx, creds, invoiceID, in.SendTo)
		if err != nil {
			return err
		}
		// The email is out; a failed close must not report the send as failed.
		closed, cErr := u.gateway.CloseInvoice(ctx, creds, invoiceID)
		if cErr != nil {
			log.Error("[invoice][usecase] close after send failed", zap.String("invoice_id", invoiceID), zap.Error(cErr))
			return nil
		}
		closed.EmailStatus = sent.EmailStatus
		sent = closed
		return nil
	})
	if err != nil {
		log.Warn("[invoice][usecase] send failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		return entities.Invoice{}, err
	}

	if hasSelected && (sent.CustomerRef == "" || sent.CustomerRef == selected) {
		u.sessions.Clear(sessionID)
	}
	log.Info("[invoice][usecase] invoice completed",
		zap.String("invoice_id", sent.ID),
		zap.String("email_status", sent.EmailStatus),
	)
	return sent, nil
}

func (u *InvoiceUseCase) current(ctx context.Context, creds *entities.CredentialPair, customerRef string) (entities.Invoice, error) {
	inv, ok, err := u.gateway.FindTodayInvoice(ctx, creds, customerRef)
	if err != nil {
		return entities.Invoice{}, err
	}
	if !ok {
		return entities.Invoice{}, interfaces.ErrInvoiceNotFound
	}
	return inv, nil
}
