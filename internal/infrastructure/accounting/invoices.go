package accounting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
)

const listInvoicesLimit = 50

// FindTodayInvoice returns the newest open invoice dated today for the
// customer; ok is false when there is none.
func (g *Gateway) FindTodayInvoice(ctx context.Context, creds *entities.CredentialPair, customerRef string) (entities.Invoice, bool, error) {
	customer, err := quoteID("customer", customerRef)
	if err != nil {
		return entities.Invoice{}, false, err
	}
	stmt := "select * from Invoice where CustomerRef = " + customer +
		" and TxnDate = " + quoteString(g.today()) +
		" orderby MetaData.CreateTime desc"

	var resp queryResponse
	if err := g.query(ctx, creds, "invoice.find_today", stmt, &resp); err != nil {
		return entities.Invoice{}, false, err
	}
	for _, inv := range resp.QueryResponse.Invoice {
		if inv.PrivateNote == entities.InvoiceClosedNote {
			continue
		}
		return inv.toEntity(), true, nil
	}
	return entities.Invoice{}, false, nil
}

// FindOrCreateTodayInvoice returns the newest open invoice dated today for
// the customer, creating an empty one when none exists.
//
// Search then create is not atomic: two concurrent first jobs for the same
// customer can each create an invoice. Later jobs pick the newest one.
func (g *Gateway) FindOrCreateTodayInvoice(ctx context.Context, creds *entities.CredentialPair, customerRef string) (entities.Invoice, error) {
	inv, ok, err := g.FindTodayInvoice(ctx, creds, customerRef)
	if err != nil {
		return entities.Invoice{}, err
	}
	if ok {
		g.log.Debug("reusing today invoice", zap.String("invoice_id", inv.ID), zap.String("customer_ref", customerRef))
		return inv, nil
	}
	today := g.today()

	body := qboInvoice{
		Line:        []qboLine{},
		CustomerRef: &ref{Value: strings.TrimSpace(customerRef)},
		TxnDate:     today,
	}
	var created invoiceEnvelope
	if err := g.do(ctx, creds, call{op: "invoice.create", method: http.MethodPost, resource: "invoice", body: body}, &created); err != nil {
		return entities.Invoice{}, err
	}
	if created.Invoice.ID == "" {
		return entities.Invoice{}, fmt.Errorf("%w: invoice create returned no id", interfaces.ErrExternalServiceUnavailable)
	}
	g.log.Info("invoice created",
		zap.String("invoice_id", created.Invoice.ID),
		zap.String("customer_ref", customerRef),
		zap.String("txn_date", today),
	)
	return created.Invoice.toEntity(), nil
}

func (g *Gateway) GetInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID string) (entities.Invoice, error) {
	id, err := checkID("invoice", invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	var resp invoiceEnvelope
	if err := g.do(ctx, creds, call{op: "invoice.get", method: http.MethodGet, resource: "invoice/" + id}, &resp); err != nil {
		return entities.Invoice{}, invoiceNotFound(err, id)
	}
	return resp.Invoice.toEntity(), nil
}

// ListInvoices returns the most recent invoices, optionally for one customer.
func (g *Gateway) ListInvoices(ctx context.Context, creds *entities.CredentialPair, customerRef string) ([]entities.Invoice, error) {
	stmt := "select * from Invoice"
	if strings.TrimSpace(customerRef) != "" {
		customer, err := quoteID("customer", customerRef)
		if err != nil {
			return nil, err
		}
		stmt += " where CustomerRef = " + customer
	}
	stmt += fmt.Sprintf(" orderby TxnDate desc startposition 1 maxresults %d", listInvoicesLimit)

	var resp queryResponse
	if err := g.query(ctx, creds, "invoice.list", stmt, &resp); err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(resp.QueryResponse.Invoice))
	for _, inv := range resp.QueryResponse.Invoice {
		out = append(out, inv.toEntity())
	}
	return out, nil
}

// AppendInvoiceLine adds one sales line with a sparse update carrying the
// current SyncToken. A stale token surfaces as ErrInvoiceConflict.
func (g *Gateway) AppendInvoiceLine(ctx context.Context, creds *entities.CredentialPair, invoiceID string, line entities.InvoiceLine) (entities.Invoice, error) {
	id, err := checkID("invoice", invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if _, err := checkID("item", line.ItemRef); err != nil {
		return entities.Invoice{}, err
	}

	current, err := g.getRawInvoice(ctx, creds, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.PrivateNote == entities.InvoiceClosedNote {
		return entities.Invoice{}, fmt.Errorf("%w: %s", interfaces.ErrInvoiceClosed, id)
	}

	lines := make([]any, 0, len(current.Line)+1)
	for _, raw := range current.Line {
		var peek struct {
			DetailType string `json:"DetailType"`
		}
		if err := json.Unmarshal(raw, &peek); err == nil && peek.DetailType == detailSubTotal {
			continue
		}
		lines = append(lines, raw)
	}
	lines = append(lines, newSalesLine(line))

	update := sparseInvoiceUpdate{ID: id, SyncToken: current.SyncToken, Sparse: true, Line: lines}
	var resp invoiceEnvelope
	if err := g.update(ctx, creds, "invoice.append_line", update, &resp); err != nil {
		return entities.Invoice{}, err
	}
	g.log.Info("invoice line appended",
		zap.String("invoice_id", id),
		zap.String("item_ref", line.ItemRef),
		zap.Float64("amount", line.Amount),
	)
	return resp.Invoice.toEntity(), nil
}

// SendInvoice asks the provider to email the invoice. Never replayed on
// failure: the outcome of a failed send is unknown to us.
func (g *Gateway) SendInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID, sendTo string) (entities.Invoice, error) {
	id, err := checkID("invoice", invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	q := url.Values{}
	if to := strings.TrimSpace(sendTo); to != "" {
		q.Set("sendTo", to)
	}

	var resp invoiceEnvelope
	err = g.do(ctx, creds, call{
		op:          "invoice.send",
		method:      http.MethodPost,
		resource:    "invoice/" + id + "/send",
		query:       q,
		contentType: "application/octet-stream",
	}, &resp)
	if err != nil {
		return entities.Invoice{}, invoiceNotFound(err, id)
	}
	g.log.Info("invoice sent", zap.String("invoice_id", id), zap.String("email_status", resp.Invoice.EmailStatus))
	return resp.Invoice.toEntity(), nil
}

// CloseInvoice marks the invoice closed so no further lines land on it.
func (g *Gateway) CloseInvoice(ctx context.Context, creds *entities.CredentialPair, invoiceID string) (entities.Invoice, error) {
	id, err := checkID("invoice", invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	current, err := g.getRawInvoice(ctx, creds, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if current.PrivateNote == entities.InvoiceClosedNote {
		return g.GetInvoice(ctx, creds, id)
	}

	update := sparseInvoiceUpdate{ID: id, SyncToken: current.SyncToken, Sparse: true, PrivateNote: entities.InvoiceClosedNote}
	var resp invoiceEnvelope
	if err := g.update(ctx, creds, "invoice.close", update, &resp); err != nil {
		return entities.Invoice{}, err
	}
	g.log.Info("invoice closed", zap.String("invoice_id", id))
	return resp.Invoice.toEntity(), nil
}

func (g *Gateway) getRawInvoice(ctx context.Context, creds *entities.CredentialPair, id string) (rawInvoice, error) {
	var resp rawInvoiceEnvelope
	if err := g.do(ctx, creds, call{op: "invoice.get", method: http.MethodGet, resource: "invoice/" + id}, &resp); err != nil {
		return rawInvoice{}, invoiceNotFound(err, id)
	}
	return resp.Invoice, nil
}

func (g *Gateway) update(ctx context.Context, creds *entities.CredentialPair, op string, body sparseInvoiceUpdate, out any) error {
	return g.do(ctx, creds, call{
		op:       op,
		method:   http.MethodPost,
		resource: "invoice",
		query:    url.Values{"operation": {"update"}},
		body:     body,
	}, out)
}

func invoiceNotFound(err error, id string) error {
	if errors.Is(err, errObjectNotFound) {
		return fmt.Errorf("%w: %s", interfaces.ErrInvoiceNotFound, id)
	}
	return err
}
