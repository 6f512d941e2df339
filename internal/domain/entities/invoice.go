package entities

import "github.com/shopspring/decimal"

// InvoiceClosedNote is the private-note sentinel marking an invoice as closed.
// A closed invoice never receives new lines; the next job for the customer
// opens a new invoice instead.
const InvoiceClosedNote = "CLOSED"

// Invoice is the accounting invoice as seen by this service.
//
// Domain notes:
//   - At most one open invoice per (customer, calendar day). The gateway
//     searches before creating.
//   - SyncToken is the provider's optimistic concurrency token; every update
//     must carry the latest one.
type Invoice struct {
	ID           string        `json:"id"`
	DocNumber    string        `json:"doc_number,omitempty"`
	CustomerRef  string        `json:"customer_ref"`
	CustomerName string        `json:"customer_name,omitempty"`
	TxnDate      string        `json:"txn_date"`
	Lines        []InvoiceLine `json:"lines"`
	TotalAmt     float64       `json:"total_amt"`
	Balance      float64       `json:"balance"`
	PrivateNote  string        `json:"private_note,omitempty"`
	EmailStatus  string        `json:"email_status,omitempty"`
	BillEmail    string        `json:"bill_email,omitempty"`
	SyncToken    string        `json:"-"`
}

// Closed reports whether the invoice carries the closed sentinel.
func (i Invoice) Closed() bool {
	return i.PrivateNote == InvoiceClosedNote
}

// InvoiceLine is one sales line on an invoice.
type InvoiceLine struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	ItemRef     string  `json:"item_ref"`
	ItemName    string  `json:"item_name,omitempty"`
}

// NewInvoiceLine builds a priced line; Amount is derived from qty and rate.
func NewInvoiceLine(description string, qty, rate float64, itemRef string) InvoiceLine {
	return InvoiceLine{
		Description: description,
		Qty:         qty,
		UnitPrice:   rate,
		Amount:      LineAmount(qty, rate),
		ItemRef:     itemRef,
	}
}

// LineAmount returns qty*rate rounded to cents.
//
// Both operands are converted through their shortest decimal representation
// and the product is rounded half away from zero, so 3 x 0.005 is 0.02 and
// 2 x 19.99 is 39.98, independent of binary float error.
func LineAmount(qty, rate float64) float64 {
	amount := decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(rate)).Round(2)
	f, _ := amount.Float64()
	return f
}
