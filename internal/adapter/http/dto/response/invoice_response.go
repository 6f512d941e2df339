package response

import "locksmith_invoicing/internal/domain/entities"

type InvoiceLineResponse struct {
	ID          string  `json:"id,omitempty"`
	Description string  `json:"description"`
	Qty         float64 `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
	ItemRef     string  `json:"item_ref"`
	ItemName    string  `json:"item_name,omitempty"`
}

type InvoiceResponse struct {
	ID           string                `json:"id"`
	DocNumber    string                `json:"doc_number,omitempty"`
	CustomerRef  string                `json:"customer_ref"`
	CustomerName string                `json:"customer_name,omitempty"`
	TxnDate      string                `json:"txn_date"`
	Lines        []InvoiceLineResponse `json:"lines"`
	TotalAmt     float64               `json:"total_amt"`
	Balance      float64               `json:"balance"`
	Closed       bool                  `json:"closed"`
	EmailStatus  string                `json:"email_status,omitempty"`
	BillEmail    string                `json:"bill_email,omitempty"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	lines := make([]InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, InvoiceLineResponse{
			ID:          l.ID,
			Description: l.Description,
			Qty:         l.Qty,
			UnitPrice:   l.UnitPrice,
			Amount:      l.Amount,
			ItemRef:     l.ItemRef,
			ItemName:    l.ItemName,
		})
	}
	return InvoiceResponse{
		ID:           inv.ID,
		DocNumber:    inv.DocNumber,
		CustomerRef:  inv.CustomerRef,
		CustomerName: inv.CustomerName,
		TxnDate:      inv.TxnDate,
		Lines:        lines,
		TotalAmt:     inv.TotalAmt,
		Balance:      inv.Balance,
		Closed:       inv.Closed(),
		EmailStatus:  inv.EmailStatus,
		BillEmail:    inv.BillEmail,
	}
}

func FromInvoices(in []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(in))
	for _, inv := range in {
		out = append(out, FromInvoice(inv))
	}
	return out
}
