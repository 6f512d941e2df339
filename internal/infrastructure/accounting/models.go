package accounting

import (
	"encoding/json"

	"locksmith_invoicing/internal/domain/entities"
)

const (
	detailSalesItem = "SalesItemLineDetail"
	detailSubTotal  = "SubTotalLineDetail"
)

type ref struct {
	Value string `json:"value"`
	Name  string `json:"name,omitempty"`
}

type emailAddr struct {
	Address string `json:"Address,omitempty"`
}

type phone struct {
	FreeFormNumber string `json:"FreeFormNumber,omitempty"`
}

type qboCustomer struct {
	ID               string     `json:"Id,omitempty"`
	DisplayName      string     `json:"DisplayName"`
	PrimaryEmailAddr *emailAddr `json:"PrimaryEmailAddr,omitempty"`
	PrimaryPhone     *phone     `json:"PrimaryPhone,omitempty"`
}

func (c qboCustomer) toEntity() entities.Customer {
	out := entities.Customer{ID: c.ID, DisplayName: c.DisplayName}
	if c.PrimaryEmailAddr != nil {
		out.PrimaryEmail = c.PrimaryEmailAddr.Address
	}
	if c.PrimaryPhone != nil {
		out.PrimaryPhone = c.PrimaryPhone.FreeFormNumber
	}
	return out
}

type salesItemDetail struct {
	ItemRef   ref     `json:"ItemRef"`
	Qty       float64 `json:"Qty"`
	UnitPrice float64 `json:"UnitPrice"`
}

type qboLine struct {
	ID                  string           `json:"Id,omitempty"`
	Description         string           `json:"Description,omitempty"`
	Amount              float64          `json:"Amount"`
	DetailType          string           `json:"DetailType"`
	SalesItemLineDetail *salesItemDetail `json:"SalesItemLineDetail,omitempty"`
}

func newSalesLine(l entities.InvoiceLine) qboLine {
	return qboLine{
		Description: l.Description,
		Amount:      l.Amount,
		DetailType:  detailSalesItem,
		SalesItemLineDetail: &salesItemDetail{
			ItemRef:   ref{Value: l.ItemRef},
			Qty:       l.Qty,
			UnitPrice: l.UnitPrice,
		},
	}
}

type qboInvoice struct {
	ID          string     `json:"Id,omitempty"`
	SyncToken   string     `json:"SyncToken,omitempty"`
	DocNumber   string     `json:"DocNumber,omitempty"`
	TxnDate     string     `json:"TxnDate,omitempty"`
	CustomerRef *ref       `json:"CustomerRef,omitempty"`
	Line        []qboLine  `json:"Line"`
	TotalAmt    float64    `json:"TotalAmt,omitempty"`
	Balance     float64    `json:"Balance,omitempty"`
	PrivateNote string     `json:"PrivateNote,omitempty"`
	EmailStatus string     `json:"EmailStatus,omitempty"`
	BillEmail   *emailAddr `json:"BillEmail,omitempty"`
}

func (inv qboInvoice) toEntity() entities.Invoice {
	out := entities.Invoice{
		ID:          inv.ID,
		DocNumber:   inv.DocNumber,
		TxnDate:     inv.TxnDate,
		TotalAmt:    inv.TotalAmt,
		Balance:     inv.Balance,
		PrivateNote: inv.PrivateNote,
		EmailStatus: inv.EmailStatus,
		SyncToken:   inv.SyncToken,
		Lines:       []entities.InvoiceLine{},
	}
	if inv.CustomerRef != nil {
		out.CustomerRef = inv.CustomerRef.Value
		out.CustomerName = inv.CustomerRef.Name
	}
	if inv.BillEmail != nil {
		out.BillEmail = inv.BillEmail.Address
	}
	for _, l := range inv.Line {
		if l.DetailType != detailSalesItem || l.SalesItemLineDetail == nil {
			continue
		}
		out.Lines = append(out.Lines, entities.InvoiceLine{
			ID:          l.ID,
			Description: l.Description,
			Qty:         l.SalesItemLineDetail.Qty,
			UnitPrice:   l.SalesItemLineDetail.UnitPrice,
			Amount:      l.Amount,
			ItemRef:     l.SalesItemLineDetail.ItemRef.Value,
			ItemName:    l.SalesItemLineDetail.ItemRef.Name,
		})
	}
	return out
}

// rawInvoice keeps existing lines opaque so a sparse update sends them back
// with every provider field intact.
type rawInvoice struct {
	ID          string            `json:"Id"`
	SyncToken   string            `json:"SyncToken"`
	PrivateNote string            `json:"PrivateNote,omitempty"`
	Line        []json.RawMessage `json:"Line"`
}

type sparseInvoiceUpdate struct {
	ID          string `json:"Id"`
	SyncToken   string `json:"SyncToken"`
	Sparse      bool   `json:"sparse"`
	Line        []any  `json:"Line,omitempty"`
	PrivateNote string `json:"PrivateNote,omitempty"`
}

type qboItem struct {
	ID          string `json:"Id"`
	Name        string `json:"Name"`
	Description string `json:"Description,omitempty"`
	Active      *bool  `json:"Active,omitempty"`
}

type queryResponse struct {
	QueryResponse struct {
		Customer []qboCustomer `json:"Customer"`
		Invoice  []qboInvoice  `json:"Invoice"`
		Item     []qboItem     `json:"Item"`
	} `json:"QueryResponse"`
}

type customerEnvelope struct {
	Customer qboCustomer `json:"Customer"`
}

type invoiceEnvelope struct {
	Invoice qboInvoice `json:"Invoice"`
}

type rawInvoiceEnvelope struct {
	Invoice rawInvoice `json:"Invoice"`
}
