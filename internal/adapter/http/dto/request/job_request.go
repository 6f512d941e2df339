package request

import (
	"strings"

	"locksmith_invoicing/internal/usecase"
)

// JobRequest records a locksmith job on today's invoice.
//
// The price is read from unit_price, then UnitPrice (the field name older
// clients send alongside Qty), then rate. qty defaults to 1 when omitted and
// also matches Qty.
type JobRequest struct {
	CustomerID      string   `json:"customer_id"`
	VIN             string   `json:"vin" binding:"required"`
	Service         string   `json:"service" binding:"required"`
	Qty             *float64 `json:"qty"`
	UnitPrice       float64  `json:"unit_price"`
	LegacyUnitPrice float64  `json:"UnitPrice"`
	Rate            float64  `json:"rate"`
}

func (r JobRequest) ResolveQty() float64 {
	if r.Qty == nil {
		return 1
	}
	return *r.Qty
}

func (r JobRequest) ResolveUnitPrice() float64 {
	switch {
	case r.UnitPrice != 0:
		return r.UnitPrice
	case r.LegacyUnitPrice != 0:
		return r.LegacyUnitPrice
	default:
		return r.Rate
	}
}

func (r JobRequest) ToInput(operatorEmail, idempotencyKey string) usecase.SubmitJobInput {
	return usecase.SubmitJobInput{
		OperatorEmail:  operatorEmail,
		CustomerID:     strings.TrimSpace(r.CustomerID),
		VIN:            r.VIN,
		Service:        r.Service,
		Qty:            r.ResolveQty(),
		UnitPrice:      r.ResolveUnitPrice(),
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
}
