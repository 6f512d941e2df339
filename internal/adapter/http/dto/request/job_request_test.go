package request

import (
	"encoding/json"
	"testing"
)

func TestJobRequest_Resolve(t *testing.T) {
	r := JobRequest{VIN: "1HGCM82633A004352", Service: "Generate Smart Key", Rate: 45}
	if got := r.ResolveQty(); got != 1 {
		t.Fatalf("expected default qty 1, got %v", got)
	}
	if got := r.ResolveUnitPrice(); got != 45 {
		t.Fatalf("expected rate fallback 45, got %v", got)
	}

	qty := 2.0
	r2 := JobRequest{Qty: &qty, UnitPrice: 19.99, Rate: 45}
	if got := r2.ResolveQty(); got != 2 {
		t.Fatalf("expected qty 2, got %v", got)
	}
	if got := r2.ResolveUnitPrice(); got != 19.99 {
		t.Fatalf("expected unit_price to win, got %v", got)
	}

	r4 := JobRequest{LegacyUnitPrice: 19.99, Rate: 45}
	if got := r4.ResolveUnitPrice(); got != 19.99 {
		t.Fatalf("expected UnitPrice before rate, got %v", got)
	}

	zero := 0.0
	r3 := JobRequest{Qty: &zero}
	if got := r3.ResolveQty(); got != 0 {
		t.Fatalf("explicit zero qty must be kept for validation, got %v", got)
	}
}

func TestJobRequest_ToInput(t *testing.T) {
	r := JobRequest{CustomerID: " 58 ", VIN: "1HGCM82633A004352", Service: "Generate Smart Key", UnitPrice: 10}
	in := r.ToInput("tech@example.com", " key-1 ")
	if in.CustomerID != "58" || in.IdempotencyKey != "key-1" || in.OperatorEmail != "tech@example.com" || in.Qty != 1 {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestCreateCustomerRequest_ToEntity(t *testing.T) {
	c := CreateCustomerRequest{DisplayName: " Ana ", Phone: " 555 "}.ToEntity()
	if c.DisplayName != "Ana" || c.Phone != "555" || c.Email != "" {
		t.Fatalf("unexpected entity %+v", c)
	}
}

func TestJobRequest_DecodesCapitalizedFields(t *testing.T) {
	var r JobRequest
	body := `{"vin":"1HGCM82633A004352","service":"Generate Smart Key","Qty":2,"UnitPrice":19.99}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := r.ResolveQty(); got != 2 {
		t.Fatalf("expected qty 2, got %v", got)
	}
	if got := r.ResolveUnitPrice(); got != 19.99 {
		t.Fatalf("expected unit price 19.99, got %v", got)
	}
}
