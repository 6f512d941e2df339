package entities

import "testing"

func TestLineAmount(t *testing.T) {
	tests := []struct {
		name string
		qty  float64
		rate float64
		want float64
	}{
		{"simple", 2, 19.99, 39.98},
		{"half cent rounds up", 3, 0.005, 0.02},
		{"float noise", 3, 0.1, 0.3},
		{"fractional qty", 1.5, 33.33, 50},
		{"negative credit", 1, -10.005, -10.01},
		{"zero", 0, 120, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineAmount(tt.qty, tt.rate); got != tt.want {
				t.Fatalf("LineAmount(%v, %v) = %v, want %v", tt.qty, tt.rate, got, tt.want)
			}
		})
	}
}

func TestNewInvoiceLine(t *testing.T) {
	line := NewInvoiceLine("Rekey lock", 2, 19.99, "7")
	if line.Amount != 39.98 || line.UnitPrice != 19.99 || line.ItemRef != "7" {
		t.Fatalf("unexpected line: %+v", line)
	}
}

func TestInvoice_Closed(t *testing.T) {
	if (Invoice{PrivateNote: "note"}).Closed() {
		t.Fatalf("expected open invoice")
	}
	if !(Invoice{PrivateNote: InvoiceClosedNote}).Closed() {
		t.Fatalf("expected closed invoice")
	}
}
