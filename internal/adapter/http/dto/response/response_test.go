package response

import (
	"testing"
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		ID:          "130",
		CustomerRef: "58",
		TxnDate:     "2026-10-15",
		TotalAmt:    39.98,
		PrivateNote: entities.InvoiceClosedNote,
		SyncToken:   "3",
		Lines:       []entities.InvoiceLine{{Description: "x", Qty: 2, UnitPrice: 19.99, Amount: 39.98, ItemRef: "7"}},
	}
	res := FromInvoice(inv)
	if res.ID != "130" || !res.Closed || len(res.Lines) != 1 || res.Lines[0].Amount != 39.98 {
		t.Fatalf("unexpected mapping: %+v", res)
	}
}

func TestFromInvoice_EmptyLinesIsEmptySlice(t *testing.T) {
	res := FromInvoice(entities.Invoice{ID: "1"})
	if res.Lines == nil {
		t.Fatalf("expected empty slice so JSON renders []")
	}
}

func TestFromVehicle(t *testing.T) {
	res := FromVehicle(entities.VehicleInfo{VIN: "V", Year: 2003, Make: "HONDA", Model: "Accord"})
	if res.Summary != "2003 HONDA Accord" {
		t.Fatalf("unexpected summary %q", res.Summary)
	}
}

func TestFromConnectionStatus(t *testing.T) {
	res := FromConnectionStatus(usecase.ConnectionStatus{State: entities.TokenStateNoCredentials})
	if res.Connected || res.AccessExpiresAt != nil {
		t.Fatalf("unexpected status %+v", res)
	}

	exp := time.Now().Add(time.Hour)
	res = FromConnectionStatus(usecase.ConnectionStatus{State: entities.TokenStateAuthorized, RealmID: "9130", AccessExpiresAt: exp})
	if !res.Connected || res.RealmID != "9130" || res.AccessExpiresAt == nil {
		t.Fatalf("unexpected status %+v", res)
	}
}

func TestFromJobResult(t *testing.T) {
	res := FromJobResult(usecase.JobResult{Invoice: entities.Invoice{ID: "130"}, Vehicle: entities.VehicleInfo{VIN: "V"}, Replayed: true})
	if res.Invoice.ID != "130" || res.Vehicle.VIN != "V" || !res.Replayed {
		t.Fatalf("unexpected mapping %+v", res)
	}
}
