package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/infrastructure/session"
	"locksmith_invoicing/internal/usecase/interfaces"
	mock_interfaces "locksmith_invoicing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const (
	testSession = "sess-1"
	testVIN     = "1HGCM82633A004352"
)

func connectedStore(customerRef string) *session.MemoryStore {
	store := session.NewMemoryStore(0)
	store.SetCredentials(testSession, entities.CredentialPair{
		AccessToken:     "access-1",
		RefreshToken:    "refresh-1",
		RealmID:         "9130",
		AccessExpiresAt: time.Now().Add(time.Hour),
	})
	if customerRef != "" {
		store.Set(testSession, customerRef)
	}
	return store
}

func validInput() SubmitJobInput {
	return SubmitJobInput{
		OperatorEmail: "tech@example.com",
		VIN:           testVIN,
		Service:       string(entities.ServiceSmartKey),
		Qty:           2,
		UnitPrice:     19.99,
	}
}

func TestJobUseCase_RecordJob(t *testing.T) {
	job := entities.Job{
		Vehicle:   entities.VehicleInfo{VIN: testVIN, Year: 2003, Make: "HONDA", Model: "Accord"},
		Service:   entities.ServiceSmartKey,
		Qty:       2,
		UnitPrice: 19.99,
	}

	t.Run("no customer selected makes no external call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(sessions, gw, nil, nil, nil)

		sessions.EXPECT().Get(testSession).Return("", false)

		_, err := uc.RecordJob(context.Background(), testSession, job)
		if !errors.Is(err, ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})

	t.Run("not connected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := session.NewMemoryStore(0)
		store.Set(testSession, "58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(store, gw, nil, nil, nil)

		_, err := uc.RecordJob(context.Background(), testSession, job)
		if !errors.Is(err, interfaces.ErrNotConnected) {
			t.Fatalf("expected ErrNotConnected, got %v", err)
		}
	})

	t.Run("unknown catalog item stops before invoice lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, nil, nil, nil)

		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), string(entities.ServiceSmartKey)).
			Return("", interfaces.ErrUnknownCatalogItem)

		_, err := uc.RecordJob(context.Background(), testSession, job)
		if !errors.Is(err, interfaces.ErrUnknownCatalogItem) {
			t.Fatalf("expected ErrUnknownCatalogItem, got %v", err)
		}
	})

	t.Run("appends priced line with vehicle summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, nil, nil, nil)

		gomock.InOrder(
			gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), string(entities.ServiceSmartKey)).Return("7", nil),
			gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130", CustomerRef: "58"}, nil),
			gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *entities.CredentialPair, _ string, line entities.InvoiceLine) (entities.Invoice, error) {
					want := "Generate Smart Key for 1HGCM82633A004352 (2003 HONDA Accord)"
					if line.Description != want {
						t.Fatalf("description = %q, want %q", line.Description, want)
					}
					if line.Amount != 39.98 || line.ItemRef != "7" || line.Qty != 2 || line.UnitPrice != 19.99 {
						t.Fatalf("unexpected line %+v", line)
					}
					return entities.Invoice{ID: "130", CustomerRef: "58", TotalAmt: 39.98, Lines: []entities.InvoiceLine{line}}, nil
				}),
		)

		inv, err := uc.RecordJob(context.Background(), testSession, job)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if inv.ID != "130" || len(inv.Lines) != 1 {
			t.Fatalf("unexpected invoice %+v", inv)
		}
	})

	t.Run("partial vehicle omits summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, nil, nil, nil)

		partial := job
		partial.Vehicle = entities.VehicleInfo{VIN: testVIN, Make: "HONDA", Model: "Accord"}

		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).Return("7", nil)
		gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, nil)
		gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *entities.CredentialPair, _ string, line entities.InvoiceLine) (entities.Invoice, error) {
				if line.Description != "Generate Smart Key for 1HGCM82633A004352" {
					t.Fatalf("unexpected description %q", line.Description)
				}
				return entities.Invoice{ID: "130"}, nil
			})

		if _, err := uc.RecordJob(context.Background(), testSession, partial); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("conflict is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, nil, nil, nil)

		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).Return("7", nil)
		gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, nil)
		gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).Return(entities.Invoice{}, interfaces.ErrInvoiceConflict)

		_, err := uc.RecordJob(context.Background(), testSession, job)
		if !errors.Is(err, interfaces.ErrInvoiceConflict) {
			t.Fatalf("expected ErrInvoiceConflict, got %v", err)
		}
	})

	t.Run("refreshed credentials are stored back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(store, gw, nil, nil, nil)

		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds *entities.CredentialPair, _ string) (string, error) {
				creds.Replace(entities.CredentialPair{AccessToken: "access-2", RefreshToken: "refresh-2"})
				return "7", nil
			})
		gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, nil)
		gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).Return(entities.Invoice{ID: "130"}, nil)

		if _, err := uc.RecordJob(context.Background(), testSession, job); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		creds, _ := store.GetCredentials(testSession)
		if creds.AccessToken != "access-2" || creds.RealmID != "9130" {
			t.Fatalf("expected refreshed pair with realm kept, got realm=%q", creds.RealmID)
		}
	})

	t.Run("revocation sticks after failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewJobUseCase(store, gw, nil, nil, nil)

		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, creds *entities.CredentialPair, _ string) (string, error) {
				creds.MarkRevoked()
				return "", interfaces.ErrCredentialsRevoked
			})

		_, err := uc.RecordJob(context.Background(), testSession, job)
		if !errors.Is(err, interfaces.ErrCredentialsRevoked) {
			t.Fatalf("expected ErrCredentialsRevoked, got %v", err)
		}
		creds, _ := store.GetCredentials(testSession)
		if creds.State(time.Now()) != entities.TokenStateRevoked {
			t.Fatalf("expected stored pair revoked, got %s", creds.State(time.Now()))
		}
	})
}

func TestJobUseCase_SubmitJob(t *testing.T) {
	t.Run("validation happens before any external call", func(t *testing.T) {
		cases := map[string]func(*SubmitJobInput){
			"short vin":       func(in *SubmitJobInput) { in.VIN = "123" },
			"unknown service": func(in *SubmitJobInput) { in.Service = "Key creation" },
			"zero qty":        func(in *SubmitJobInput) { in.Qty = 0 },
			"negative price":  func(in *SubmitJobInput) { in.UnitPrice = -1 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				sessions := mock_interfaces.NewMockISessionStore(ctrl)
				gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
				dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
				uc := NewJobUseCase(sessions, gw, dec, nil, nil)

				in := validInput()
				mutate(&in)
				_, err := uc.SubmitJob(context.Background(), testSession, in)
				if !errors.Is(err, ErrInvalidJob) {
					t.Fatalf("expected ErrInvalidJob, got %v", err)
				}
			})
		}
	})

	t.Run("no customer selected skips vin decode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		uc := NewJobUseCase(connectedStore(""), gw, dec, nil, nil)

		_, err := uc.SubmitJob(context.Background(), testSession, validInput())
		if !errors.Is(err, ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})

	t.Run("customer id selects before recording", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		uc := NewJobUseCase(store, gw, dec, nil, nil)

		in := validInput()
		in.CustomerID = "58"
		in.VIN = "1hgcm82633a004352"

		dec.EXPECT().Decode(gomock.Any(), testVIN).Return(entities.VehicleInfo{VIN: testVIN, Year: 2003, Make: "HONDA", Model: "Accord"}, nil)
		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).Return("7", nil)
		gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, nil)
		gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).Return(entities.Invoice{ID: "130", TotalAmt: 39.98}, nil)

		res, err := uc.SubmitJob(context.Background(), testSession, in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.Invoice.ID != "130" || res.Vehicle.Make != "HONDA" || res.Replayed {
			t.Fatalf("unexpected result %+v", res)
		}
		if ref, _ := store.Get(testSession); ref != "58" {
			t.Fatalf("expected customer 58 selected, got %q", ref)
		}
	})

	t.Run("vin lookup failure aborts job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, dec, nil, nil)

		dec.EXPECT().Decode(gomock.Any(), testVIN).Return(entities.VehicleInfo{}, interfaces.ErrVehicleLookupFailed)

		_, err := uc.SubmitJob(context.Background(), testSession, validInput())
		if !errors.Is(err, interfaces.ErrVehicleLookupFailed) {
			t.Fatalf("expected ErrVehicleLookupFailed, got %v", err)
		}
	})

	t.Run("idempotency key completes receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		receipts := mock_interfaces.NewMockIJobReceiptRepository(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, dec, receipts, nil)

		in := validInput()
		in.IdempotencyKey = "k-1"

		receipts.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.JobReceipt) (entities.JobReceipt, error) {
				if r.ID != "tech@example.com:k-1" || r.Status != entities.JobReceiptPending || r.CustomerRef != "58" {
					t.Fatalf("unexpected receipt %+v", r)
				}
				return r, nil
			})
		dec.EXPECT().Decode(gomock.Any(), testVIN).Return(entities.VehicleInfo{VIN: testVIN}, nil)
		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).Return("7", nil)
		gw.EXPECT().FindOrCreateTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, nil)
		gw.EXPECT().AppendInvoiceLine(gomock.Any(), gomock.Any(), "130", gomock.Any()).Return(entities.Invoice{ID: "130", DocNumber: "1042"}, nil)
		receipts.EXPECT().Complete(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r entities.JobReceipt) (entities.JobReceipt, error) {
				if r.Status != entities.JobReceiptCompleted || r.InvoiceID != "130" || r.DocNumber != "1042" {
					t.Fatalf("unexpected completed receipt %+v", r)
				}
				return r, nil
			})

		if _, err := uc.SubmitJob(context.Background(), testSession, in); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
	})

	t.Run("failure releases receipt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		receipts := mock_interfaces.NewMockIJobReceiptRepository(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, dec, receipts, nil)

		in := validInput()
		in.IdempotencyKey = "k-1"

		receipts.EXPECT().Reserve(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.JobReceipt) (entities.JobReceipt, error) {
			return r, nil
		})
		dec.EXPECT().Decode(gomock.Any(), testVIN).Return(entities.VehicleInfo{VIN: testVIN}, nil)
		gw.EXPECT().ResolveItemByName(gomock.Any(), gomock.Any(), gomock.Any()).Return("", interfaces.ErrUnknownCatalogItem)
		receipts.EXPECT().Release(gomock.Any(), "tech@example.com:k-1").Return(nil)

		_, err := uc.SubmitJob(context.Background(), testSession, in)
		if !errors.Is(err, interfaces.ErrUnknownCatalogItem) {
			t.Fatalf("expected ErrUnknownCatalogItem, got %v", err)
		}
	})

	t.Run("pending receipt is in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		receipts := mock_interfaces.NewMockIJobReceiptRepository(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, dec, receipts, nil)

		in := validInput()
		in.IdempotencyKey = "k-1"
		receipts.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(entities.JobReceipt{ID: "tech@example.com:k-1", Status: entities.JobReceiptPending}, interfaces.ErrJobReceiptExists)

		_, err := uc.SubmitJob(context.Background(), testSession, in)
		if !errors.Is(err, ErrJobInProgress) {
			t.Fatalf("expected ErrJobInProgress, got %v", err)
		}
	})

	t.Run("completed receipt replays without appending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		dec := mock_interfaces.NewMockIVehicleDecoder(ctrl)
		receipts := mock_interfaces.NewMockIJobReceiptRepository(ctrl)
		uc := NewJobUseCase(connectedStore("58"), gw, dec, receipts, nil)

		in := validInput()
		in.IdempotencyKey = "k-1"
		receipts.EXPECT().Reserve(gomock.Any(), gomock.Any()).
			Return(entities.JobReceipt{ID: "tech@example.com:k-1", Status: entities.JobReceiptCompleted, InvoiceID: "130"}, interfaces.ErrJobReceiptExists)
		gw.EXPECT().GetInvoice(gomock.Any(), gomock.Any(), "130").Return(entities.Invoice{ID: "130", TotalAmt: 39.98}, nil)
		dec.EXPECT().Decode(gomock.Any(), testVIN).Return(entities.VehicleInfo{}, interfaces.ErrVehicleLookupFailed)

		res, err := uc.SubmitJob(context.Background(), testSession, in)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !res.Replayed || res.Invoice.ID != "130" || res.Vehicle.VIN != testVIN {
			t.Fatalf("unexpected replay %+v", res)
		}
	})
}
