package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"locksmith_invoicing/internal/adapter/http/handlers/mocks"
	response "locksmith_invoicing/internal/adapter/http/dto/response"
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
)

func TestJobHandler_Submit(t *testing.T) {
	const path = "/v1/jobs"

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewJobHandler(uc).Submit)

		w := doRequest(r, http.MethodPost, path, "{", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewJobHandler(uc).Submit)

		w := doRequest(r, http.MethodPost, path, `{"vin":"1HGCM82633A004352"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewJobHandler(uc).Submit)

		want := usecase.SubmitJobInput{
			OperatorEmail:  testOperator,
			CustomerID:     "42",
			VIN:            "1HGCM82633A004352",
			Service:        "rekey",
			Qty:            1,
			UnitPrice:      85,
			IdempotencyKey: "k-1",
		}
		uc.EXPECT().SubmitJob(gomock.Any(), testSession, want).
			DoAndReturn(func(_ context.Context, _ string, in usecase.SubmitJobInput) (usecase.JobResult, error) {
				return usecase.JobResult{
					Invoice: entities.Invoice{ID: "130", CustomerRef: "42", Lines: []entities.InvoiceLine{entities.NewInvoiceLine("Rekey", in.Qty, in.UnitPrice, "7")}},
					Vehicle: entities.VehicleInfo{VIN: in.VIN, Make: "HONDA", Model: "Accord", Year: 2003},
				}, nil
			})

		body := `{"customer_id":" 42 ","vin":"1HGCM82633A004352","service":"rekey","rate":85}`
		w := doRequest(r, http.MethodPost, path, body, map[string]string{HeaderIdempotencyKey: " k-1 "})
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got response.JobResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.Invoice.ID != "130" || got.Vehicle.Summary != "2003 HONDA Accord" {
			t.Fatalf("unexpected body: %+v", got)
		}
		if got.Invoice.Lines[0].Amount != 85 {
			t.Fatalf("expected amount 85, got %v", got.Invoice.Lines[0].Amount)
		}
	})

	t.Run("capitalized qty and unit price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewJobHandler(uc).Submit)

		want := usecase.SubmitJobInput{
			OperatorEmail: testOperator,
			VIN:           "1HGCM82633A004352",
			Service:       "Generate Smart Key",
			Qty:           2,
			UnitPrice:     19.99,
		}
		uc.EXPECT().SubmitJob(gomock.Any(), testSession, want).
			Return(usecase.JobResult{Invoice: entities.Invoice{ID: "130", TotalAmt: 39.98}}, nil)

		body := `{"vin":"1HGCM82633A004352","service":"Generate Smart Key","Qty":2,"UnitPrice":19.99}`
		w := doRequest(r, http.MethodPost, path, body, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("replay returns 200", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewJobHandler(uc).Submit)

		uc.EXPECT().SubmitJob(gomock.Any(), testSession, gomock.Any()).
			Return(usecase.JobResult{Invoice: entities.Invoice{ID: "130"}, Replayed: true}, nil)

		w := doRequest(r, http.MethodPost, path, `{"vin":"1HGCM82633A004352","service":"rekey","unit_price":85}`, map[string]string{HeaderIdempotencyKey: "k-1"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"no customer", usecase.ErrNoCustomerSelected, http.StatusBadRequest, "NO_CUSTOMER_SELECTED"},
		{"invalid job", usecase.ErrInvalidJob, http.StatusBadRequest, "INVALID_JOB"},
		{"unknown item", interfaces.ErrUnknownCatalogItem, http.StatusNotFound, "CATALOG_ITEM_NOT_FOUND"},
		{"in progress", usecase.ErrJobInProgress, http.StatusConflict, "JOB_IN_PROGRESS"},
		{"vin lookup", interfaces.ErrVehicleLookupFailed, http.StatusBadGateway, "VIN_LOOKUP_FAILED"},
		{"not connected", interfaces.ErrNotConnected, http.StatusUnauthorized, "QB_NOT_CONNECTED"},
		{"revoked", interfaces.ErrCredentialsRevoked, http.StatusUnauthorized, "QB_RECONNECT_REQUIRED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIJobUseCase(ctrl)
			r := newTestRouter()
			r.POST(path, NewJobHandler(uc).Submit)

			uc.EXPECT().SubmitJob(gomock.Any(), testSession, gomock.Any()).Return(usecase.JobResult{}, tc.err)

			w := doRequest(r, http.MethodPost, path, `{"vin":"1HGCM82633A004352","service":"rekey","unit_price":85}`, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if code := errorCode(t, w); code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, code)
			}
		})
	}
}
