package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"locksmith_invoicing/internal/adapter/http/handlers/mocks"
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
)

func TestInvoiceHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvoiceUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/invoices", NewInvoiceHandler(uc).List)

	uc.EXPECT().List(gomock.Any(), testSession, "42").Return([]entities.Invoice{{ID: "130"}, {ID: "131"}}, nil)

	w := doRequest(r, http.MethodGet, "/v1/invoices?customer_id=42", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestInvoiceHandler_Current(t *testing.T) {
	t.Run("none today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newTestRouter()
		r.GET("/v1/invoices/current", NewInvoiceHandler(uc).Current)

		uc.EXPECT().Current(gomock.Any(), testSession).Return(entities.Invoice{}, interfaces.ErrInvoiceNotFound)

		w := doRequest(r, http.MethodGet, "/v1/invoices/current", "", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("route does not shadow id lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc)
		r := newTestRouter()
		r.GET("/v1/invoices/current", h.Current)
		r.GET("/v1/invoices/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), testSession, "130").Return(entities.Invoice{ID: "130"}, nil)

		w := doRequest(r, http.MethodGet, "/v1/invoices/130", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestInvoiceHandler_Send(t *testing.T) {
	const path = "/v1/invoices/send"

	t.Run("empty body sends today's invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewInvoiceHandler(uc).Send)

		uc.EXPECT().Send(gomock.Any(), testSession, usecase.SendInvoiceInput{}).
			Return(entities.Invoice{ID: "130", PrivateNote: entities.InvoiceClosedNote, EmailStatus: "EmailSent"}, nil)

		w := doRequest(r, http.MethodPost, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("explicit invoice and recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewInvoiceHandler(uc).Send)

		uc.EXPECT().Send(gomock.Any(), testSession, usecase.SendInvoiceInput{InvoiceID: "130", SendTo: "ap@acme.test"}).
			Return(entities.Invoice{ID: "130"}, nil)

		w := doRequest(r, http.MethodPost, path, `{"invoice_id":"130","send_to":"ap@acme.test"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("bad recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewInvoiceHandler(uc).Send)

		w := doRequest(r, http.MethodPost, path, `{"send_to":"not-an-email"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("upstream detail stays out of body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewInvoiceHandler(uc).Send)

		upstream := fmt.Errorf("%w: send: token=abc123", interfaces.ErrExternalServiceUnavailable)
		uc.EXPECT().Send(gomock.Any(), testSession, gomock.Any()).Return(entities.Invoice{}, upstream)

		w := doRequest(r, http.MethodPost, path, "", nil)
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
		if got := w.Body.String(); strings.Contains(got, "abc123") {
			t.Fatalf("upstream detail leaked: %s", got)
		}
	})
}
