package handlers

import (
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"locksmith_invoicing/internal/adapter/http/handlers/mocks"
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
)

func TestCustomerHandler_Search(t *testing.T) {
	const path = "/v1/qb/customers"

	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.GET(path, NewCustomerHandler(uc).Search)

		uc.EXPECT().Search(gomock.Any(), testSession, "acme", defaultCustomerLimit).
			Return([]entities.Customer{{ID: "42", DisplayName: "Acme Storage"}}, nil)

		w := doRequest(r, http.MethodGet, path+"?query=acme", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	for _, limit := range []string{"0", "101", "ten"} {
		t.Run("rejects limit "+limit, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockICustomerUseCase(ctrl)
			r := newTestRouter()
			r.GET(path, NewCustomerHandler(uc).Search)

			w := doRequest(r, http.MethodGet, path+"?limit="+limit, "", nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
		})
	}

	t.Run("explicit limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.GET(path, NewCustomerHandler(uc).Search)

		uc.EXPECT().Search(gomock.Any(), testSession, "", 100).Return(nil, nil)

		w := doRequest(r, http.MethodGet, path+"?limit=100", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})
}

func TestCustomerHandler_Create(t *testing.T) {
	const path = "/v1/qb/customers"

	t.Run("missing display name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewCustomerHandler(uc).Create)

		w := doRequest(r, http.MethodPost, path, `{"email":"a@b.c"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewCustomerHandler(uc).Create)

		uc.EXPECT().Create(gomock.Any(), testSession, entities.CustomerCreate{DisplayName: "Acme Storage", Phone: "555-0100"}).
			Return(entities.Customer{ID: "43", DisplayName: "Acme Storage"}, nil)

		w := doRequest(r, http.MethodPost, path, `{"display_name":" Acme Storage ","phone":"555-0100"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_Select(t *testing.T) {
	const path = "/v1/qb/session-customer"

	t.Run("unknown customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewCustomerHandler(uc).Select)

		uc.EXPECT().Select(gomock.Any(), testSession, "999").Return(entities.Customer{}, interfaces.ErrCustomerNotFound)

		w := doRequest(r, http.MethodPost, path, `{"customer_id":"999"}`, nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICustomerUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewCustomerHandler(uc).Select)

		uc.EXPECT().Select(gomock.Any(), testSession, "42").Return(entities.Customer{ID: "42"}, nil)

		w := doRequest(r, http.MethodPost, path, `{"customer_id":"42"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCustomerHandler_SelectedAndReset(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICustomerUseCase(ctrl)
	h := NewCustomerHandler(uc)
	r := newTestRouter()
	r.GET("/v1/qb/session-customer", h.Selected)
	r.POST("/v1/reset-customer", h.Reset)

	gomock.InOrder(
		uc.EXPECT().Reset(gomock.Any(), testSession),
		uc.EXPECT().Selected(gomock.Any(), testSession).Return(entities.Customer{}, usecase.ErrNoCustomerSelected),
	)

	if w := doRequest(r, http.MethodPost, "/v1/reset-customer", "", nil); w.Code != http.StatusOK {
		t.Fatalf("reset: expected 200, got %d", w.Code)
	}
	w := doRequest(r, http.MethodGet, "/v1/qb/session-customer", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("selected: expected 400, got %d", w.Code)
	}
	if code := errorCode(t, w); code != "NO_CUSTOMER_SELECTED" {
		t.Fatalf("unexpected code %s", code)
	}
}
