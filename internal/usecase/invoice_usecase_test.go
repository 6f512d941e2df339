package usecase

import (
	"context"
	"errors"
	"testing"

	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase/interfaces"
	mock_interfaces "locksmith_invoicing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Current(t *testing.T) {
	t.Run("no customer selected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(connectedStore(""), gw)

		_, err := uc.Current(context.Background(), testSession)
		if !errors.Is(err, ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})

	t.Run("none open today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(connectedStore("58"), gw)

		gw.EXPECT().FindTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{}, false, nil)

		_, err := uc.Current(context.Background(), testSession)
		if !errors.Is(err, interfaces.ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(connectedStore("58"), gw)

		gw.EXPECT().FindTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130"}, true, nil)

		inv, err := uc.Current(context.Background(), testSession)
		if err != nil || inv.ID != "130" {
			t.Fatalf("unexpected result %+v / %v", inv, err)
		}
	})
}

func TestInvoiceUseCase_Send(t *testing.T) {
	t.Run("current invoice is sent closed and selection cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(store, gw)

		gomock.InOrder(
			gw.EXPECT().FindTodayInvoice(gomock.Any(), gomock.Any(), "58").Return(entities.Invoice{ID: "130", CustomerRef: "58"}, true, nil),
			gw.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), "130", "owner@example.com").
				Return(entities.Invoice{ID: "130", CustomerRef: "58", EmailStatus: "EmailSent"}, nil),
			gw.EXPECT().CloseInvoice(gomock.Any(), gomock.Any(), "130").
				Return(entities.Invoice{ID: "130", CustomerRef: "58", PrivateNote: entities.InvoiceClosedNote}, nil),
		)

		inv, err := uc.Send(context.Background(), testSession, SendInvoiceInput{SendTo: "owner@example.com"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !inv.Closed() || inv.EmailStatus != "EmailSent" {
			t.Fatalf("unexpected invoice %+v", inv)
		}
		if _, ok := store.Get(testSession); ok {
			t.Fatalf("expected selected customer cleared")
		}
	})

	t.Run("send failure keeps selection and skips close", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(store, gw)

		gw.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), "130", "").Return(entities.Invoice{}, interfaces.ErrExternalServiceUnavailable)

		_, err := uc.Send(context.Background(), testSession, SendInvoiceInput{InvoiceID: "130"})
		if !errors.Is(err, interfaces.ErrExternalServiceUnavailable) {
			t.Fatalf("expected ErrExternalServiceUnavailable, got %v", err)
		}
		if ref, _ := store.Get(testSession); ref != "58" {
			t.Fatalf("selection should survive a failed send")
		}
	})

	t.Run("close failure still reports sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(connectedStore("58"), gw)

		gw.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), "130", "").Return(entities.Invoice{ID: "130", CustomerRef: "58", EmailStatus: "EmailSent"}, nil)
		gw.EXPECT().CloseInvoice(gomock.Any(), gomock.Any(), "130").Return(entities.Invoice{}, interfaces.ErrInvoiceConflict)

		inv, err := uc.Send(context.Background(), testSession, SendInvoiceInput{InvoiceID: "130"})
		if err != nil || inv.EmailStatus != "EmailSent" {
			t.Fatalf("unexpected result %+v / %v", inv, err)
		}
	})

	t.Run("explicit invoice of another customer keeps selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := connectedStore("58")
		gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
		uc := NewInvoiceUseCase(store, gw)

		gw.EXPECT().SendInvoice(gomock.Any(), gomock.Any(), "200", "").Return(entities.Invoice{ID: "200", CustomerRef: "77"}, nil)
		gw.EXPECT().CloseInvoice(gomock.Any(), gomock.Any(), "200").Return(entities.Invoice{ID: "200", CustomerRef: "77"}, nil)

		if _, err := uc.Send(context.Background(), testSession, SendInvoiceInput{InvoiceID: "200"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if ref, _ := store.Get(testSession); ref != "58" {
			t.Fatalf("selection should be kept, got %q", ref)
		}
	})

	t.Run("no invoice and no selection", func(t *testing.T) {
		uc := NewInvoiceUseCase(connectedStore(""), nil)
		_, err := uc.Send(context.Background(), testSession, SendInvoiceInput{})
		if !errors.Is(err, ErrNoCustomerSelected) {
			t.Fatalf("expected ErrNoCustomerSelected, got %v", err)
		}
	})
}

func TestInvoiceUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockIAccountingGateway(ctrl)
	uc := NewInvoiceUseCase(connectedStore(""), gw)

	gw.EXPECT().ListInvoices(gomock.Any(), gomock.Any(), "").Return([]entities.Invoice{{ID: "1"}, {ID: "2"}}, nil)

	out, err := uc.List(context.Background(), testSession, " ")
	if err != nil || len(out) != 2 {
		t.Fatalf("unexpected result %v / %v", out, err)
	}
}
