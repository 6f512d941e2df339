package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"locksmith_invoicing/internal/adapter/http/handlers/mocks"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/domain/entities"
	"locksmith_invoicing/internal/usecase"
)

func TestSessionHandler_Login(t *testing.T) {
	const path = "/v1/session/login"

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewSessionHandler(uc, CookieConfig{}).Login)

		w := doRequest(r, http.MethodPost, path, `{"email":"nope","password":"x"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewSessionHandler(uc, CookieConfig{}).Login)

		uc.EXPECT().Login(gomock.Any(), testOperator, "wrong").Return(usecase.LoginResult{}, usecase.ErrInvalidCredentials)

		w := doRequest(r, http.MethodPost, path, `{"email":"pat@example.com","password":"wrong"}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if code := errorCode(t, w); code != "INVALID_CREDENTIALS" {
			t.Fatalf("unexpected code %s", code)
		}
		if len(w.Result().Cookies()) != 0 {
			t.Fatalf("no cookies expected on failure")
		}
	})

	t.Run("sets cookies and hides token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewSessionHandler(uc, CookieConfig{Secure: true})
		now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
		h.now = func() time.Time { return now }
		r := newTestRouter()
		r.POST(path, h.Login)

		uc.EXPECT().Login(gomock.Any(), testOperator, "s3cret-pass").Return(usecase.LoginResult{
			Operator:  entities.Operator{Email: testOperator, Role: entities.OperatorRoleOwner},
			Token:     "signed.jwt.value",
			SessionID: testSession,
			ExpiresAt: now.Add(time.Hour),
		}, nil)

		w := doRequest(r, http.MethodPost, path, `{"email":"pat@example.com","password":"s3cret-pass"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "signed.jwt.value") {
			t.Fatalf("token leaked into body: %s", w.Body.String())
		}

		cookies := map[string]*http.Cookie{}
		for _, ck := range w.Result().Cookies() {
			cookies[ck.Name] = ck
		}
		access, ok := cookies[middleware.CookieAccessToken]
		if !ok || access.Value != "signed.jwt.value" || !access.HttpOnly || !access.Secure {
			t.Fatalf("unexpected access cookie: %+v", access)
		}
		if access.MaxAge != 3600 {
			t.Fatalf("expected max age 3600, got %d", access.MaxAge)
		}
		if access.SameSite != http.SameSiteNoneMode {
			t.Fatalf("expected SameSite=None for secure cookies")
		}
		csrf, ok := cookies[middleware.CookieCSRF]
		if !ok || csrf.HttpOnly || len(csrf.Value) != 32 {
			t.Fatalf("unexpected csrf cookie: %+v", csrf)
		}
	})
}

func TestSessionHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	r := newTestRouter()
	r.POST("/v1/session/logout", NewSessionHandler(uc, CookieConfig{}).Logout)

	uc.EXPECT().Logout(gomock.Any(), testSession)

	w := doRequest(r, http.MethodPost, "/v1/session/logout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	for _, ck := range w.Result().Cookies() {
		if ck.MaxAge >= 0 {
			t.Fatalf("cookie %s not cleared", ck.Name)
		}
	}
}

func TestSessionHandler_ChangePassword(t *testing.T) {
	const path = "/v1/session/change-password"

	t.Run("short password rejected before use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		r := newTestRouter()
		r.POST(path, NewSessionHandler(uc, CookieConfig{}).ChangePassword)

		w := doRequest(r, http.MethodPost, path, `{"current_password":"old-pass","new_password":"short"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"ok", nil, http.StatusOK, ""},
		{"incorrect", usecase.ErrIncorrectPassword, http.StatusBadRequest, "INCORRECT_PASSWORD"},
		{"unchanged", usecase.ErrPasswordUnchanged, http.StatusBadRequest, "PASSWORD_UNCHANGED"},
		{"operator gone", usecase.ErrOperatorNotFound, http.StatusUnauthorized, "UNAUTHENTICATED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAuthUseCase(ctrl)
			r := newTestRouter()
			r.POST(path, NewSessionHandler(uc, CookieConfig{}).ChangePassword)

			uc.EXPECT().ChangePassword(gomock.Any(), testOperator, "old-pass", "new-pass-1").Return(tc.err)

			w := doRequest(r, http.MethodPost, path, `{"current_password":"old-pass","new_password":"new-pass-1"}`, nil)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
			if tc.code != "" {
				if code := errorCode(t, w); code != tc.code {
					t.Fatalf("expected %s, got %s", tc.code, code)
				}
			}
		})
	}
}

func TestSessionHandler_Current(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIAuthUseCase(ctrl)
	r := newTestRouter()
	r.GET("/v1/session/current", NewSessionHandler(uc, CookieConfig{}).Current)

	uc.EXPECT().Current(gomock.Any(), testOperator).Return(entities.Operator{Email: testOperator, PasswordHash: "$2a$hash", Role: entities.OperatorRoleLocksmith}, nil)

	w := doRequest(r, http.MethodGet, "/v1/session/current", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "$2a$hash") {
		t.Fatalf("password hash leaked: %s", w.Body.String())
	}
}
