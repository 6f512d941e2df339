package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"locksmith_invoicing/internal/adapter/http/handlers"
	"locksmith_invoicing/internal/adapter/http/handlers/mocks"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
)

func testRouter(t *testing.T) (*gin.Engine, *mocks.MockIAuthUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mocks.NewMockIAuthUseCase(ctrl)
	h := Handlers{
		Auth:       auth,
		Session:    handlers.NewSessionHandler(auth, handlers.CookieConfig{}),
		QuickBooks: handlers.NewQuickBooksHandler(mocks.NewMockIQuickBooksUseCase(ctrl)),
		Customer:   handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl)),
		Invoice:    handlers.NewInvoiceHandler(mocks.NewMockIInvoiceUseCase(ctrl)),
		Job:        handlers.NewJobHandler(mocks.NewMockIJobUseCase(ctrl)),
		Vehicle:    handlers.NewVehicleHandler(mocks.NewMockIVehicleUseCase(ctrl)),
	}
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("# metrics\n"))
	})
	return NewRouter(h, Options{Metrics: metrics, LoginRatePerMinute: 5}), auth
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	r, _ := testRouter(t)

	for _, path := range []string{"/v1/ping", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestNewRouter_SwaggerOff(t *testing.T) {
	r, _ := testRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewRouter_PrivateRoutesRequireSession(t *testing.T) {
	routes := []struct{ method, path string }{
		{http.MethodGet, "/v1/session/current"},
		{http.MethodPost, "/v1/session/logout"},
		{http.MethodGet, "/v1/qb/connect"},
		{http.MethodGet, "/v1/qb/callback"},
		{http.MethodGet, "/v1/qb/customers"},
		{http.MethodPost, "/v1/qb/session-customer"},
		{http.MethodPost, "/v1/reset-customer"},
		{http.MethodGet, "/v1/invoices/current"},
		{http.MethodPost, "/v1/invoices/send"},
		{http.MethodGet, "/v1/vehicles/1HGCM82633A004352"},
		{http.MethodPost, "/v1/jobs"},
	}
	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			r, auth := testRouter(t)
			auth.EXPECT().Authenticate(gomock.Any(), "").Return(interfaces.SessionClaims{}, usecase.ErrUnauthenticated)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(rt.method, rt.path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestNewRouter_LoginIsRateLimited(t *testing.T) {
	r, _ := testRouter(t)

	var last int
	for i := 0; i < 6; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/session/login", nil))
		last = w.Code
	}
	// Empty bodies fail validation until the limiter kicks in.
	assert.Equal(t, http.StatusTooManyRequests, last)
}
