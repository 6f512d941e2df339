package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "locksmith_invoicing/docs"
	"locksmith_invoicing/internal/adapter/http/handlers"
	"locksmith_invoicing/internal/adapter/http/middleware"
	"locksmith_invoicing/internal/infrastructure/logger"
	"locksmith_invoicing/internal/usecase"
)

const (
	PathMetrics = "/metrics"
	PathSwagger = "/swagger/*any"
	PathV1      = "/v1"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Auth       usecase.IAuthUseCase
	Session    *handlers.SessionHandler
	QuickBooks *handlers.QuickBooksHandler
	Customer   *handlers.CustomerHandler
	Invoice    *handlers.InvoiceHandler
	Job        *handlers.JobHandler
	Vehicle    *handlers.VehicleHandler
}

// Options tunes the router.
type Options struct {
	// Metrics serves /metrics when set.
	Metrics            http.Handler
	LoginRatePerMinute int
	Swagger            bool
}

// NewRouter builds the gin engine with the /v1 API mounted.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(logger.GinMiddleware(logger.MiddlewareConfig{
		SkipPaths: []string{PathV1 + PathPing, PathMetrics},
	}))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	if opts.Metrics != nil {
		router.GET(PathMetrics, gin.WrapH(opts.Metrics))
	}
	if opts.Swagger {
		router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group(PathV1)
	addPingRoutes(v1)
	addLoginRoute(v1, h.Session, opts.LoginRatePerMinute)

	private := v1.Group("")
	private.Use(middleware.Auth(h.Auth), middleware.CSRF())
	addSessionRoutes(private, h.Session)
	addQuickBooksRoutes(private, h.QuickBooks, h.Customer)
	addInvoicingRoutes(private, h.Customer, h.Invoice, h.Job, h.Vehicle)

	return router
}
