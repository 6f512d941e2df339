package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"locksmith_invoicing/internal/adapter/http/handlers"
	"locksmith_invoicing/internal/adapter/persistence/repository"
	"locksmith_invoicing/internal/config"
	"locksmith_invoicing/internal/infrastructure/accounting"
	"locksmith_invoicing/internal/infrastructure/database"
	"locksmith_invoicing/internal/infrastructure/metrics"
	"locksmith_invoicing/internal/infrastructure/oauth"
	"locksmith_invoicing/internal/infrastructure/security"
	"locksmith_invoicing/internal/infrastructure/session"
	"locksmith_invoicing/internal/infrastructure/vin"
	"locksmith_invoicing/internal/usecase"
	"locksmith_invoicing/internal/usecase/interfaces"
)

const (
	shutdownTimeout = 15 * time.Second
	sweepInterval   = time.Minute
	// vPIC asks clients to stay polite; lookups beyond this wait.
	vinRatePerSecond = 5
)

// Stores are the persistent collaborators chosen by STORAGE_BACKEND.
type Stores struct {
	Operators interfaces.IOperatorRepository
	Receipts  interfaces.IJobReceiptRepository
}

// OpenStores connects the configured backend and seeds operators from
// OPERATORS_JSON. DynamoDB tables are created when DYNAMODB_ENDPOINT points
// at a local instance.
func OpenStores(ctx context.Context, cfg config.Config, log *zap.Logger) (Stores, error) {
	seed, err := repository.ParseOperatorsJSON(cfg.OperatorsJSON)
	if err != nil {
		return Stores{}, err
	}

	if cfg.StorageBackend == config.StorageMemory {
		log.Info("using in-memory storage", zap.Int("operators", len(seed)))
		return Stores{
			Operators: repository.NewOperatorMemoryRepository(seed...),
			Receipts:  repository.NewJobReceiptMemoryRepository(),
		}, nil
	}

	ddb, err := database.ConnectDynamoDB(ctx)
	if err != nil {
		return Stores{}, err
	}
	if database.LocalEndpoint() {
		tables := map[string]string{
			repository.OperatorsTableName():   "email",
			repository.JobReceiptsTableName(): "id",
		}
		for table, pk := range tables {
			if err := database.EnsureTable(ctx, ddb, table, pk); err != nil {
				return Stores{}, fmt.Errorf("ensure table %s: %w", table, err)
			}
		}
	}

	operators := repository.NewOperatorDynamoRepository(ddb)
	for _, op := range seed {
		if _, err := operators.Upsert(ctx, op); err != nil {
			return Stores{}, fmt.Errorf("seed operator: %w", err)
		}
	}
	log.Info("using dynamodb storage", zap.Int("seeded_operators", len(seed)))
	return Stores{
		Operators: operators,
		Receipts:  repository.NewJobReceiptDynamoRepository(ddb),
	}, nil
}

// App is the assembled service.
type App struct {
	Router   *gin.Engine
	Sessions *session.MemoryStore
}

// Build wires collaborators, use cases and handlers.
func Build(cfg config.Config, stores Stores, log *zap.Logger) *App {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	httpClient := &http.Client{Timeout: cfg.QBTimeout + 5*time.Second}

	sessions := session.NewMemoryStore(cfg.SessionIdleTTL)
	tokens := oauth.NewTokenManager(oauth.Config{
		ClientID:     cfg.QBClientID,
		ClientSecret: cfg.QBClientSecret,
		RedirectURL:  cfg.QBRedirectURI,
		AuthURL:      cfg.QBAuthURL,
		TokenURL:     cfg.QBTokenURL,
		Scopes:       cfg.QBScopes,
	}, httpClient, log, m)
	gateway := accounting.NewGateway(accounting.Config{
		BaseURL:      cfg.QBBaseURL,
		MinorVersion: cfg.QBMinorVersion,
		Timeout:      cfg.QBTimeout,
		Location:     cfg.QBLocation,
	}, tokens, httpClient, log, m)
	decoder := vin.NewNHTSADecoder(vin.Config{
		BaseURL:       cfg.NHTSABaseURL,
		CacheTTL:      cfg.VINCacheTTL,
		Timeout:       10 * time.Second,
		RatePerSecond: vinRatePerSecond,
	}, httpClient, log, m)

	authUseCase := usecase.NewAuthUseCase(
		stores.Operators,
		security.NewPasswordHasher(security.BcryptCost),
		security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiration),
		sessions,
		m,
	)
	customerUseCase := usecase.NewCustomerUseCase(sessions, gateway)

	h := Handlers{
		Auth: authUseCase,
		Session: handlers.NewSessionHandler(authUseCase, handlers.CookieConfig{
			Secure: cfg.SecureCookies(),
		}),
		QuickBooks: handlers.NewQuickBooksHandler(usecase.NewQuickBooksUseCase(sessions, tokens, gateway)),
		Customer:   handlers.NewCustomerHandler(customerUseCase),
		Invoice:    handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(sessions, gateway)),
		Job:        handlers.NewJobHandler(usecase.NewJobUseCase(sessions, gateway, decoder, stores.Receipts, m)),
		Vehicle:    handlers.NewVehicleHandler(usecase.NewVehicleUseCase(decoder)),
	}

	if cfg.Environment == config.EnvironmentProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(h, Options{
		Metrics:            m.Handler(),
		LoginRatePerMinute: cfg.LoginRatePerMinute,
		Swagger:            cfg.Environment != config.EnvironmentProduction,
	})
	return &App{Router: router, Sessions: sessions}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	stores, err := OpenStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	app := Build(cfg, stores, log)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.SessionIdleTTL > 0 {
		g.Go(func() error {
			sweepSessions(ctx, app.Sessions, log)
			return nil
		})
	}
	return g.Wait()
}

func sweepSessions(ctx context.Context, sessions *session.MemoryStore, log *zap.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Sweep(); n > 0 {
				log.Debug("expired sessions dropped", zap.Int("count", n))
			}
		}
	}
}
