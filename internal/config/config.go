package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"

	qbProductionBaseURL = "https://quickbooks.api.intuit.com/v3/company"
	qbSandboxBaseURL    = "https://sandbox-quickbooks.api.intuit.com/v3/company"
	qbProductionAuthURL = "https://appcenter.intuit.com/connect/oauth2"
	qbSandboxAuthURL    = "https://sandbox.appcenter.intuit.com/connect/oauth2"
	qbTokenURL          = "https://oauth.platform.intuit.com/oauth2/v1/tokens/bearer"
	qbDefaultScope      = "com.intuit.quickbooks.accounting"
	nhtsaDefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the process configuration, read once at startup.
//
// Supported env vars (see Load for defaults):
//   - ENVIRONMENT, PORT, STORAGE_BACKEND, LOG_LEVEL, LOG_FORMAT
//   - JWT_SECRET, JWT_EXPIRATION_MINUTES, SESSION_IDLE_TTL, LOGIN_RATE_PER_MINUTE
//   - QB_CLIENT_ID, QB_CLIENT_SECRET, QB_REDIRECT_URI, QB_ENVIRONMENT, QB_SCOPES,
//     QB_BASE_URL, QB_AUTH_URL, QB_TOKEN_URL, QB_MINOR_VERSION, QB_TIMEOUT, QB_TIMEZONE
//   - NHTSA_BASE_URL, VIN_CACHE_TTL
//   - OPERATORS_JSON (memory storage seed)
type Config struct {
	Environment    string
	Port           int
	StorageBackend string
	LogLevel       string
	LogFormat      string

	JWTSecret          string
	JWTExpiration      time.Duration
	SessionIdleTTL     time.Duration
	LoginRatePerMinute int

	QBClientID     string
	QBClientSecret string
	QBRedirectURI  string
	QBEnvironment  string
	QBScopes       []string
	QBBaseURL      string
	QBAuthURL      string
	QBTokenURL     string
	QBMinorVersion string
	QBTimeout      time.Duration
	QBLocation     *time.Location

	NHTSABaseURL string
	VINCacheTTL  time.Duration

	OperatorsJSON string
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	env := getenvDefault("ENVIRONMENT", EnvironmentDevelopment)
	qbEnv := strings.ToLower(getenvDefault("QB_ENVIRONMENT", "sandbox"))

	baseURL, authURL := qbSandboxBaseURL, qbSandboxAuthURL
	if qbEnv == EnvironmentProduction {
		baseURL, authURL = qbProductionBaseURL, qbProductionAuthURL
	}

	loc, err := time.LoadLocation(getenvDefault("QB_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: QB_TIMEZONE: %v", ErrInvalidConfig, err)
	}

	cfg := Config{
		Environment:    env,
		Port:           getenvInt("PORT", 8080),
		StorageBackend: strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageMemory)),
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
		LogFormat:      getenvDefault("LOG_FORMAT", defaultLogFormat(env)),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTExpiration:      time.Duration(getenvInt("JWT_EXPIRATION_MINUTES", 720)) * time.Minute,
		SessionIdleTTL:     getenvDuration("SESSION_IDLE_TTL", 0),
		LoginRatePerMinute: getenvInt("LOGIN_RATE_PER_MINUTE", 10),

		QBClientID:     os.Getenv("QB_CLIENT_ID"),
		QBClientSecret: os.Getenv("QB_CLIENT_SECRET"),
		QBRedirectURI:  os.Getenv("QB_REDIRECT_URI"),
		QBEnvironment:  qbEnv,
		QBScopes:       strings.Fields(getenvDefault("QB_SCOPES", qbDefaultScope)),
		QBBaseURL:      strings.TrimRight(getenvDefault("QB_BASE_URL", baseURL), "/"),
		QBAuthURL:      getenvDefault("QB_AUTH_URL", authURL),
		QBTokenURL:     getenvDefault("QB_TOKEN_URL", qbTokenURL),
		QBMinorVersion: getenvDefault("QB_MINOR_VERSION", "75"),
		QBTimeout:      getenvDuration("QB_TIMEOUT", 20*time.Second),
		QBLocation:     loc,

		NHTSABaseURL: strings.TrimRight(getenvDefault("NHTSA_BASE_URL", nhtsaDefaultBaseURL), "/"),
		VINCacheTTL:  getenvDuration("VIN_CACHE_TTL", 24*time.Hour),

		OperatorsJSON: os.Getenv("OPERATORS_JSON"),
	}
	return cfg, cfg.Validate()
}

// Validate checks required secrets and enumerations.
func (c Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if c.QBClientID == "" {
		missing = append(missing, "QB_CLIENT_ID")
	}
	if c.QBClientSecret == "" {
		missing = append(missing, "QB_CLIENT_SECRET")
	}
	if c.QBRedirectURI == "" {
		missing = append(missing, "QB_REDIRECT_URI")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}
	if c.Environment == EnvironmentProduction && len(c.JWTSecret) < 32 {
		return fmt.Errorf("%w: JWT_SECRET must be at least 32 bytes in production", ErrInvalidConfig)
	}
	switch c.StorageBackend {
	case StorageMemory, StorageDynamoDB:
	default:
		return fmt.Errorf("%w: STORAGE_BACKEND %q", ErrInvalidConfig, c.StorageBackend)
	}
	return nil
}

// SecureCookies reports whether cookies must carry the Secure attribute.
func (c Config) SecureCookies() bool {
	return c.Environment == EnvironmentProduction
}

func defaultLogFormat(env string) string {
	if env == EnvironmentProduction {
		return "json"
	}
	return "console"
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}
