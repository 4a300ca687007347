package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Environment name constants used in ENVIRONMENT config field.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Store driver names accepted by STORE_DRIVER.
const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverPostgres  = "postgres"
)

// ErrStoreNotConfigured is returned when the record store endpoint or its
// credential is missing. The listings service cannot start without both.
var ErrStoreNotConfigured = errors.New("missing SUPABASE_URL or SUPABASE_SERVICE_ROLE_KEY env var")

// Config holds all configuration for the application
type Config struct {
	// Server
	Host string `conf:"default:0.0.0.0,env:HOST"`
	Port int    `conf:"default:8787,env:PORT"`

	// Record store
	StoreURL      string `conf:"env:SUPABASE_URL"`
	StoreKey      string `conf:"env:SUPABASE_SERVICE_ROLE_KEY,noprint"`
	StoreDriver   string `conf:"default:postgrest,enum:postgrest|postgres,env:STORE_DRIVER"`
	ListingsTable string `conf:"default:user_listings,env:LISTINGS_TABLE"`

	// Application
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`

	// CORS: comma-separated list of allowed origins; * allows all
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`

	// Requests per minute per client IP; 0 disables limiting.
	RateLimitPerMinute int `conf:"default:0,env:RATE_LIMIT_PER_MINUTE"`

	// Observability
	ServiceName    string `conf:"default:metazeka-backend,env:SERVICE_NAME"`
	ServiceVersion string `conf:"default:dev,env:SERVICE_VERSION"`
	OtelEndpoint   string `conf:"env:OTEL_ENDPOINT"`
	SentryDSN      string `conf:"env:SENTRY_DSN,noprint"`
}

// Load reads configuration from the environment (and a .env file when present).
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ValidateStore reports ErrStoreNotConfigured unless both the store endpoint
// and the privileged credential are set.
func ValidateStore(cfg *Config) error {
	if strings.TrimSpace(cfg.StoreURL) == "" || strings.TrimSpace(cfg.StoreKey) == "" {
		return ErrStoreNotConfigured
	}
	return nil
}

// ValidateForProduction enforces security requirements when ENVIRONMENT=production.
// No-ops for non-production environments.
func ValidateForProduction(cfg *Config) error {
	if cfg.Environment != EnvProduction {
		return nil
	}

	var errs []string

	if cfg.LogLevel == "debug" {
		errs = append(errs, "LOG_LEVEL must not be 'debug' in production (may leak sensitive data)")
	}

	if cfg.StoreDriver == StoreDriverPostgREST && strings.HasPrefix(cfg.StoreURL, "http://") {
		errs = append(errs, "SUPABASE_URL must use https in production")
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("production config validation failed: %s", strings.Join(errs, "; "))
}
