package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/metazeka/backend/docs/swagger"
	"github.com/metazeka/backend/pkg/app"
	"github.com/metazeka/backend/pkg/config"
	"github.com/metazeka/backend/pkg/database"
	"github.com/metazeka/backend/pkg/httpx"
	"github.com/metazeka/backend/pkg/logger"
	"github.com/metazeka/backend/pkg/postgrest"
	"github.com/metazeka/backend/pkg/telemetry"
	listingApi "github.com/metazeka/backend/services/listing/application/api"
	listingServices "github.com/metazeka/backend/services/listing/application/services"
	whatifApi "github.com/metazeka/backend/services/whatif/application/api"
	whatifServices "github.com/metazeka/backend/services/whatif/application/services"
)

// @title			metazeka-backend API
// @version		1.0
// @description	Listings CRUD over a managed Postgres store, plus a mock what-if simulator.
// @host			localhost:8787
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	if err := config.ValidateStore(cfg); err != nil {
		log.Error("listings service cannot start", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}

	appConfig := &app.Application{Config: cfg, Logger: log}
	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		db, err := database.NewPool(ctx, cfg.StoreURL, cfg.StoreKey, log)
		if err != nil {
			log.Error("failed to connect to database", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		defer db.Close()
		appConfig.Db = db
	default:
		client, err := postgrest.New(cfg.StoreURL, cfg.StoreKey)
		if err != nil {
			log.Error("failed to create store client", "error", err)
			os.Exit(1) //nolint:gocritic
		}
		appConfig.Store = client
	}
	log.Info("record store configured", "driver", cfg.StoreDriver, "table", cfg.ListingsTable)

	listings, err := listingServices.New(appConfig)
	if err != nil {
		log.Error("failed to initialise listings service", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	whatif, err := whatifServices.New(appConfig)
	if err != nil {
		log.Error("failed to initialise what-if service", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			RateLimitPerMinute: cfg.RateLimitPerMinute,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(cfg.ServiceName, nil))
	r.Get("/ready", httpx.ReadyHandler(listings.Listing))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		listingApi.ListingRoutes(r, listings)
		whatifApi.WhatifRoutes(r, whatif)
	})

	srv := httpx.NewServer(cfg.Addr(), r)

	// Bind before serving so an unavailable port is a startup failure.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		log.Error("failed to bind", "addr", srv.Addr, "error", err)
		os.Exit(1) //nolint:gocritic
	}

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
