// Command server runs the wishlist backend HTTP API.
//
// Startup order: environment (.env is optional), configuration, logging,
// tracing, storage, routes, then the HTTP server with graceful shutdown.
//
// @title           Wishlist Backend API
// @version         1.0
// @description     REST API for wishlist items with attachment uploads, RFC 7807 error envelopes, and correlation-ID tracing.
// @BasePath        /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/avlatos/go-wishlist-backend/docs"
	"github.com/avlatos/go-wishlist-backend/internal/config"
	httpapi "github.com/avlatos/go-wishlist-backend/internal/http"
	"github.com/avlatos/go-wishlist-backend/internal/observability"
	"github.com/avlatos/go-wishlist-backend/internal/secrets"
	"github.com/avlatos/go-wishlist-backend/internal/store"
	"github.com/avlatos/go-wishlist-backend/internal/sysutil"
	"github.com/avlatos/go-wishlist-backend/internal/upload"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// .env is a developer convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(sctx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	persister, err := upload.NewPersister(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Upload.Dir).Msg("upload root unavailable")
	}

	sec := secrets.NewManager(cfg.SecretMaxAge)
	if report := sec.Validate(); !report.Valid {
		// Startup proceeds; /health reports the gap until it is fixed.
		log.Warn().Strs("missing", report.Missing).Msg("required secrets missing")
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, store.NewMemory(), persister, sec, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
