// Command server runs the fee office fund transfer API.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"school-erp/internal/cache"
	"school-erp/internal/config"
	"school-erp/internal/database"
	"school-erp/internal/events"
	"school-erp/internal/middleware"
	"school-erp/internal/repositories"
	"school-erp/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	accountCache, closeCache := newAccountCache(cfg, logger)
	defer closeCache()

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	auditLogger := services.NewAuditLogger(logger)

	accountRepo := repositories.NewAccountRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)

	accountService := services.NewAccountService(accountRepo, accountCache, publisher, metrics, auditLogger, cfg.Events.AccountTopic, logger)
	transferService := services.NewTransferService(accountRepo, transferRepo, accountCache, publisher, metrics, auditLogger, cfg.Events.TransferTopic, logger)
	ledgerService := services.NewLedgerService(accountService, transferRepo, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewIPRateLimiter(&cfg.Security)
	go limiter.Run(ctx)

	e := newRouter(routerDeps{
		db:               db.DB,
		accounts:         accountService,
		transfers:        transferService,
		ledger:           ledgerService,
		limiter:          limiter,
		gatherer:         prometheus.DefaultGatherer,
		corsAllowOrigins: cfg.Server.CORSAllowOrigins,
		logger:           logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", srv.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Server.SlogLevel()}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func newAccountCache(cfg *config.Config, logger *slog.Logger) (services.AccountCacheInterface, func()) {
	if !cfg.Cache.Enabled() {
		return cache.NoopAccountCache{}, func() {}
	}

	c := cache.NewAccountCache(&cfg.Cache)
	logger.Info("account cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.AccountTTL)
	return c, closeWith(c, "account cache", logger)
}

func newPublisher(cfg *config.Config, logger *slog.Logger) (services.EventPublisherInterface, func()) {
	if !cfg.Events.Enabled() {
		return events.NoopPublisher{}, func() {}
	}

	p := events.NewBreakerPublisher(events.NewKafkaPublisher(&cfg.Events), events.BreakerConfig{
		MaxFailures:     cfg.Events.BreakerMaxFailures,
		ResetTimeout:    cfg.Events.BreakerResetTimeout,
		HalfOpenMaxSucc: 1,
	})
	logger.Info("event publishing enabled", "brokers", cfg.Events.Brokers)
	return p, closeWith(p, "event publisher", logger)
}

func closeWith(c io.Closer, name string, logger *slog.Logger) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn("failed to close "+name, "error", err)
		}
	}
}
