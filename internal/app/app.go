package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/kruttikastudy/icd-website/internal/adapter/postgres"
	auditrepo "github.com/kruttikastudy/icd-website/internal/adapter/postgres/audit"
	codesrepo "github.com/kruttikastudy/icd-website/internal/adapter/postgres/codes"
	sessionrepo "github.com/kruttikastudy/icd-website/internal/adapter/postgres/session"
	userrepo "github.com/kruttikastudy/icd-website/internal/adapter/postgres/user"
	"github.com/kruttikastudy/icd-website/internal/auth"
	"github.com/kruttikastudy/icd-website/internal/config"
	"github.com/kruttikastudy/icd-website/internal/metrics"
	authsvc "github.com/kruttikastudy/icd-website/internal/service/auth"
	"github.com/kruttikastudy/icd-website/internal/service/editor"
	"github.com/kruttikastudy/icd-website/internal/service/search"
	"github.com/kruttikastudy/icd-website/internal/transport/middleware"
	"github.com/kruttikastudy/icd-website/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, wires services and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logCloser := NewLogger(cfg.Log)
	defer logCloser.Close()

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := InitTracing(ctx, cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("shutdown tracing", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	// Repositories
	txm := postgres.NewTxManager(pool)
	codes := codesrepo.New(pool)
	audits := auditrepo.New(pool)
	users := userrepo.New(pool)
	sessions := sessionrepo.New(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	authService := authsvc.NewService(logger, users, sessions, jwtManager, cfg.Auth)
	searchService := search.NewService(logger, codes)
	var recorder interface{ RecordMutation(action, outcome string) }
	if m != nil {
		recorder = m
	}
	editorService := editor.NewService(logger, codes, audits, audits, txm, recorder)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer rateLimiter.Stop()

	var handler http.Handler = NewRouter(RouterDeps{
		Config:        cfg,
		Logger:        logger,
		Metrics:       m,
		RateLimiter:   rateLimiter,
		Authenticator: authService,
		Health:        rest.NewHealthHandler(pool, codes, BuildVersion()),
		Search:        rest.NewSearchHandler(searchService, logger),
		Editor:        rest.NewEditorHandler(editorService, logger),
		Auth:          rest.NewAuthHandler(authService, cfg.Auth, logger),
	})
	if cfg.Tracing.Enabled() {
		handler = otelhttp.NewHandler(handler, cfg.Tracing.ServiceName)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
