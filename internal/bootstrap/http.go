package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/target/bookshelf-web/config"
	"github.com/target/bookshelf-web/internal/domain/route"
	httpx "github.com/target/bookshelf-web/internal/http"
	"github.com/target/bookshelf-web/internal/service"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	// Optional: backs /healthz.
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// NewHTTPServer builds the server without starting it.
func NewHTTPServer(cfg HTTPServerConfig) (*http.Server, error) {
	if cfg.Config == nil || cfg.Services == nil {
		return nil, errors.New("http server requires config and services")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	app := cfg.Config
	svcs := cfg.Services

	var health httpx.Pinger
	if cfg.Redis != nil {
		rdb := cfg.Redis
		health = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}

	guard := route.NewGuard(
		httpx.RequestAuthState{Fallback: service.SessionAuthState{Auth: svcs.Auth}},
		route.WithTable(svcs.Routes),
		route.WithStrict(app.Strict()),
		route.WithLogger(logger),
	)

	handler, err := httpx.NewRouter(httpx.RouterServices{
		Auth:         svcs.Auth,
		Catalog:      svcs.Catalog,
		Borrows:      svcs.Borrows,
		Orders:       svcs.Orders,
		Theme:        svcs.Theme,
		Routes:       svcs.Routes,
		Guard:        guard,
		Health:       health,
		CookieDomain: app.HTTP.CookieDomain,
		Logger:       logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}

	addr := app.HTTP.Addr
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  app.HTTP.ReadTimeout,
		WriteTimeout: app.HTTP.WriteTimeout,
		IdleTimeout:  app.HTTP.IdleTimeout,
	}, nil
}

// ServeUntilDone runs server until ctx is canceled, then shuts it down
// within the configured timeout.
func ServeUntilDone(ctx context.Context, server *http.Server, cfg config.HTTPConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		// The parent context is already done; shutdown needs its own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		logger.Info("HTTP server stopped")
		return nil
	})
	return g.Wait()
}
