package bootstrap

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/target/bookshelf-web/config"
	redisadapter "github.com/target/bookshelf-web/internal/adapters/redis"
	"github.com/target/bookshelf-web/internal/client"
	"github.com/target/bookshelf-web/internal/domain/route"
	"github.com/target/bookshelf-web/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Backend *client.Client
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Borrows *service.BorrowService
	Orders  *service.OrderService
	Theme   *service.ThemeService
	Routes  *route.Table
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	// Optional: overrides the backend HTTP client (tests).
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewServices wires the backend client and Redis stores into the services.
func NewServices(deps ServiceDeps) (*ServiceContainer, error) {
	if deps.Config == nil {
		return nil, errors.New("service deps missing AppConfig")
	}
	if deps.RedisClient == nil {
		return nil, errors.New("service deps missing redis client")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := deps.Config

	backend, err := NewBackendClient(cfg.Backend, deps.HTTPClient, logger)
	if err != nil {
		return nil, err
	}

	routes := route.DefaultTable()
	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.Redis.SessionPrefix)
	prefs := redisadapter.NewPreferenceStore(redisadapter.PreferenceStoreOptions{
		Client: deps.RedisClient,
		Prefix: cfg.Redis.PreferencePrefix,
		Logger: logger,
	})

	return &ServiceContainer{
		Backend: backend,
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Backend:  backend.Auth,
			Sessions: sessions,
			Config:   service.AuthConfig{TTL: cfg.Session.TTL, Logger: logger},
		}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			Backend: backend.Catalog,
			Routes:  routes,
			Logger:  logger,
		}),
		Borrows: service.NewBorrowService(service.BorrowServiceOptions{
			Backend: backend.Borrows,
			Logger:  logger,
		}),
		Orders: service.NewOrderService(service.OrderServiceOptions{
			Backend: backend.Orders,
			Logger:  logger,
		}),
		Theme: service.NewThemeService(service.ThemeServiceOptions{
			Preferences: prefs,
			Logger:      logger,
		}),
		Routes: routes,
	}, nil
}

// NewBackendClient builds the bookstore API client from config.
func NewBackendClient(cfg config.BackendConfig, hc *http.Client, logger *slog.Logger) (*client.Client, error) {
	c, err := client.New(client.Config{
		BaseURL:     cfg.URL,
		Timeout:     cfg.Timeout,
		TokenHeader: cfg.TokenHeader,
		TokenScheme: cfg.TokenScheme,
		SuccessCode: cfg.SuccessCode,
		RetryLimit:  cfg.RetryLimit,
		HTTPClient:  hc,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("create backend client: %w", err)
	}
	return c, nil
}
