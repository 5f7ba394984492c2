package app

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/agroregistry-backend/internal/data/aggregates"
	"github.com/yungbote/agroregistry-backend/internal/data/db"
	apphttp "github.com/yungbote/agroregistry-backend/internal/http"
	httpH "github.com/yungbote/agroregistry-backend/internal/http/handlers"
	httpMW "github.com/yungbote/agroregistry-backend/internal/http/middleware"
	"github.com/yungbote/agroregistry-backend/internal/observability"
	"github.com/yungbote/agroregistry-backend/internal/platform/logger"
	"github.com/yungbote/agroregistry-backend/internal/services"
	"github.com/yungbote/agroregistry-backend/internal/validation"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Metrics  *observability.Metrics
	Registry services.Registry
	Server   *apphttp.Server

	store        *db.StoreService
	otelShutdown func(context.Context) error
}

// New loads configuration, opens the store and wires the registry and its
// HTTP surface.
func New(ctx context.Context) (*App, error) {
	loaded := LoadDotEnv()
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Loaded environment", "dotenv_files", loaded)
	cfg.LogConfig(log)

	shutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(cfg.MetricsEnabled)

	store, err := db.NewStoreService(log, cfg.DB)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init store: %w", err)
	}
	log.Info("store ready", "driver", store.Driver())
	if cfg.AutoMigrate {
		if err := store.AutoMigrateAll(); err != nil {
			_ = store.Close()
			log.Sync()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	registry := services.NewRegistry(store.DB(), log, services.RegistryConfig{
		Hooks:     aggregates.MetricsHooks(metrics),
		UserCache: validation.NewUserCache(),
		Metrics:   metrics,
		HashCost:  cfg.BcryptCost,
	})

	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	server := apphttp.NewServer(apphttp.RouterConfig{
		Registry:       registry,
		AuthMiddleware: httpMW.NewAuthMiddleware(log, cfg.JWTSecretKey),
		HealthHandler:  httpH.NewHealthHandler(store.DB()),
		Metrics:        metrics,
		Log:            log,
		ServiceName:    serviceName,
		CORSOrigins:    cfg.CORSOrigins,
	})

	return &App{
		Log:          log,
		DB:           store.DB(),
		Cfg:          cfg,
		Metrics:      metrics,
		Registry:     registry,
		Server:       server,
		store:        store,
		otelShutdown: shutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Starting HTTP server", "addr", a.Cfg.HTTPAddr)
	return a.Server.Run(ctx, a.Cfg.HTTPAddr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.Log.Warn("store close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
