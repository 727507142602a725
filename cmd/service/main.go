// Package main is the entry point for the rashi tree guide service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/cache"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/clients/acl"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http"
	"github.com/jsamuelsen/rashi-tree-guide/internal/adapters/http/handlers"
	"github.com/jsamuelsen/rashi-tree-guide/internal/app"
	"github.com/jsamuelsen/rashi-tree-guide/internal/catalog"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/config"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/logging"
	"github.com/jsamuelsen/rashi-tree-guide/internal/platform/telemetry"
	"github.com/jsamuelsen/rashi-tree-guide/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		Insecure:     cfg.Telemetry.Insecure,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
		Downstreams: map[string]string{
			cfg.Services.Geocoder.Name:  cfg.Services.Geocoder.BaseURL,
			cfg.Services.Astrology.Name: cfg.Services.Astrology.BaseURL,
		},
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// The shipped catalog must be consistent before any request is served.
	cat, err := catalog.New()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	geocoder, astrology, err := newGateways(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Services.Astrology.APIKey == "" {
		logger.Warn("astrology api key not configured; computations will fail until it is set",
			slog.String("env", config.AstrologyKeyEnv),
		)
	}

	healthRegistry := ports.NewHealthRegistry()
	for _, checker := range []ports.HealthChecker{
		geocoder.(ports.HealthChecker),
		astrology,
		ports.CheckFunc{CheckName: "catalog", Fn: func(context.Context) error {
			if report := cat.Report(); !report.Healthy() {
				return &catalog.IntegrityError{Problems: report.Problems}
			}

			return nil
		}},
	} {
		if err := healthRegistry.Register(checker); err != nil {
			return fmt.Errorf("registering health check: %w", err)
		}
	}

	catalogService := app.NewCatalogService(cat, logger)
	rashiService := app.NewRashiService(app.RashiServiceConfig{
		Geocoder: geocoder,
		Gateway:  astrology,
		Catalog:  cat,
		Logger:   logger,
	})

	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewDefaultRouterConfig(logger, cfg)
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime).WithCatalog(len(cat.Rashis()), len(cat.Trees()))
	routerCfg.HealthHandler = handlers.NewHealthHandler(healthRegistry, buildInfo)
	routerCfg.RashiHandler = handlers.NewRashiHandler(catalogService)
	routerCfg.ComputeHandler = handlers.NewComputeHandler(rashiService)
	routerCfg.OperatorHandler = handlers.NewOperatorHandler(catalogService)
	http.SetupRouter(server.Engine(), routerCfg)

	serverErr := server.Start()

	return waitForShutdown(ctx, logger, server, serverErr, cfg.Server.ShutdownTimeout)
}

// newGateways builds the geocoder (cached when configured) and the
// astrology gateway, each on its own instrumented client.
func newGateways(cfg *config.Config, logger *slog.Logger) (ports.Geocoder, *acl.Astrology, error) {
	geoSvc := cfg.Services.Geocoder

	geoClient, err := newClient(cfg, geoSvc.Name, geoSvc.BaseURL, map[string]string{"User-Agent": geoSvc.UserAgent}, logger)
	if err != nil {
		return nil, nil, err
	}

	geocoder, err := cache.NewGeocoder(acl.NewNominatim(acl.NominatimConfig{
		Client:    geoClient,
		UserAgent: geoSvc.UserAgent,
		RateLimit: geoSvc.RateLimit,
		Logger:    logger,
	}), geoSvc.CacheSize)
	if err != nil {
		return nil, nil, fmt.Errorf("creating geocode cache: %w", err)
	}

	astroSvc := cfg.Services.Astrology

	astroClient, err := newClient(cfg, astroSvc.Name, astroSvc.BaseURL, nil, logger)
	if err != nil {
		return nil, nil, err
	}

	astrology := acl.NewAstrology(acl.AstrologyConfig{
		Client: astroClient,
		APIKey: astroSvc.APIKey,
		Logger: logger,
	})

	return geocoder, astrology, nil
}

func newClient(cfg *config.Config, name, baseURL string, headers map[string]string, logger *slog.Logger) (*clients.Client, error) {
	client, err := clients.New(&clients.Config{
		BaseURL:     baseURL,
		ServiceName: name,
		Timeout:     cfg.Client.Timeout,
		Retry:       cfg.Client.Retry,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Headers:     headers,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %s client: %w", name, err)
	}

	client.Breaker().Watch(func(to clients.State) {
		telemetry.ObserveBreaker(name, int(to))
	})

	return client, nil
}

// waitForShutdown blocks until a shutdown signal is received or the server
// fails, then drains in-flight requests.
func waitForShutdown(
	ctx context.Context,
	logger *slog.Logger,
	server *http.Server,
	serverErr <-chan error,
	shutdownTimeout time.Duration,
) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)

	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	logger.Info("initiating graceful shutdown", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
