package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/fruit_shop_app/internal/adapters/amqp"
	"github.com/SscSPs/fruit_shop_app/internal/adapters/pdf"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/core/services"
	"github.com/SscSPs/fruit_shop_app/internal/handlers"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const amqpConnectAttempts = 5

// @title Fruit Shop Backend API
// @version 1.0
// @description Bookkeeping API for a fruit and juice shop: transactions, analytics and exports.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := repositories.NewRepositoryProvider(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if repos.Close != nil {
		defer repos.Close()
	}

	publisher := newEventPublisher(ctx, cfg, logger)
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	container := services.NewServiceContainer(cfg, repos, publisher, pdf.NewRenderer())

	posthogClient := utils.InitializePosthogClient(cfg.PostHogAPIKey, cfg.PostHogEndpoint, logger)
	defer posthogClient.Close()

	router, err := newRouter(cfg, logger, container, repos, posthogClient)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newRouter(
	cfg *config.Config,
	logger *slog.Logger,
	container *portssvc.ServiceContainer,
	repos portsrepo.RepositoryProvider,
	posthogClient *utils.PosthogClientWrapper,
) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	if cfg.RateLimit != "" {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		r.Use(middleware.RateLimit(limiter))
	}
	if posthogClient.IsInitialized() {
		r.Use(middleware.PosthogMiddleware(posthogClient, cfg.ShopID))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	health, _ := repos.TransactionRepo.(portsrepo.HealthChecker)
	handlers.RegisterRoutes(r, cfg, container, health)
	return r, nil
}

// newEventPublisher connects to the broker when one is configured. An unreachable broker
// is not fatal: the server runs without change events.
func newEventPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) portssvc.EventPublisher {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, transaction events disabled")
		return amqp.NoopPublisher{}
	}

	client, err := amqp.NewClientWithRetry(ctx, amqpConnectAttempts, cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey, cfg.ShopID)
	if err != nil {
		logger.Warn("Failed to connect to AMQP broker, transaction events disabled", slog.String("error", err.Error()))
		return amqp.NoopPublisher{}
	}
	logger.Info("Publishing transaction events", slog.String("exchange", cfg.AMQPExchange))
	return client
}
