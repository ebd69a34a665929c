package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"adframe/internal/adapter/auth"
	httpadapter "adframe/internal/adapter/http"
	"adframe/internal/adapter/kafka"
	"adframe/internal/adapter/postgres"
	"adframe/internal/adapter/queue"
	"adframe/internal/adapter/redis"
	"adframe/internal/adapter/usecase"
	"adframe/internal/core/port"
	"adframe/internal/db"
)

// NewServeCommand creates the serve command.
func NewServeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), app)
		},
	}
}

// runServe wires the adapters and serves until ctx is cancelled, then shuts
// the server down and drains queued tracking tasks.
func runServe(ctx context.Context, app *App) error {
	cfg, logger := app.Config, app.Logger

	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	listings := postgres.NewListingRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	activity := postgres.NewActivityRepository(pool)

	var guard port.IdempotencyGuard
	if cfg.Redis.Addr != "" {
		client, err := redis.Connect(cfg.Redis.Addr)
		if err != nil {
			return err
		}
		defer client.Close()
		guard = redis.NewIdempotencyGuard(client, cfg.Redis.KeyTTL)
		logger.Info("idempotency guard enabled", slog.Duration("ttl", cfg.Redis.KeyTTL))
	}

	var publisher port.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			return err
		}
		defer p.Close()
		publisher = p
		logger.Info("event stream enabled", slog.String("topic", cfg.Kafka.Topic))
	}

	var verifier httpadapter.TokenVerifier
	if cfg.Auth.JWTSecret != "" {
		v, err := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience, cfg.Auth.Leeway)
		if err != nil {
			return err
		}
		verifier = v
	} else {
		logger.Warn("AUTH_JWT_SECRET is not set, listing and campaign routes will reject every request")
	}

	tasks := queue.NewDispatcher(cfg.Tracking.Workers, cfg.Tracking.QueueSize, cfg.Tracking.Timeout, logger)

	ads := usecase.NewAdUseCase(usecase.AdDependencies{
		Listings:        listings,
		Campaigns:       campaigns,
		Activity:        activity,
		Guard:           guard,
		Publisher:       publisher,
		Tasks:           tasks,
		Logger:          logger,
		CreativeBaseURL: cfg.Creative.BaseURL,
		ClickBaseURL:    cfg.HTTP.PublicURL,
		TrackTimeout:    cfg.Tracking.Timeout,
	})
	market := usecase.NewMarketplaceUseCase(listings, campaigns, logger, cfg.Billing.Currency, cfg.Billing.Locale)

	handler := httpadapter.NewHandler(httpadapter.Options{
		Ads:            ads,
		Marketplace:    market,
		Verifier:       verifier,
		Health:         pool.Ping,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Logger:         logger,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case err = <-errc:
		drainTasks(ctx, tasks, cfg.Tracking.DrainTimeout, logger)
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdown(ctx, srv, tasks, cfg.HTTP.ShutdownTimeout, cfg.Tracking.DrainTimeout, logger)
	logger.Info("server gracefully stopped")
	return nil
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

type closer interface {
	Close(ctx context.Context) error
}

// shutdown stops srv and then drains tasks. Each step gets its own
// deadline so a slow HTTP drain does not eat into the queue's.
func shutdown(ctx context.Context, srv shutdowner, tasks closer, httpTimeout, drainTimeout time.Duration, logger *slog.Logger) {
	httpCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), httpTimeout)
	defer cancel()
	if err := srv.Shutdown(httpCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	drainTasks(ctx, tasks, drainTimeout, logger)
}

func drainTasks(ctx context.Context, tasks closer, timeout time.Duration, logger *slog.Logger) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()
	if err := tasks.Close(drainCtx); err != nil {
		logger.Warn("tracking tasks not drained", slog.Any("error", err))
	}
}
