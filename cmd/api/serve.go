package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/config"
	"github.com/pageza/nubereats/backend/internal/api"
	"github.com/pageza/nubereats/backend/internal/database"
	"github.com/pageza/nubereats/backend/internal/events"
	"github.com/pageza/nubereats/backend/internal/graphql"
	"github.com/pageza/nubereats/backend/internal/logging"
	"github.com/pageza/nubereats/backend/internal/middleware"
	"github.com/pageza/nubereats/backend/internal/repository"
	"github.com/pageza/nubereats/backend/internal/server"
	"github.com/pageza/nubereats/backend/internal/service"
)

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply migrations before serving")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Env)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	db, err := database.Open(cfg, log)
	if err != nil {
		return err
	}
	if migrate {
		if err := database.RunMigrations(db, log); err != nil {
			return err
		}
	}

	checks := map[string]api.Check{
		"database": func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
	}

	redisClient, err := database.NewRedisClient(cfg, log)
	switch {
	case errors.Is(err, database.ErrRedisNotConfigured):
		log.Warn("redis not configured; rate limiting disabled")
		redisClient = nil
	case err != nil:
		return err
	default:
		defer redisClient.Close()
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	publisher, err := events.New(cfg, redisClient, log)
	if err != nil {
		return err
	}
	defer publisher.Close()

	mailer := service.NewMailgunMailer(service.MailgunConfig{
		APIKey:    cfg.MailgunAPIKey,
		Domain:    cfg.MailgunDomain,
		FromEmail: cfg.MailgunFromEmail,
	}, log)
	defer mailer.Wait()

	store := repository.NewStore(db)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	users := service.NewUserService(store, tokens, mailer, log)

	schema, err := graphql.NewSchema(graphql.NewResolver(graphql.Services{
		Users:       users,
		Restaurants: service.NewRestaurantService(store, log),
		Categories:  service.NewCategoryService(store, log),
		Dishes:      service.NewDishService(store, log),
		Orders:      service.NewOrderService(store, publisher, log),
	}, log))
	if err != nil {
		return err
	}

	s3, err := config.NewS3Config(ctx, cfg)
	if err != nil {
		return err
	}

	return server.New(server.Options{
		Config:      cfg,
		Log:         log,
		Schema:      schema,
		Auth:        users,
		Uploads:     s3,
		RateLimiter: rateLimiter(redisClient, cfg, log),
		Checks:      checks,
	}).Run(ctx)
}

func rateLimiter(client *redis.Client, cfg *config.Config, log *zap.Logger) *middleware.RateLimiter {
	if client == nil || cfg.RateLimitRequests <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(client, middleware.RateLimitConfig{
		Window: cfg.RateLimitWindow,
		Limit:  cfg.RateLimitRequests,
	}, log)
}
