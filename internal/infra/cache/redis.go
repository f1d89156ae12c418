// Package cache provides the Redis connection and the cached area store.
package cache

import (
	"context"
	"log/slog"

	"foodmap/config"
	"foodmap/internal/domain/lifecycle"
	"foodmap/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client for the area cache. Returns nil when no
// address is configured, which disables caching without disabling the app.
func New(params Params) (*redis.Client, error) {
	if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("redis not configured, area cache disabled")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
