package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"foodmap/config"
	"foodmap/internal/delivery"
	"foodmap/internal/delivery/http"
	"foodmap/internal/delivery/http/router/handler"
	"foodmap/internal/domain/repository"
	"foodmap/internal/infra/cache"
	"foodmap/internal/infra/geocode"
	"foodmap/internal/infra/intent"
	logs "foodmap/internal/infra/log"
	"foodmap/internal/infra/persistence/postgres"
	"foodmap/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFacilityRepository,
			newAreaRepository,
		),
	)
}

// newAreaRepository wraps the Postgres area store with the Redis cache. A
// nil client (Redis not configured) leaves every call a pass-through.
func newAreaRepository(db *gorm.DB, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.AreaRepository {
	var ttl time.Duration
	if cfg.Redis != nil {
		ttl = cfg.Redis.TTL
	}

	return cache.NewCachedAreaRepository(postgres.NewAreaRepository(db), client, logger, ttl)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			geocode.NewGoogleGeocoder,
			intent.NewIntentParser,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSearchService,
			impl.NewMapDataService,
			impl.NewAreaService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSearchHandler,
			handler.NewMapHandler,
			handler.NewAreaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
