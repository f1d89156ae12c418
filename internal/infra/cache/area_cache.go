package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodmap/internal/domain/entity"
	"foodmap/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

const (
	areaListKeyPrefix    = "areas:list:"
	areaMetricsKeyPrefix = "areas:metrics:"
	defaultAreaTTL       = 15 * time.Minute
)

// cachedAreaRepository is a cache-aside decorator over the Postgres area
// store. Areas are immutable within a session, so a short TTL only guards
// against offline re-ingestion. Geometry-bearing lists skip the cache;
// polygons are large and only the containment path loads them.
type cachedAreaRepository struct {
	inner  repository.AreaRepository
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// NewCachedAreaRepository wraps an area repository with Redis caching. A nil
// client passes every call straight through.
func NewCachedAreaRepository(inner repository.AreaRepository, client *redis.Client, logger *slog.Logger, ttl time.Duration) repository.AreaRepository {
	if ttl <= 0 {
		ttl = defaultAreaTTL
	}

	return &cachedAreaRepository{
		inner:  inner,
		client: client,
		logger: logger,
		ttl:    ttl,
	}
}

func (repo *cachedAreaRepository) ListAreas(ctx context.Context, city string, withGeometry bool) ([]*entity.Area, error) {
	if repo.client == nil || withGeometry {
		return repo.inner.ListAreas(ctx, city, withGeometry)
	}

	key := areaListKeyPrefix + entity.NormalizeAreaName(city)
	if cached, err := repo.client.Get(ctx, key).Bytes(); err == nil {
		var areas []*entity.Area
		if err := json.Unmarshal(cached, &areas); err == nil {
			return areas, nil
		}
		repo.client.Del(ctx, key)
	}

	areas, err := repo.inner.ListAreas(ctx, city, withGeometry)
	if err != nil {
		return nil, err
	}

	repo.store(ctx, key, areas)

	return areas, nil
}

func (repo *cachedAreaRepository) GetAreaMetrics(ctx context.Context, name string) (*entity.AreaMetrics, error) {
	if repo.client == nil {
		return repo.inner.GetAreaMetrics(ctx, name)
	}

	key := areaMetricsKeyPrefix + entity.NormalizeAreaName(name)
	if cached, err := repo.client.Get(ctx, key).Bytes(); err == nil {
		var metrics entity.AreaMetrics
		if err := json.Unmarshal(cached, &metrics); err == nil {
			return &metrics, nil
		}
		repo.client.Del(ctx, key)
	}

	metrics, err := repo.inner.GetAreaMetrics(ctx, name)
	if err != nil {
		return nil, err
	}

	repo.store(ctx, key, metrics)

	return metrics, nil
}

// store writes best-effort; a cache failure never fails the read path.
func (repo *cachedAreaRepository) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := repo.client.Set(ctx, key, payload, repo.ttl).Err(); err != nil && repo.logger != nil {
		repo.logger.LogAttrs(ctx, slog.LevelWarn, "area cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
