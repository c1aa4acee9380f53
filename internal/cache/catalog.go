package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jonathan/resume-tailor/internal/metrics"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// CatalogKey is the Redis key holding the serialized catalog
	CatalogKey = "tailor:skill_catalog:v1"
	// DefaultCatalogTTL bounds how stale a cached catalog may be
	DefaultCatalogTTL = 5 * time.Minute
)

// Lookup result label values
const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// CatalogSource loads the authoritative catalog
type CatalogSource interface {
	ListSkillCatalog(ctx context.Context) ([]types.CatalogSkill, error)
}

// CachedCatalog serves the skill catalog from Redis, falling back to the
// source on a miss or when Redis is unavailable.
type CachedCatalog struct {
	source CatalogSource
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedCatalog creates a CachedCatalog. A non-positive ttl uses DefaultCatalogTTL.
func NewCachedCatalog(source CatalogSource, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedCatalog {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &CachedCatalog{
		source: source,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// ListSkillCatalog returns the cached catalog or loads and caches it.
func (c *CachedCatalog) ListSkillCatalog(ctx context.Context) ([]types.CatalogSkill, error) {
	val, err := c.client.Get(ctx, CatalogKey).Bytes()
	switch {
	case err == nil:
		var catalog []types.CatalogSkill
		if jsonErr := json.Unmarshal(val, &catalog); jsonErr == nil {
			metrics.CatalogCacheLookups.WithLabelValues(resultHit).Inc()
			return catalog, nil
		}
		c.logger.Warn("discarding undecodable cached catalog")
		metrics.CatalogCacheLookups.WithLabelValues(resultError).Inc()
	case errors.Is(err, redis.Nil):
		metrics.CatalogCacheLookups.WithLabelValues(resultMiss).Inc()
	default:
		c.logger.Warn("catalog cache read failed", zap.Error(err))
		metrics.CatalogCacheLookups.WithLabelValues(resultError).Inc()
	}

	catalog, err := c.source.ListSkillCatalog(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal catalog: %w", err)
	}
	if err := c.client.Set(ctx, CatalogKey, data, c.ttl).Err(); err != nil {
		c.logger.Warn("catalog cache write failed", zap.Error(err))
	}
	return catalog, nil
}

// Invalidate drops the cached catalog so the next read reloads it.
func (c *CachedCatalog) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, CatalogKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate catalog cache: %w", err)
	}
	return nil
}
