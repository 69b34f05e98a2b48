package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/vuhoang/roastline/internal/domain/profile"
	"github.com/vuhoang/roastline/pkg/apperror"
	"github.com/vuhoang/roastline/pkg/logger"
)

const profileCacheKeyPrefix = "profile_cache:"

// redisProfileCache stores one JSON document per normalized URL without a
// Redis TTL: staleness is judged by the reader against cached_at, and a
// stale entry is simply overwritten by the next successful scrape.
type redisProfileCache struct {
	rdb    *redis.Client
	logger logger.Logger
}

func NewRedisProfileCache(rdb *redis.Client, log logger.Logger) profile.Cache {
	return &redisProfileCache{rdb: rdb, logger: log}
}

func (c *redisProfileCache) Lookup(ctx context.Context, normalizedURL string) (*profile.CachedProfile, error) {
	raw, err := c.rdb.Get(ctx, profileCacheKeyPrefix+normalizedURL).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to read profile cache", err)
	}

	var cached profile.CachedProfile
	if err := json.Unmarshal(raw, &cached); err != nil {
		// Corrupt entry behaves like a miss and gets overwritten later.
		c.logger.Warn("Discarding unreadable profile cache entry",
			zap.String("normalized_url", normalizedURL), zap.Error(err))
		return nil, nil
	}
	return &cached, nil
}

func (c *redisProfileCache) Store(ctx context.Context, normalizedURL string, data profile.Document, now time.Time) error {
	entry := profile.CachedProfile{
		NormalizedURL: normalizedURL,
		Data:          data,
		CachedAt:      now,
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return apperror.NewInternal("failed to marshal profile cache entry", err)
	}

	if err := c.rdb.Set(ctx, profileCacheKeyPrefix+normalizedURL, raw, 0).Err(); err != nil {
		return apperror.NewInternal("failed to store profile cache entry", err)
	}
	return nil
}
