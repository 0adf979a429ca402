package repository

import (
	"Kazuru/internal/pkg/consts"
	"Kazuru/internal/pkg/redis"
	"context"
	"time"
)

// tagSnapshotTTL keeps a stale snapshot from outliving two refresh cycles.
const tagSnapshotTTL = 10 * time.Minute

// RedisTagCache holds the distinct tag union in a Redis list. Refreshed by
// the tag cache job and read by tag autocomplete.
type RedisTagCache struct{}

func NewRedisTagCache() *RedisTagCache {
	return &RedisTagCache{}
}

func (c *RedisTagCache) GetTags(ctx context.Context) ([]string, error) {
	return redis.GetList(ctx, consts.TagSnapshotKey)
}

func (c *RedisTagCache) SetTags(ctx context.Context, tags []string) error {
	return redis.SetListWithExpiration(ctx, consts.TagSnapshotKey, tags, tagSnapshotTTL)
}
