package livecache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
)

// RedisSnapshotCache keeps snapshots as JSON strings under livematch.CacheKey.
type RedisSnapshotCache struct {
	client redis.UniversalClient
}

func NewRedisSnapshotCache(client redis.UniversalClient) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client}
}

func (c *RedisSnapshotCache) Set(ctx context.Context, snapshot livematch.Snapshot, ttl time.Duration) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(snapshot); err != nil {
		return fmt.Errorf("encode snapshot %d: %w", snapshot.FixtureID, err)
	}

	if err := c.client.Set(ctx, livematch.CacheKey(snapshot.FixtureID), buf.Bytes(), ttl).Err(); err != nil {
		return fmt.Errorf("redis set snapshot %d: %w", snapshot.FixtureID, err)
	}
	return nil
}

func (c *RedisSnapshotCache) Get(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool, error) {
	raw, err := c.client.Get(ctx, livematch.CacheKey(sofascoreID)).Bytes()
	if err == redis.Nil {
		return livematch.Snapshot{}, false, nil
	}
	if err != nil {
		return livematch.Snapshot{}, false, fmt.Errorf("redis get snapshot %d: %w", sofascoreID, err)
	}

	var snapshot livematch.Snapshot
	if err := sonic.Unmarshal(raw, &snapshot); err != nil {
		return livematch.Snapshot{}, false, fmt.Errorf("decode snapshot %d: %w", sofascoreID, err)
	}
	return snapshot, true, nil
}

func (c *RedisSnapshotCache) Delete(ctx context.Context, sofascoreID int64) error {
	if err := c.client.Del(ctx, livematch.CacheKey(sofascoreID)).Err(); err != nil {
		return fmt.Errorf("redis delete snapshot %d: %w", sofascoreID, err)
	}
	return nil
}

// Ping reports whether the redis server answers.
func (c *RedisSnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
