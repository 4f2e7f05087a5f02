package livecache

import (
	"context"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	basecache "github.com/riskibarqy/football-live/internal/platform/cache"
)

// MemorySnapshotCache is the in-process fallback used when no redis address is configured.
type MemorySnapshotCache struct {
	store *basecache.Store
}

func NewMemorySnapshotCache(opts ...basecache.Option) *MemorySnapshotCache {
	return &MemorySnapshotCache{store: basecache.NewStore(0, opts...)}
}

func (c *MemorySnapshotCache) Set(ctx context.Context, snapshot livematch.Snapshot, ttl time.Duration) error {
	c.store.SetTTL(ctx, livematch.CacheKey(snapshot.FixtureID), snapshot, ttl)
	return nil
}

func (c *MemorySnapshotCache) Get(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool, error) {
	value, ok := c.store.Get(ctx, livematch.CacheKey(sofascoreID))
	if !ok {
		return livematch.Snapshot{}, false, nil
	}
	snapshot, ok := value.(livematch.Snapshot)
	return snapshot, ok, nil
}

func (c *MemorySnapshotCache) Delete(ctx context.Context, sofascoreID int64) error {
	c.store.Delete(ctx, livematch.CacheKey(sofascoreID))
	return nil
}

func (c *MemorySnapshotCache) Ping(context.Context) error {
	return nil
}
