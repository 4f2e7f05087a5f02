package livecache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	basecache "github.com/riskibarqy/football-live/internal/platform/cache"
)

func intPtr(v int) *int { return &v }

func sampleSnapshot() livematch.Snapshot {
	return livematch.Snapshot{
		FixtureID: 555,
		Timestamp: time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC),
		Status:    "inprogress",
		MatchInfo: livematch.MatchInfo{
			HomeTeam:          livematch.TeamInfo{ID: 10, Name: "Home FC", ShortName: "HFC"},
			AwayTeam:          livematch.TeamInfo{ID: 20, Name: "Away FC", ShortName: "AFC"},
			Score:             livematch.Score{Home: intPtr(1), Away: intPtr(0)},
			Minute:            intPtr(31),
			StatusDescription: "1st half",
		},
		Incidents: &livematch.Incidents{},
		Stats:     livematch.StatsTree{},
	}
}

func newRedisCache(t *testing.T) (*RedisSnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSnapshotCache(client), mr
}

func TestRedisSnapshotCache_RoundTripAndTTL(t *testing.T) {
	t.Parallel()

	cache, mr := newRedisCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, sampleSnapshot(), 120*time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if !mr.Exists("live:fixture:555") {
		t.Fatalf("expected key live:fixture:555")
	}
	if ttl := mr.TTL("live:fixture:555"); ttl != 120*time.Second {
		t.Fatalf("ttl = %s, want 120s", ttl)
	}

	got, ok, err := cache.Get(ctx, 555)
	if err != nil || !ok {
		t.Fatalf("Get = ok %v err %v", ok, err)
	}
	if got.Status != "inprogress" || got.MatchInfo.Minute == nil || *got.MatchInfo.Minute != 31 {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if got.Stats == nil {
		t.Fatalf("expected empty stats tree to survive encoding")
	}

	mr.FastForward(121 * time.Second)
	if _, ok, err := cache.Get(ctx, 555); err != nil || ok {
		t.Fatalf("expected expired snapshot, ok %v err %v", ok, err)
	}
}

func TestRedisSnapshotCache_DeleteAndMiss(t *testing.T) {
	t.Parallel()

	cache, mr := newRedisCache(t)
	ctx := context.Background()

	if _, ok, err := cache.Get(ctx, 1); err != nil || ok {
		t.Fatalf("expected clean miss, ok %v err %v", ok, err)
	}
	if err := cache.Set(ctx, sampleSnapshot(), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := cache.Delete(ctx, 555); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if mr.Exists("live:fixture:555") {
		t.Fatalf("expected key removed")
	}
	if err := cache.Delete(ctx, 555); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
}

func TestRedisSnapshotCache_CorruptValue(t *testing.T) {
	t.Parallel()

	cache, mr := newRedisCache(t)
	if err := mr.Set("live:fixture:9", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, _, err := cache.Get(context.Background(), 9); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestMemorySnapshotCache_Expiry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)
	cache := NewMemorySnapshotCache(basecache.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	if err := cache.Set(ctx, sampleSnapshot(), 2*time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if _, ok, _ := cache.Get(ctx, 555); !ok {
		t.Fatalf("expected hit")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, 555); ok {
		t.Fatalf("expected miss after ttl")
	}

	_ = cache.Set(ctx, sampleSnapshot(), time.Minute)
	_ = cache.Delete(ctx, 555)
	if _, ok, _ := cache.Get(ctx, 555); ok {
		t.Fatalf("expected miss after delete")
	}
}
