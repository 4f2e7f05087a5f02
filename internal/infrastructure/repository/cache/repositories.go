package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/football-live/internal/domain/league"
	"github.com/riskibarqy/football-live/internal/domain/player"
	"github.com/riskibarqy/football-live/internal/domain/season"
	"github.com/riskibarqy/football-live/internal/domain/team"
	basecache "github.com/riskibarqy/football-live/internal/platform/cache"
	"github.com/riskibarqy/football-live/internal/platform/txscope"
)

// Reference rows never change their natural key, so a lookup by Sofascore id
// can be served from memory once the row is known to exist. Misses are not
// kept; the next GetOrCreate may insert the row. Calls made inside a
// transaction bypass the cache entirely: what they see may be rolled back.

type cachedLookup[T any] struct {
	value  T
	exists bool
}

func lookup[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	if txscope.Active(ctx) {
		return load(ctx)
	}

	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedLookup[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedLookup[T])
	if !cached.exists {
		store.Delete(ctx, key)
	}
	return cached.value, cached.exists, nil
}

// remember caches rows that were already stored before the call. Freshly
// inserted rows may still belong to an open transaction.
func remember[T any](ctx context.Context, store *basecache.Store, key string, item T, created bool) {
	if created || txscope.Active(ctx) {
		return
	}
	store.Set(ctx, key, cachedLookup[T]{value: item, exists: true})
}

func sofascoreKey(prefix string, id int64) string {
	return prefix + ":sofascore:" + strconv.FormatInt(id, 10)
}

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (league.League, bool, error) {
	return lookup(ctx, r.cache, sofascoreKey("league", sofascoreID), func(ctx context.Context) (league.League, bool, error) {
		return r.next.GetBySofascoreID(ctx, sofascoreID)
	})
}

func (r *LeagueRepository) GetOrCreate(ctx context.Context, l league.League) (league.League, bool, error) {
	item, created, err := r.next.GetOrCreate(ctx, l)
	if err != nil {
		return league.League{}, false, err
	}
	remember(ctx, r.cache, sofascoreKey("league", item.SofascoreID), item, created)
	return item, created, nil
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (season.Season, bool, error) {
	return lookup(ctx, r.cache, sofascoreKey("season", sofascoreID), func(ctx context.Context) (season.Season, bool, error) {
		return r.next.GetBySofascoreID(ctx, sofascoreID)
	})
}

func (r *SeasonRepository) GetOrCreate(ctx context.Context, s season.Season) (season.Season, bool, error) {
	item, created, err := r.next.GetOrCreate(ctx, s)
	if err != nil {
		return season.Season{}, false, err
	}
	remember(ctx, r.cache, sofascoreKey("season", item.SofascoreID), item, created)
	return item, created, nil
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (team.Team, bool, error) {
	return lookup(ctx, r.cache, sofascoreKey("team", sofascoreID), func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetBySofascoreID(ctx, sofascoreID)
	})
}

func (r *TeamRepository) GetOrCreate(ctx context.Context, t team.Team) (team.Team, bool, error) {
	item, created, err := r.next.GetOrCreate(ctx, t)
	if err != nil {
		return team.Team{}, false, err
	}
	remember(ctx, r.cache, sofascoreKey("team", item.SofascoreID), item, created)
	return item, created, nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (player.Player, bool, error) {
	return lookup(ctx, r.cache, sofascoreKey("player", sofascoreID), func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetBySofascoreID(ctx, sofascoreID)
	})
}

func (r *PlayerRepository) GetOrCreate(ctx context.Context, p player.Player) (player.Player, bool, error) {
	item, created, err := r.next.GetOrCreate(ctx, p)
	if err != nil {
		return player.Player{}, false, err
	}
	remember(ctx, r.cache, sofascoreKey("player", item.SofascoreID), item, created)
	return item, created, nil
}
