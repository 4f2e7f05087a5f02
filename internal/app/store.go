package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/riskibarqy/football-live/internal/config"
	"github.com/riskibarqy/football-live/internal/infrastructure/livecache"
	"github.com/riskibarqy/football-live/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-live/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-live/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/football-live/internal/platform/cache"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/usecase"
)

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.Repositories, func() error, error) {
	var (
		repos   usecase.Repositories
		closeFn = func() error { return nil }
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store", "reason", "STORE_DRIVER=memory")
		repos = usecase.Repositories{
			Leagues:   memory.NewLeagueRepository(),
			Seasons:   memory.NewSeasonRepository(),
			Teams:     memory.NewTeamRepository(),
			Players:   memory.NewPlayerRepository(),
			Managers:  memory.NewManagerRepository(),
			Fixtures:  memory.NewFixtureRepository(),
			Events:    memory.NewEventRepository(),
			Stats:     memory.NewStatsRepository(),
			Lineups:   memory.NewLineupRepository(),
			Standings: memory.NewStandingRepository(),
			Tx:        memory.NewTxManager(),
		}
	default:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return usecase.Repositories{}, nil, err
		}
		logger.Info("postgres store connected", "db_name", dbNameFromURL(cfg.DBURL))
		closeFn = db.Close
		repos = usecase.Repositories{
			Leagues:   postgres.NewLeagueRepository(db),
			Seasons:   postgres.NewSeasonRepository(db),
			Teams:     postgres.NewTeamRepository(db),
			Players:   postgres.NewPlayerRepository(db),
			Managers:  postgres.NewManagerRepository(db),
			Fixtures:  postgres.NewFixtureRepository(db),
			Events:    postgres.NewEventRepository(db),
			Stats:     postgres.NewStatsRepository(db),
			Lineups:   postgres.NewLineupRepository(db),
			Standings: postgres.NewStandingRepository(db),
			Tx:        postgres.NewTxManager(db),
		}
	}

	// Reference rows are looked up once per match during ingestion.
	refs := basecache.NewStore(cfg.ReferenceCacheTTL)
	repos.Leagues = cache.NewLeagueRepository(repos.Leagues, refs)
	repos.Seasons = cache.NewSeasonRepository(repos.Seasons, refs)
	repos.Teams = cache.NewTeamRepository(repos.Teams, refs)
	repos.Players = cache.NewPlayerRepository(repos.Players, refs)

	return repos, closeFn, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// openSnapshotCache uses redis when REDIS_ADDR is set and an in-process map
// otherwise. The in-process cache is not shared between api and livetracker.
func openSnapshotCache(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.SnapshotCache, func() error, error) {
	if cfg.RedisAddr == "" {
		logger.Warn("using in-memory snapshot cache", "reason", "REDIS_ADDR empty")
		return livecache.NewMemorySnapshotCache(), func() error { return nil }, nil
	}

	client := redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{cfg.RedisAddr},
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	snapshots := livecache.NewRedisSnapshotCache(client)
	if err := snapshots.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("redis snapshot cache connected", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	return snapshots, client.Close, nil
}
