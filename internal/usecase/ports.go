package usecase

import (
	"context"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/league"
	"github.com/riskibarqy/football-live/internal/domain/lineup"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/domain/manager"
	"github.com/riskibarqy/football-live/internal/domain/matchevent"
	"github.com/riskibarqy/football-live/internal/domain/matchstats"
	"github.com/riskibarqy/football-live/internal/domain/player"
	"github.com/riskibarqy/football-live/internal/domain/season"
	"github.com/riskibarqy/football-live/internal/domain/standing"
	"github.com/riskibarqy/football-live/internal/domain/team"
)

// LiveDataProvider is the provider surface the tracker polls. A missing
// resource is reported as ErrNotFound, retryable failures wrap ErrTransientFetch.
type LiveDataProvider interface {
	FetchMatch(ctx context.Context, sofascoreID int64) (livematch.EventEnvelope, error)
	FetchIncidents(ctx context.Context, sofascoreID int64) (livematch.IncidentsEnvelope, error)
	FetchStatistics(ctx context.Context, sofascoreID int64) (livematch.StatisticsEnvelope, error)
	FetchLineups(ctx context.Context, sofascoreID int64, side livematch.Side) (*livematch.RawTeamLineup, error)
	ListLiveMatchIDs(ctx context.Context) ([]int64, error)
}

// CompetitionDataProvider adds the reads the batch pipeline needs.
type CompetitionDataProvider interface {
	LiveDataProvider
	ListSeasons(ctx context.Context, tournamentID int64) ([]livematch.RawSeason, error)
	ListRounds(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawRoundInfo, error)
	ListRoundEvents(ctx context.Context, tournamentID, seasonID int64, round int) ([]livematch.RawEvent, error)
	FetchCupTrees(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawCupTree, error)
	FetchStandings(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawStandingTable, error)
	ListTeamPlayers(ctx context.Context, teamID int64) ([]livematch.RawPlayer, error)
	FetchMatchManagers(ctx context.Context, sofascoreID int64) (livematch.ManagersEnvelope, error)
	FetchManager(ctx context.Context, managerID int64) (livematch.RawManager, error)
}

// SnapshotCache stores live snapshots under livematch.CacheKey. Writes are last-writer-wins.
type SnapshotCache interface {
	Set(ctx context.Context, snapshot livematch.Snapshot, ttl time.Duration) error
	Get(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool, error)
	Delete(ctx context.Context, sofascoreID int64) error
}

// TxManager runs fn inside one store transaction. Repositories called with the
// ctx passed to fn join that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repositories bundles the durable store.
type Repositories struct {
	Leagues   league.Repository
	Seasons   season.Repository
	Teams     team.Repository
	Players   player.Repository
	Managers  manager.Repository
	Fixtures  fixture.Repository
	Events    matchevent.Repository
	Stats     matchstats.Repository
	Lineups   lineup.Repository
	Standings standing.Repository
	Tx        TxManager
}
