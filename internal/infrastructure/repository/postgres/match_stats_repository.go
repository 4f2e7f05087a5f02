package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/matchstats"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type StatsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetOrCreate keeps the first row per (fixture, team); later values are ignored.
func (r *StatsRepository) GetOrCreate(ctx context.Context, s matchstats.Statistics) (matchstats.Statistics, bool, error) {
	row, created, err := getOrCreate[matchStatsTableModel](ctx, r.db, "match_statistics", matchStatsSelectColumns,
		[]qb.Condition{qb.Eq("fixture_id", s.FixtureID), qb.Eq("team_id", s.TeamID)},
		matchStatsColumnsFrom(s),
	)
	if err != nil {
		return matchstats.Statistics{}, false, fmt.Errorf("get or create statistics fixture=%d team=%d: %w", s.FixtureID, s.TeamID, err)
	}
	return row.toDomain(), created, nil
}

func (r *StatsRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]matchstats.Statistics, error) {
	q, _ := executor(ctx, r.db)
	rows, err := selectMany[matchStatsTableModel](ctx, q, "match_statistics", matchStatsSelectColumns, []string{"id"}, qb.Eq("fixture_id", fixtureID))
	if err != nil {
		return nil, fmt.Errorf("list statistics: %w", err)
	}
	out := make([]matchstats.Statistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
