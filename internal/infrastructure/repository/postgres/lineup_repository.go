package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/lineup"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type LineupRepository struct {
	db *sqlx.DB
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{db: db}
}

func (r *LineupRepository) GetOrCreate(ctx context.Context, e lineup.Entry) (lineup.Entry, bool, error) {
	row, created, err := getOrCreate[lineupTableModel](ctx, r.db, "lineups", lineupSelectColumns,
		[]qb.Condition{
			qb.Eq("fixture_id", e.FixtureID),
			qb.Eq("team_id", e.TeamID),
			qb.Eq("player_id", e.PlayerID),
		},
		lineupColumns{
			FixtureID:     e.FixtureID,
			TeamID:        e.TeamID,
			PlayerID:      e.PlayerID,
			Formation:     e.Formation,
			Position:      e.Position,
			ShirtNumber:   e.ShirtNumber,
			Starter:       e.Starter,
			Substitute:    e.Substitute,
			Captain:       e.Captain,
			Rating:        e.Rating,
			MinutesPlayed: e.MinutesPlayed,
		},
	)
	if err != nil {
		return lineup.Entry{}, false, fmt.Errorf("get or create lineup fixture=%d player=%d: %w", e.FixtureID, e.PlayerID, err)
	}
	return row.toDomain(), created, nil
}

func (r *LineupRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]lineup.Entry, error) {
	q, _ := executor(ctx, r.db)
	rows, err := selectMany[lineupTableModel](ctx, q, "lineups", lineupSelectColumns, []string{"id"}, qb.Eq("fixture_id", fixtureID))
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}
	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
