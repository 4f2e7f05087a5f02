package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
	"github.com/riskibarqy/football-live/internal/usecase"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (fixture.Fixture, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[fixtureTableModel](ctx, q, "fixtures", fixtureSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

func (r *FixtureRepository) GetOrCreate(ctx context.Context, f fixture.Fixture) (fixture.Fixture, bool, error) {
	if f.SofascoreID <= 0 {
		return fixture.Fixture{}, false, fmt.Errorf("fixture sofascore id is required")
	}
	row, created, err := getOrCreate[fixtureTableModel](ctx, r.db, "fixtures", fixtureSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", f.SofascoreID)},
		fixtureColumnsFrom(f),
	)
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("get or create fixture %d: %w", f.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}

func (r *FixtureRepository) ListKickoffBetween(ctx context.Context, from, to time.Time) ([]fixture.Fixture, error) {
	q, _ := executor(ctx, r.db)
	rows, err := selectMany[fixtureTableModel](ctx, q, "fixtures", fixtureSelectColumns,
		[]string{"date", "id"},
		qb.Between("date", from.UTC(), to.UTC()),
	)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by kickoff: %w", err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) UpdateLiveState(ctx context.Context, id int64, state fixture.LiveState) error {
	return r.update(ctx, id, qb.Update("fixtures").
		Set("status", fixture.NormalizeStatus(state.Status)).
		Set("home_score", state.HomeScore).
		Set("away_score", state.AwayScore).
		Set("is_live", state.IsLive).
		SetExpr("updated_at", "NOW()"))
}

// MarkAvailability only ever switches flags on.
func (r *FixtureRepository) MarkAvailability(ctx context.Context, id int64, flags fixture.Availability) error {
	return r.update(ctx, id, qb.Update("fixtures").
		SetExpr("has_events", "has_events OR ?", flags.Events).
		SetExpr("has_statistics", "has_statistics OR ?", flags.Statistics).
		SetExpr("has_lineups", "has_lineups OR ?", flags.Lineups).
		SetExpr("updated_at", "NOW()"))
}

func (r *FixtureRepository) update(ctx context.Context, id int64, b *qb.UpdateBuilder) error {
	query, args, err := b.Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build update fixture query: %w", err)
	}

	q, _ := executor(ctx, r.db)
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update fixture %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update fixture %d rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: fixture %d", usecase.ErrNotFound, id)
	}
	return nil
}
