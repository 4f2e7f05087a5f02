package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/league"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (league.League, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[leagueTableModel](ctx, q, "leagues", leagueSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return league.League{}, false, fmt.Errorf("get league by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

func (r *LeagueRepository) GetOrCreate(ctx context.Context, l league.League) (league.League, bool, error) {
	if err := l.Validate(); err != nil {
		return league.League{}, false, err
	}
	row, created, err := getOrCreate[leagueTableModel](ctx, r.db, "leagues", leagueSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", l.SofascoreID)},
		leagueColumns{SofascoreID: l.SofascoreID, Name: l.Name, Slug: l.Slug, Country: l.Country},
	)
	if err != nil {
		return league.League{}, false, fmt.Errorf("get or create league %d: %w", l.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}
