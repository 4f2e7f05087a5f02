package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/season"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (season.Season, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[seasonTableModel](ctx, q, "seasons", seasonSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return season.Season{}, false, fmt.Errorf("get season by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

func (r *SeasonRepository) GetOrCreate(ctx context.Context, s season.Season) (season.Season, bool, error) {
	if err := s.Validate(); err != nil {
		return season.Season{}, false, err
	}
	row, created, err := getOrCreate[seasonTableModel](ctx, r.db, "seasons", seasonSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", s.SofascoreID)},
		seasonColumns{SofascoreID: s.SofascoreID, LeagueID: s.LeagueID, Name: s.Name, Year: s.Year},
	)
	if err != nil {
		return season.Season{}, false, fmt.Errorf("get or create season %d: %w", s.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}
