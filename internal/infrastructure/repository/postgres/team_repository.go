package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/team"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (team.Team, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[teamTableModel](ctx, q, "teams", teamSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get team by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

// GetOrCreate never updates an existing team; the first stored row wins.
func (r *TeamRepository) GetOrCreate(ctx context.Context, t team.Team) (team.Team, bool, error) {
	if err := t.Validate(); err != nil {
		return team.Team{}, false, err
	}
	row, created, err := getOrCreate[teamTableModel](ctx, r.db, "teams", teamSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", t.SofascoreID)},
		teamColumnsFrom(t),
	)
	if err != nil {
		return team.Team{}, false, fmt.Errorf("get or create team %d: %w", t.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}
