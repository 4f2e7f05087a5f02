package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/standing"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type StandingRepository struct {
	db *sqlx.DB
}

func NewStandingRepository(db *sqlx.DB) *StandingRepository {
	return &StandingRepository{db: db}
}

func (r *StandingRepository) ExistsForTeam(ctx context.Context, seasonID, teamID int64) (bool, error) {
	q, _ := executor(ctx, r.db)
	_, ok, err := selectOne[standingTableModel](ctx, q, "standings", standingSelectColumns,
		qb.Eq("season_id", seasonID),
		qb.Eq("team_id", teamID),
	)
	if err != nil {
		return false, fmt.Errorf("check standing season=%d team=%d: %w", seasonID, teamID, err)
	}
	return ok, nil
}

func (r *StandingRepository) GetOrCreate(ctx context.Context, s standing.Standing) (standing.Standing, bool, error) {
	c := standingColumns{
		SofascoreID:    s.SofascoreID,
		LeagueID:       s.LeagueID,
		SeasonID:       s.SeasonID,
		TeamID:         s.TeamID,
		GroupName:      s.GroupName,
		Position:       s.Position,
		Matches:        s.Matches,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
	}
	row, created, err := getOrCreate[standingTableModel](ctx, r.db, "standings", standingSelectColumns,
		[]qb.Condition{qb.Eq("season_id", s.SeasonID), qb.Eq("team_id", s.TeamID)},
		c,
	)
	if err != nil {
		return standing.Standing{}, false, fmt.Errorf("get or create standing season=%d team=%d: %w", s.SeasonID, s.TeamID, err)
	}
	return row.toDomain(), created, nil
}
