package postgres

import "github.com/riskibarqy/football-live/internal/domain/standing"

type standingColumns struct {
	SofascoreID    int64  `db:"sofascore_id"`
	LeagueID       int64  `db:"league_id"`
	SeasonID       int64  `db:"season_id"`
	TeamID         int64  `db:"team_id"`
	GroupName      string `db:"group_name"`
	Position       int    `db:"position"`
	Matches        int    `db:"matches"`
	Wins           int    `db:"wins"`
	Draws          int    `db:"draws"`
	Losses         int    `db:"losses"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	GoalDifference int    `db:"goal_difference"`
	Points         int    `db:"points"`
}

type standingTableModel struct {
	ID int64 `db:"id"`
	standingColumns
}

var standingSelectColumns = selectColumns(standingColumns{})

func (m standingTableModel) toDomain() standing.Standing {
	return standing.Standing{
		ID:             m.ID,
		SofascoreID:    m.SofascoreID,
		LeagueID:       m.LeagueID,
		SeasonID:       m.SeasonID,
		TeamID:         m.TeamID,
		GroupName:      m.GroupName,
		Position:       m.Position,
		Matches:        m.Matches,
		Wins:           m.Wins,
		Draws:          m.Draws,
		Losses:         m.Losses,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		GoalDifference: m.GoalDifference,
		Points:         m.Points,
	}
}
