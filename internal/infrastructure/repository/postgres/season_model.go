package postgres

import "github.com/riskibarqy/football-live/internal/domain/season"

type seasonColumns struct {
	SofascoreID int64  `db:"sofascore_id"`
	LeagueID    int64  `db:"league_id"`
	Name        string `db:"name"`
	Year        string `db:"year"`
}

type seasonTableModel struct {
	ID int64 `db:"id"`
	seasonColumns
}

var seasonSelectColumns = selectColumns(seasonColumns{})

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{
		ID:          m.ID,
		SofascoreID: m.SofascoreID,
		LeagueID:    m.LeagueID,
		Name:        m.Name,
		Year:        m.Year,
	}
}
