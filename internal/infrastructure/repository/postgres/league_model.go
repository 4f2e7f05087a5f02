package postgres

import "github.com/riskibarqy/football-live/internal/domain/league"

type leagueColumns struct {
	SofascoreID int64  `db:"sofascore_id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Country     string `db:"country"`
}

type leagueTableModel struct {
	ID int64 `db:"id"`
	leagueColumns
}

var leagueSelectColumns = selectColumns(leagueColumns{})

func (m leagueTableModel) toDomain() league.League {
	return league.League{
		ID:          m.ID,
		SofascoreID: m.SofascoreID,
		Name:        m.Name,
		Slug:        m.Slug,
		Country:     m.Country,
	}
}
