package postgres

import "github.com/riskibarqy/football-live/internal/domain/lineup"

type lineupColumns struct {
	FixtureID     int64    `db:"fixture_id"`
	TeamID        int64    `db:"team_id"`
	PlayerID      int64    `db:"player_id"`
	Formation     string   `db:"formation"`
	Position      string   `db:"position"`
	ShirtNumber   *int     `db:"shirt_number"`
	Starter       bool     `db:"starter"`
	Substitute    bool     `db:"substitute"`
	Captain       bool     `db:"captain"`
	Rating        *float64 `db:"rating"`
	MinutesPlayed *int     `db:"minutes_played"`
}

type lineupTableModel struct {
	ID int64 `db:"id"`
	lineupColumns
}

var lineupSelectColumns = selectColumns(lineupColumns{})

func (m lineupTableModel) toDomain() lineup.Entry {
	return lineup.Entry{
		ID:            m.ID,
		FixtureID:     m.FixtureID,
		TeamID:        m.TeamID,
		PlayerID:      m.PlayerID,
		Formation:     m.Formation,
		Position:      m.Position,
		ShirtNumber:   m.ShirtNumber,
		Starter:       m.Starter,
		Substitute:    m.Substitute,
		Captain:       m.Captain,
		Rating:        m.Rating,
		MinutesPlayed: m.MinutesPlayed,
	}
}
