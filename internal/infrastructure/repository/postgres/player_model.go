package postgres

import (
	"time"

	"github.com/riskibarqy/football-live/internal/domain/player"
)

type playerColumns struct {
	SofascoreID  int64      `db:"sofascore_id"`
	TeamID       *int64     `db:"team_id"`
	Name         string     `db:"name"`
	ShortName    string     `db:"short_name"`
	Slug         string     `db:"slug"`
	Position     string     `db:"position"`
	JerseyNumber string     `db:"jersey_number"`
	Height       *int       `db:"height"`
	Country      string     `db:"country"`
	DateOfBirth  *time.Time `db:"date_of_birth"`
}

type playerTableModel struct {
	ID int64 `db:"id"`
	playerColumns
}

var playerSelectColumns = selectColumns(playerColumns{})

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:           m.ID,
		SofascoreID:  m.SofascoreID,
		TeamID:       m.TeamID,
		Name:         m.Name,
		ShortName:    m.ShortName,
		Slug:         m.Slug,
		Position:     m.Position,
		JerseyNumber: m.JerseyNumber,
		Height:       m.Height,
		Country:      m.Country,
		DateOfBirth:  m.DateOfBirth,
	}
}
