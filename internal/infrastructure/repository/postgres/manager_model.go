package postgres

import (
	"time"

	"github.com/riskibarqy/football-live/internal/domain/manager"
)

type managerColumns struct {
	SofascoreID int64      `db:"sofascore_id"`
	Name        string     `db:"name"`
	ShortName   string     `db:"short_name"`
	Slug        string     `db:"slug"`
	Country     string     `db:"country"`
	DateOfBirth *time.Time `db:"date_of_birth"`
}

type managerTableModel struct {
	ID int64 `db:"id"`
	managerColumns
}

var managerSelectColumns = selectColumns(managerColumns{})

func (m managerTableModel) toDomain() manager.Manager {
	return manager.Manager{
		ID:          m.ID,
		SofascoreID: m.SofascoreID,
		Name:        m.Name,
		ShortName:   m.ShortName,
		Slug:        m.Slug,
		Country:     m.Country,
		DateOfBirth: m.DateOfBirth,
	}
}

type teamManagerColumns struct {
	TeamID    int64 `db:"team_id"`
	ManagerID int64 `db:"manager_id"`
	IsCurrent bool  `db:"is_current"`
}

type teamManagerTableModel struct {
	ID int64 `db:"id"`
	teamManagerColumns
}

var teamManagerSelectColumns = selectColumns(teamManagerColumns{})
