package postgres

import "github.com/riskibarqy/football-live/internal/domain/team"

type teamColumns struct {
	SofascoreID    int64  `db:"sofascore_id"`
	Name           string `db:"name"`
	ShortName      string `db:"short_name"`
	Slug           string `db:"slug"`
	Code           string `db:"code"`
	Country        string `db:"country"`
	LogoURL        string `db:"logo_url"`
	PrimaryColor   string `db:"primary_color"`
	SecondaryColor string `db:"secondary_color"`
	IsNational     bool   `db:"is_national"`
}

type teamTableModel struct {
	ID int64 `db:"id"`
	teamColumns
}

var teamSelectColumns = selectColumns(teamColumns{})

func teamColumnsFrom(t team.Team) teamColumns {
	return teamColumns{
		SofascoreID:    t.SofascoreID,
		Name:           t.Name,
		ShortName:      t.ShortName,
		Slug:           t.Slug,
		Code:           t.Code,
		Country:        t.Country,
		LogoURL:        t.LogoURL,
		PrimaryColor:   t.PrimaryColor,
		SecondaryColor: t.SecondaryColor,
		IsNational:     t.IsNational,
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             m.ID,
		SofascoreID:    m.SofascoreID,
		Name:           m.Name,
		ShortName:      m.ShortName,
		Slug:           m.Slug,
		Code:           m.Code,
		Country:        m.Country,
		LogoURL:        m.LogoURL,
		PrimaryColor:   m.PrimaryColor,
		SecondaryColor: m.SecondaryColor,
		IsNational:     m.IsNational,
	}
}
