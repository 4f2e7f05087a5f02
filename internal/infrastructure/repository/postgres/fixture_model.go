package postgres

import (
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
)

type fixtureColumns struct {
	SofascoreID int64     `db:"sofascore_id"`
	LeagueID    int64     `db:"league_id"`
	SeasonID    *int64    `db:"season_id"`
	HomeTeamID  int64     `db:"home_team_id"`
	AwayTeamID  int64     `db:"away_team_id"`
	Date        time.Time `db:"date"`
	Round       *int      `db:"round"`
	RoundName   string    `db:"round_name"`
	GroupName   string    `db:"group_name"`
	GroupSign   string    `db:"group_sign"`
	Status      string    `db:"status"`

	HomeScore           *int `db:"home_score"`
	AwayScore           *int `db:"away_score"`
	HomeScorePeriod1    *int `db:"home_score_period1"`
	AwayScorePeriod1    *int `db:"away_score_period1"`
	HomeScorePeriod2    *int `db:"home_score_period2"`
	AwayScorePeriod2    *int `db:"away_score_period2"`
	HomeScoreNormaltime *int `db:"home_score_normaltime"`
	AwayScoreNormaltime *int `db:"away_score_normaltime"`

	IsLive        bool `db:"is_live"`
	HasLineups    bool `db:"has_lineups"`
	HasStatistics bool `db:"has_statistics"`
	HasEvents     bool `db:"has_events"`
}

type fixtureTableModel struct {
	ID int64 `db:"id"`
	fixtureColumns
}

var fixtureSelectColumns = selectColumns(fixtureColumns{})

func fixtureColumnsFrom(f fixture.Fixture) fixtureColumns {
	return fixtureColumns{
		SofascoreID:         f.SofascoreID,
		LeagueID:            f.LeagueID,
		SeasonID:            f.SeasonID,
		HomeTeamID:          f.HomeTeamID,
		AwayTeamID:          f.AwayTeamID,
		Date:                f.Date.UTC(),
		Round:               f.Round,
		RoundName:           f.RoundName,
		GroupName:           f.GroupName,
		GroupSign:           f.GroupSign,
		Status:              fixture.NormalizeStatus(f.Status),
		HomeScore:           f.HomeScore,
		AwayScore:           f.AwayScore,
		HomeScorePeriod1:    f.HomeScorePeriod1,
		AwayScorePeriod1:    f.AwayScorePeriod1,
		HomeScorePeriod2:    f.HomeScorePeriod2,
		AwayScorePeriod2:    f.AwayScorePeriod2,
		HomeScoreNormaltime: f.HomeScoreNormaltime,
		AwayScoreNormaltime: f.AwayScoreNormaltime,
		IsLive:              f.IsLive,
		HasLineups:          f.HasLineups,
		HasStatistics:       f.HasStatistics,
		HasEvents:           f.HasEvents,
	}
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:                  m.ID,
		SofascoreID:         m.SofascoreID,
		LeagueID:            m.LeagueID,
		SeasonID:            m.SeasonID,
		HomeTeamID:          m.HomeTeamID,
		AwayTeamID:          m.AwayTeamID,
		Date:                m.Date.UTC(),
		Round:               m.Round,
		RoundName:           m.RoundName,
		GroupName:           m.GroupName,
		GroupSign:           m.GroupSign,
		Status:              m.Status,
		HomeScore:           m.HomeScore,
		AwayScore:           m.AwayScore,
		HomeScorePeriod1:    m.HomeScorePeriod1,
		AwayScorePeriod1:    m.AwayScorePeriod1,
		HomeScorePeriod2:    m.HomeScorePeriod2,
		AwayScorePeriod2:    m.AwayScorePeriod2,
		HomeScoreNormaltime: m.HomeScoreNormaltime,
		AwayScoreNormaltime: m.AwayScoreNormaltime,
		IsLive:              m.IsLive,
		HasLineups:          m.HasLineups,
		HasStatistics:       m.HasStatistics,
		HasEvents:           m.HasEvents,
	}
}
