package postgres

import "github.com/riskibarqy/football-live/internal/domain/matchevent"

type matchEventColumns struct {
	SofascoreID    int64  `db:"sofascore_id"`
	FixtureID      int64  `db:"fixture_id"`
	TeamID         *int64 `db:"team_id"`
	PlayerID       *int64 `db:"player_id"`
	AssistPlayerID *int64 `db:"assist_player_id"`
	PlayerOutID    *int64 `db:"player_out_id"`
	Type           string `db:"type"`
	Minute         *int   `db:"minute"`
	ExtraMinute    *int   `db:"extra_minute"`
	IsHome         bool   `db:"is_home"`
	HomeScore      *int   `db:"home_score"`
	AwayScore      *int   `db:"away_score"`
	IncidentClass  string `db:"incident_class"`
	Reason         string `db:"reason"`
	Detail         string `db:"detail"`
	Comments       string `db:"comments"`
}

type matchEventTableModel struct {
	ID int64 `db:"id"`
	matchEventColumns
}

var matchEventSelectColumns = selectColumns(matchEventColumns{})

func (m matchEventTableModel) toDomain() matchevent.Event {
	return matchevent.Event{
		ID:             m.ID,
		SofascoreID:    m.SofascoreID,
		FixtureID:      m.FixtureID,
		TeamID:         m.TeamID,
		PlayerID:       m.PlayerID,
		AssistPlayerID: m.AssistPlayerID,
		PlayerOutID:    m.PlayerOutID,
		Type:           m.Type,
		Minute:         m.Minute,
		ExtraMinute:    m.ExtraMinute,
		IsHome:         m.IsHome,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		IncidentClass:  m.IncidentClass,
		Reason:         m.Reason,
		Detail:         m.Detail,
		Comments:       m.Comments,
	}
}
