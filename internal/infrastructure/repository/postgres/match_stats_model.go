package postgres

import "github.com/riskibarqy/football-live/internal/domain/matchstats"

type matchStatsColumns struct {
	FixtureID          int64   `db:"fixture_id"`
	TeamID             int64   `db:"team_id"`
	ShotsOnGoal        int     `db:"shots_on_goal"`
	ShotsOffGoal       int     `db:"shots_off_goal"`
	TotalShots         int     `db:"total_shots"`
	BlockedShots       int     `db:"blocked_shots"`
	ShotsInsideBox     int     `db:"shots_inside_box"`
	ShotsOutsideBox    int     `db:"shots_outside_box"`
	Fouls              int     `db:"fouls"`
	Corners            int     `db:"corners"`
	Offsides           int     `db:"offsides"`
	Passes             int     `db:"passes"`
	Tackles            int     `db:"tackles"`
	Saves              int     `db:"saves"`
	YellowCards        int     `db:"yellow_cards"`
	RedCards           int     `db:"red_cards"`
	FoulsDrawn         int     `db:"fouls_drawn"`
	PenaltiesCommitted int     `db:"penalties_committed"`
	PenaltiesSaved     int     `db:"penalties_saved"`
	PenaltiesMissed    int     `db:"penalties_missed"`
	Crosses            int     `db:"crosses"`
	ThrowIns           int     `db:"throw_ins"`
	Clearances         int     `db:"clearances"`
	Interceptions      int     `db:"interceptions"`
	AerialsWon         int     `db:"aerials_won"`
	AerialsLost        int     `db:"aerials_lost"`
	OffsidesGiven      int     `db:"offsides_given"`
	OffsidesWon        int     `db:"offsides_won"`
	Dribbles           int     `db:"dribbles"`
	BallPossession     float64 `db:"ball_possession"`
	PassAccuracy       float64 `db:"pass_accuracy"`
	CrossesAccuracy    float64 `db:"crosses_accuracy"`
	DribbleSuccess     float64 `db:"dribble_success"`
	TacklesWon         float64 `db:"tackles_won"`
	TacklesLost        float64 `db:"tackles_lost"`
}

type matchStatsTableModel struct {
	ID int64 `db:"id"`
	matchStatsColumns
}

var matchStatsSelectColumns = selectColumns(matchStatsColumns{})

func matchStatsColumnsFrom(s matchstats.Statistics) matchStatsColumns {
	return matchStatsColumns{
		FixtureID:          s.FixtureID,
		TeamID:             s.TeamID,
		ShotsOnGoal:        s.ShotsOnGoal,
		ShotsOffGoal:       s.ShotsOffGoal,
		TotalShots:         s.TotalShots,
		BlockedShots:       s.BlockedShots,
		ShotsInsideBox:     s.ShotsInsideBox,
		ShotsOutsideBox:    s.ShotsOutsideBox,
		Fouls:              s.Fouls,
		Corners:            s.Corners,
		Offsides:           s.Offsides,
		Passes:             s.Passes,
		Tackles:            s.Tackles,
		Saves:              s.Saves,
		YellowCards:        s.YellowCards,
		RedCards:           s.RedCards,
		FoulsDrawn:         s.FoulsDrawn,
		PenaltiesCommitted: s.PenaltiesCommitted,
		PenaltiesSaved:     s.PenaltiesSaved,
		PenaltiesMissed:    s.PenaltiesMissed,
		Crosses:            s.Crosses,
		ThrowIns:           s.ThrowIns,
		Clearances:         s.Clearances,
		Interceptions:      s.Interceptions,
		AerialsWon:         s.AerialsWon,
		AerialsLost:        s.AerialsLost,
		OffsidesGiven:      s.OffsidesGiven,
		OffsidesWon:        s.OffsidesWon,
		Dribbles:           s.Dribbles,
		BallPossession:     s.BallPossession,
		PassAccuracy:       s.PassAccuracy,
		CrossesAccuracy:    s.CrossesAccuracy,
		DribbleSuccess:     s.DribbleSuccess,
		TacklesWon:         s.TacklesWon,
		TacklesLost:        s.TacklesLost,
	}
}

func (m matchStatsTableModel) toDomain() matchstats.Statistics {
	c := m.matchStatsColumns
	return matchstats.Statistics{
		ID:                 m.ID,
		FixtureID:          c.FixtureID,
		TeamID:             c.TeamID,
		ShotsOnGoal:        c.ShotsOnGoal,
		ShotsOffGoal:       c.ShotsOffGoal,
		TotalShots:         c.TotalShots,
		BlockedShots:       c.BlockedShots,
		ShotsInsideBox:     c.ShotsInsideBox,
		ShotsOutsideBox:    c.ShotsOutsideBox,
		Fouls:              c.Fouls,
		Corners:            c.Corners,
		Offsides:           c.Offsides,
		Passes:             c.Passes,
		Tackles:            c.Tackles,
		Saves:              c.Saves,
		YellowCards:        c.YellowCards,
		RedCards:           c.RedCards,
		FoulsDrawn:         c.FoulsDrawn,
		PenaltiesCommitted: c.PenaltiesCommitted,
		PenaltiesSaved:     c.PenaltiesSaved,
		PenaltiesMissed:    c.PenaltiesMissed,
		Crosses:            c.Crosses,
		ThrowIns:           c.ThrowIns,
		Clearances:         c.Clearances,
		Interceptions:      c.Interceptions,
		AerialsWon:         c.AerialsWon,
		AerialsLost:        c.AerialsLost,
		OffsidesGiven:      c.OffsidesGiven,
		OffsidesWon:        c.OffsidesWon,
		Dribbles:           c.Dribbles,
		BallPossession:     c.BallPossession,
		PassAccuracy:       c.PassAccuracy,
		CrossesAccuracy:    c.CrossesAccuracy,
		DribbleSuccess:     c.DribbleSuccess,
		TacklesWon:         c.TacklesWon,
		TacklesLost:        c.TacklesLost,
	}
}
