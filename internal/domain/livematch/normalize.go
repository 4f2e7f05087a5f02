package livematch

import (
	"strings"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
)

// Status returns the normalized status type of the event.
func Status(env EventEnvelope) string {
	if env.Event == nil {
		return fixture.StatusNotStarted
	}
	return fixture.NormalizeStatus(env.Event.Status.Type)
}

// ParseMatchInfo extracts teams, scores and the running minute. now is the
// reference clock for the minute.
func ParseMatchInfo(env EventEnvelope, now time.Time) (MatchInfo, error) {
	if env.Event == nil {
		return MatchInfo{}, ErrMalformedPayload
	}
	ev := env.Event

	return MatchInfo{
		HomeTeam: TeamInfo{ID: ev.HomeTeam.ID, Name: ev.HomeTeam.Name, ShortName: ev.HomeTeam.ShortName},
		AwayTeam: TeamInfo{ID: ev.AwayTeam.ID, Name: ev.AwayTeam.Name, ShortName: ev.AwayTeam.ShortName},
		Score: Score{
			Home:        ev.HomeScore.Current,
			Away:        ev.AwayScore.Current,
			HomePeriod1: ev.HomeScore.Period1,
			AwayPeriod1: ev.AwayScore.Period1,
			HomePeriod2: ev.HomeScore.Period2,
			AwayPeriod2: ev.AwayScore.Period2,
		},
		Minute:            Minute(ev.Time, now),
		StatusDescription: ev.Status.Description,
		Tournament:        ev.Tournament.Name,
		StartTimestamp:    ev.StartTimestamp,
	}, nil
}

// Minute is floor((now - period start + initial) / 60), or nil without a period start.
func Minute(t RawTime, now time.Time) *int {
	if t.CurrentPeriodStartTimestamp == nil || *t.CurrentPeriodStartTimestamp <= 0 {
		return nil
	}
	var initial int64
	if t.Initial != nil {
		initial = *t.Initial
	}
	elapsed := now.Unix() - *t.CurrentPeriodStartTimestamp + initial
	if elapsed < 0 {
		elapsed = 0
	}
	minute := int(elapsed / 60)
	return &minute
}

// ParseIncidents splits incidents into events and period markers. It also
// returns the provider types of incidents that were dropped as unrecognized.
func ParseIncidents(env IncidentsEnvelope) (Incidents, []string) {
	out := Incidents{Events: []Incident{}, Periods: []Period{}}
	var dropped []string

	for _, raw := range env.Incidents {
		switch raw.IncidentType {
		case "period":
			out.Periods = append(out.Periods, Period{
				Text:      raw.Text,
				Time:      raw.Time,
				HomeScore: raw.HomeScore,
				AwayScore: raw.AwayScore,
				IsLive:    raw.IsLive,
			})
			continue
		case "injuryTime":
			out.Periods = append(out.Periods, Period{
				Time:      raw.Time,
				AddedTime: raw.Length,
				Injury:    true,
			})
			continue
		}

		inc := classifyIncident(raw)
		if inc.Kind == KindUnrecognized {
			dropped = append(dropped, raw.IncidentType)
			continue
		}
		out.Events = append(out.Events, inc)
	}
	return out, dropped
}

// ParseStatistics builds the period -> group -> item tree. Periods with no
// items are omitted, so a match without statistics yields an empty tree.
func ParseStatistics(env StatisticsEnvelope) StatsTree {
	tree := StatsTree{}
	for _, rp := range env.Statistics {
		name := strings.ToLower(strings.TrimSpace(rp.Period))
		if name == "" {
			name = PeriodAll
		}

		period := StatsPeriod{}
		for _, rg := range rp.Groups {
			group := StatGroup{Name: groupKey(rg.GroupName)}
			for _, item := range rg.StatisticsItems {
				if item.Key == "" {
					continue
				}
				group.Items = append(group.Items, StatItem{
					Key:         item.Key,
					Name:        item.Name,
					Home:        item.HomeValue,
					Away:        item.AwayValue,
					HomeDisplay: item.Home,
					AwayDisplay: item.Away,
					HomeTotal:   item.HomeTotal,
					AwayTotal:   item.AwayTotal,
				})
			}
			if len(group.Items) > 0 {
				period.Groups = append(period.Groups, group)
			}
		}
		if len(period.Groups) > 0 {
			tree[name] = period
		}
	}
	return tree
}

// ParseLineup converts one side of the lineups payload. nil in, nil out.
func ParseLineup(raw *RawTeamLineup) *TeamLineup {
	if raw == nil {
		return nil
	}
	out := &TeamLineup{Formation: raw.Formation, Players: make([]LineupPlayer, 0, len(raw.Players))}
	for _, p := range raw.Players {
		lp := LineupPlayer{
			ID:          p.Player.ID,
			Name:        p.Player.Name,
			Position:    firstNonEmpty(p.Position, p.Player.Position),
			ShirtNumber: p.ShirtNumber,
			Substitute:  p.Substitute,
			Captain:     p.Captain,
		}
		if p.Statistics != nil {
			lp.Rating = p.Statistics.Rating
			lp.MinutesPlayed = p.Statistics.MinutesPlayed
		}
		out.Players = append(out.Players, lp)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
