package livematch

import (
	"math"
	"strings"

	"github.com/riskibarqy/football-live/internal/domain/matchstats"
)

// PeriodAll is the full-match statistics period.
const PeriodAll = "all"

type StatItem struct {
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	Home        *float64 `json:"home"`
	Away        *float64 `json:"away"`
	HomeDisplay string   `json:"home_display"`
	AwayDisplay string   `json:"away_display"`
	HomeTotal   *float64 `json:"home_total,omitempty"`
	AwayTotal   *float64 `json:"away_total,omitempty"`
}

type StatGroup struct {
	Name  string     `json:"name"`
	Items []StatItem `json:"items"`
}

// StatsPeriod keeps groups and items in provider order.
type StatsPeriod struct {
	Groups []StatGroup `json:"groups"`
}

// Item looks up key across all groups of the period.
func (p StatsPeriod) Item(key string) (StatItem, bool) {
	for _, g := range p.Groups {
		for _, it := range g.Items {
			if it.Key == key {
				return it, true
			}
		}
	}
	return StatItem{}, false
}

// Group returns the group named name.
func (p StatsPeriod) Group(name string) (StatGroup, bool) {
	for _, g := range p.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return StatGroup{}, false
}

// StatsTree maps lowercased period names to their statistics.
type StatsTree map[string]StatsPeriod

// providerStatFields maps provider statistic keys onto MatchStatistics fields.
var providerStatFields = map[string]string{
	"ballPossession":        "ball_possession",
	"totalShotsOnGoal":      "total_shots",
	"shotsOnGoal":           "shots_on_goal",
	"shotsOffGoal":          "shots_off_goal",
	"blockedScoringAttempt": "blocked_shots",
	"totalShotsInsideBox":   "shots_inside_box",
	"totalShotsOutsideBox":  "shots_outside_box",
	"fouls":                 "fouls",
	"cornerKicks":           "corners",
	"offsides":              "offsides",
	"passes":                "passes",
	"accuratePasses":        "pass_accuracy",
	"totalTackle":           "tackles",
	"goalkeeperSaves":       "saves",
	"yellowCards":           "yellow_cards",
	"redCards":              "red_cards",
	"accurateCross":         "crosses",
	"throwIns":              "throw_ins",
	"totalClearance":        "clearances",
	"interceptionWon":       "interceptions",
}

// StatLine is one team's derived statistics keyed by MatchStatistics field name.
type StatLine map[string]float64

// DeriveLines computes home and away lines from a period, walking items in
// provider order. pass_accuracy needs "passes" to appear before
// "accuratePasses"; otherwise it is left unset.
func DeriveLines(period StatsPeriod) (home, away StatLine) {
	home, away = StatLine{}, StatLine{}
	for _, g := range period.Groups {
		for _, it := range g.Items {
			home.apply(it.Key, it.Home, it.HomeTotal)
			away.apply(it.Key, it.Away, it.AwayTotal)
		}
	}
	return home, away
}

func (l StatLine) apply(key string, value, total *float64) {
	if value == nil {
		return
	}
	v := *value
	t := 0.0
	if total != nil {
		t = *total
	}

	if field, ok := providerStatFields[key]; ok {
		if key == "accuratePasses" {
			if passes, seen := l["passes"]; seen {
				l[field] = percent(v, passes)
			}
		} else {
			l[field] = v
		}
	}

	switch key {
	case "accurateCross":
		l["crosses"] = v
		l["crosses_accuracy"] = percent(v, t)
	case "dribblesPercentage":
		l["dribbles"] = v
		l["dribble_success"] = percent(v, t)
	case "wonTacklePercent":
		l["tackles_won"] = percent(v, t)
		l["tackles_lost"] = percent(t-v, t)
	case "aerialDuelsPercentage":
		l["aerials_won"] = v
		l["aerials_lost"] = t - v
	}
}

func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(part/whole*100*100) / 100
}

// ToStatistics converts a line into a persistable row.
func (l StatLine) ToStatistics(fixtureID, teamID int64) matchstats.Statistics {
	i := func(field string) int { return int(math.Round(l[field])) }
	return matchstats.Statistics{
		FixtureID:          fixtureID,
		TeamID:             teamID,
		ShotsOnGoal:        i("shots_on_goal"),
		ShotsOffGoal:       i("shots_off_goal"),
		TotalShots:         i("total_shots"),
		BlockedShots:       i("blocked_shots"),
		ShotsInsideBox:     i("shots_inside_box"),
		ShotsOutsideBox:    i("shots_outside_box"),
		Fouls:              i("fouls"),
		Corners:            i("corners"),
		Offsides:           i("offsides"),
		Passes:             i("passes"),
		Tackles:            i("tackles"),
		Saves:              i("saves"),
		YellowCards:        i("yellow_cards"),
		RedCards:           i("red_cards"),
		FoulsDrawn:         i("fouls_drawn"),
		PenaltiesCommitted: i("penalties_committed"),
		PenaltiesSaved:     i("penalties_saved"),
		PenaltiesMissed:    i("penalties_missed"),
		Crosses:            i("crosses"),
		ThrowIns:           i("throw_ins"),
		Clearances:         i("clearances"),
		Interceptions:      i("interceptions"),
		AerialsWon:         i("aerials_won"),
		AerialsLost:        i("aerials_lost"),
		OffsidesGiven:      i("offsides_given"),
		OffsidesWon:        i("offsides_won"),
		Dribbles:           i("dribbles"),
		BallPossession:     l["ball_possession"],
		PassAccuracy:       l["pass_accuracy"],
		CrossesAccuracy:    l["crosses_accuracy"],
		DribbleSuccess:     l["dribble_success"],
		TacklesWon:         l["tackles_won"],
		TacklesLost:        l["tackles_lost"],
	}
}

func groupKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}
