package livematch

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedPayload is returned when a provider response lacks its top-level container.
var ErrMalformedPayload = errors.New("malformed provider payload")

// CacheKey is the snapshot key for a provider match id.
func CacheKey(sofascoreID int64) string {
	return fmt.Sprintf("live:fixture:%d", sofascoreID)
}

type TeamInfo struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type Score struct {
	Home        *int `json:"home"`
	Away        *int `json:"away"`
	HomePeriod1 *int `json:"home_period1"`
	AwayPeriod1 *int `json:"away_period1"`
	HomePeriod2 *int `json:"home_period2"`
	AwayPeriod2 *int `json:"away_period2"`
}

type MatchInfo struct {
	HomeTeam          TeamInfo `json:"home_team"`
	AwayTeam          TeamInfo `json:"away_team"`
	Score             Score    `json:"score"`
	Minute            *int     `json:"minute"`
	StatusDescription string   `json:"status_description"`
	Tournament        string   `json:"tournament"`
	StartTimestamp    int64    `json:"start_timestamp"`
}

// Snapshot is the cached live view of one match. Incidents and Stats stay nil
// when they were not fetched or the fetch failed; an empty value means the
// provider had nothing to report yet.
type Snapshot struct {
	FixtureID int64      `json:"fixture_id"`
	Timestamp time.Time  `json:"timestamp"`
	Status    string     `json:"status"`
	MatchInfo MatchInfo  `json:"match_info"`
	Incidents *Incidents `json:"incidents"`
	Stats     StatsTree  `json:"stats"`
	Lineups   *Lineups   `json:"lineups"`
}

type LineupPlayer struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Position      string   `json:"position,omitempty"`
	ShirtNumber   *int     `json:"shirt_number,omitempty"`
	Substitute    bool     `json:"substitute"`
	Captain       bool     `json:"captain"`
	Rating        *float64 `json:"rating,omitempty"`
	MinutesPlayed *int     `json:"minutes_played,omitempty"`
}

type TeamLineup struct {
	Formation string         `json:"formation"`
	Players   []LineupPlayer `json:"players"`
}

type Lineups struct {
	Home *TeamLineup `json:"home"`
	Away *TeamLineup `json:"away"`
}

// Side selects one team of a match.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)
