package fixture

import (
	"strings"
	"time"
)

const (
	StatusNotStarted = "notstarted"
	StatusInProgress = "inprogress"
	StatusFinished   = "finished"
	StatusPostponed  = "postponed"
	StatusCancelled  = "cancelled"
	StatusAbandoned  = "abandoned"
)

// Fixture is the durable record of one match, keyed by the provider event id.
type Fixture struct {
	ID          int64
	SofascoreID int64
	LeagueID    int64
	SeasonID    *int64
	HomeTeamID  int64
	AwayTeamID  int64
	Date        time.Time
	Round       *int
	RoundName   string
	GroupName   string
	GroupSign   string
	Status      string

	HomeScore           *int
	AwayScore           *int
	HomeScorePeriod1    *int
	AwayScorePeriod1    *int
	HomeScorePeriod2    *int
	AwayScorePeriod2    *int
	HomeScoreNormaltime *int
	AwayScoreNormaltime *int

	IsLive        bool
	HasLineups    bool
	HasStatistics bool
	HasEvents     bool
}

// LiveState is the subset of a fixture the tracker rewrites on status changes.
type LiveState struct {
	Status    string
	HomeScore *int
	AwayScore *int
	IsLive    bool
}

// Availability flags are only ever switched on.
type Availability struct {
	Events     bool
	Statistics bool
	Lineups    bool
}

// NormalizeStatus maps provider status types onto the stored vocabulary.
// The provider spells cancellation "canceled".
func NormalizeStatus(value string) string {
	status := strings.ToLower(strings.TrimSpace(value))
	switch status {
	case "":
		return StatusNotStarted
	case "canceled":
		return StatusCancelled
	default:
		return status
	}
}

func IsFinishedStatus(status string) bool {
	return NormalizeStatus(status) == StatusFinished
}

// HasStarted reports whether incidents and statistics can exist for the status.
func HasStarted(status string) bool {
	switch NormalizeStatus(status) {
	case StatusInProgress, StatusFinished:
		return true
	default:
		return false
	}
}
