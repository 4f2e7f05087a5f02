package livematch

import (
	"strings"

	"github.com/riskibarqy/football-live/internal/domain/matchevent"
)

// Kind tags an Incident. The set is closed: provider types outside it become
// KindUnrecognized and are dropped by ParseIncidents.
type Kind string

const (
	KindGoal          Kind = matchevent.TypeGoal
	KindYellowCard    Kind = matchevent.TypeYellowCard
	KindRedCard       Kind = matchevent.TypeRedCard
	KindSubstitution  Kind = matchevent.TypeSubstitution
	KindVAR           Kind = matchevent.TypeVAR
	KindPenaltyMissed Kind = matchevent.TypePenaltyMissed
	KindUnrecognized  Kind = "unrecognized"
)

type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Incident is a normalized match event.
type Incident struct {
	Kind          Kind       `json:"type"`
	SofascoreID   *int64     `json:"id,omitempty"`
	Time          *int       `json:"time"`
	AddedTime     *int       `json:"added_time,omitempty"`
	Team          string     `json:"team"`
	Player        *PlayerRef `json:"player,omitempty"`
	Assist        *PlayerRef `json:"assist,omitempty"`
	PlayerOut     *PlayerRef `json:"player_out,omitempty"`
	IncidentClass string     `json:"incident_class,omitempty"`
	Reason        string     `json:"reason,omitempty"`
	Description   string     `json:"description,omitempty"`
	HomeScore     *int       `json:"home_score,omitempty"`
	AwayScore     *int       `json:"away_score,omitempty"`
	Penalty       bool       `json:"penalty,omitempty"`

	// ProviderType keeps the original incidentType for unrecognized incidents.
	ProviderType string `json:"-"`
}

// Period is a period or injury-time marker. It never becomes a MatchEvent.
type Period struct {
	Text      string `json:"text,omitempty"`
	Time      *int   `json:"time"`
	AddedTime *int   `json:"added_time,omitempty"`
	HomeScore *int   `json:"home_score,omitempty"`
	AwayScore *int   `json:"away_score,omitempty"`
	IsLive    bool   `json:"is_live"`
	Injury    bool   `json:"injury_time,omitempty"`
}

type Incidents struct {
	Events  []Incident `json:"events"`
	Periods []Period   `json:"periods"`
}

// IsHome reports the side of the incident.
func (i Incident) IsHome() bool {
	return i.Team == "home"
}

// Detail renders the one-line description stored with a persisted event.
func (i Incident) Detail() string {
	name := ""
	if i.Player != nil {
		name = i.Player.Name
	}

	switch {
	case i.Penalty:
		return "Penalty - " + name
	case i.Kind == KindGoal:
		if i.Assist != nil && i.Assist.Name != "" {
			return name + " (assist: " + i.Assist.Name + ")"
		}
		return name
	case i.Kind == KindYellowCard || i.Kind == KindRedCard:
		if i.Reason == "" {
			return name
		}
		return name + " - " + i.Reason
	case i.Kind == KindSubstitution:
		out := ""
		if i.PlayerOut != nil {
			out = i.PlayerOut.Name
		}
		return "IN: " + name + " | OUT: " + out
	case i.Kind == KindVAR:
		return strings.TrimSpace(strings.Join([]string{i.IncidentClass, i.Reason}, " "))
	default:
		return name
	}
}

func classifyIncident(raw RawIncident) Incident {
	inc := Incident{
		SofascoreID:   raw.ID,
		Time:          raw.Time,
		AddedTime:     raw.AddedTime,
		Team:          side(raw.IsHome),
		IncidentClass: raw.IncidentClass,
		Reason:        raw.Reason,
		Description:   raw.Description,
		HomeScore:     raw.HomeScore,
		AwayScore:     raw.AwayScore,
		ProviderType:  raw.IncidentType,
	}

	switch raw.IncidentType {
	case "goal":
		inc.Kind = KindGoal
		inc.Player = playerRef(raw.Player, raw.PlayerName)
		inc.Assist = playerRef(raw.Assist1, "")
	case "card":
		inc.Kind = KindRedCard
		if strings.EqualFold(raw.IncidentClass, "yellow") {
			inc.Kind = KindYellowCard
		}
		inc.Player = playerRef(raw.Player, raw.PlayerName)
	case "substitution":
		inc.Kind = KindSubstitution
		inc.Player = playerRef(raw.PlayerIn, "")
		inc.PlayerOut = playerRef(raw.PlayerOut, "")
	case "varDecision":
		inc.Kind = KindVAR
		inc.Player = playerRef(raw.Player, raw.PlayerName)
	case "inGamePenalty":
		inc.Kind = KindGoal
		if strings.EqualFold(raw.IncidentClass, "missed") {
			inc.Kind = KindPenaltyMissed
		}
		inc.Penalty = true
		inc.Player = playerRef(raw.Player, raw.PlayerName)
	default:
		inc.Kind = KindUnrecognized
	}
	return inc
}

func side(isHome *bool) string {
	if isHome != nil && *isHome {
		return "home"
	}
	return "away"
}

func playerRef(p *RawPlayer, fallbackName string) *PlayerRef {
	if p == nil {
		if fallbackName == "" {
			return nil
		}
		return &PlayerRef{Name: fallbackName}
	}
	name := p.Name
	if name == "" {
		name = fallbackName
	}
	return &PlayerRef{ID: p.ID, Name: name}
}
