package livematch

// Payload types below mirror the provider's JSON. Every field is optional on
// the wire, so scalars that may be absent are pointers.

type RawCountry struct {
	Name string `json:"name"`
}

type RawCategory struct {
	Name string `json:"name"`
}

type RawUniqueTournament struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	Slug     string      `json:"slug"`
	Category RawCategory `json:"category"`
}

type RawTournament struct {
	Name             string               `json:"name"`
	Slug             string               `json:"slug"`
	GroupName        string               `json:"groupName"`
	GroupSign        string               `json:"groupSign"`
	UniqueTournament *RawUniqueTournament `json:"uniqueTournament"`
}

type RawSeason struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Year string `json:"year"`
}

type RawStatus struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type RawTeamColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type RawTeam struct {
	ID         int64         `json:"id"`
	Name       string        `json:"name"`
	Slug       string        `json:"slug"`
	ShortName  string        `json:"shortName"`
	NameCode   string        `json:"nameCode"`
	National   bool          `json:"national"`
	Country    RawCountry    `json:"country"`
	TeamColors RawTeamColors `json:"teamColors"`
}

type RawScore struct {
	Current    *int `json:"current"`
	Display    *int `json:"display"`
	Period1    *int `json:"period1"`
	Period2    *int `json:"period2"`
	Normaltime *int `json:"normaltime"`
}

type RawTime struct {
	CurrentPeriodStartTimestamp *int64 `json:"currentPeriodStartTimestamp"`
	Initial                     *int64 `json:"initial"`
	Max                         *int64 `json:"max"`
	Extra                       *int64 `json:"extra"`
}

type RawRoundInfo struct {
	Round int    `json:"round"`
	Name  string `json:"name"`
}

// RawEvent is one provider match.
type RawEvent struct {
	ID             int64         `json:"id"`
	StartTimestamp int64         `json:"startTimestamp"`
	RoundInfo      *RawRoundInfo `json:"roundInfo"`
	Tournament     RawTournament `json:"tournament"`
	Season         *RawSeason    `json:"season"`
	Status         RawStatus     `json:"status"`
	HomeTeam       RawTeam       `json:"homeTeam"`
	AwayTeam       RawTeam       `json:"awayTeam"`
	HomeScore      RawScore      `json:"homeScore"`
	AwayScore      RawScore      `json:"awayScore"`
	Time           RawTime       `json:"time"`
}

type EventEnvelope struct {
	Event *RawEvent `json:"event"`
}

type EventsEnvelope struct {
	Events []RawEvent `json:"events"`
}

type RawPlayer struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	ShortName            string     `json:"shortName"`
	Slug                 string     `json:"slug"`
	Position             string     `json:"position"`
	JerseyNumber         string     `json:"jerseyNumber"`
	Height               *int       `json:"height"`
	Country              RawCountry `json:"country"`
	DateOfBirthTimestamp *int64     `json:"dateOfBirthTimestamp"`
}

type RawIncident struct {
	ID            *int64     `json:"id"`
	IncidentType  string     `json:"incidentType"`
	IncidentClass string     `json:"incidentClass"`
	Time          *int       `json:"time"`
	AddedTime     *int       `json:"addedTime"`
	Length        *int       `json:"length"`
	IsHome        *bool      `json:"isHome"`
	IsLive        bool       `json:"isLive"`
	Text          string     `json:"text"`
	Reason        string     `json:"reason"`
	Description   string     `json:"description"`
	HomeScore     *int       `json:"homeScore"`
	AwayScore     *int       `json:"awayScore"`
	Player        *RawPlayer `json:"player"`
	PlayerName    string     `json:"playerName"`
	Assist1       *RawPlayer `json:"assist1"`
	PlayerIn      *RawPlayer `json:"playerIn"`
	PlayerOut     *RawPlayer `json:"playerOut"`
}

type IncidentsEnvelope struct {
	Incidents []RawIncident `json:"incidents"`
}

type RawStatisticsItem struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Home      string   `json:"home"`
	Away      string   `json:"away"`
	HomeValue *float64 `json:"homeValue"`
	AwayValue *float64 `json:"awayValue"`
	HomeTotal *float64 `json:"homeTotal"`
	AwayTotal *float64 `json:"awayTotal"`
}

type RawStatisticsGroup struct {
	GroupName       string              `json:"groupName"`
	StatisticsItems []RawStatisticsItem `json:"statisticsItems"`
}

type RawStatisticsPeriod struct {
	Period string               `json:"period"`
	Groups []RawStatisticsGroup `json:"groups"`
}

type StatisticsEnvelope struct {
	Statistics []RawStatisticsPeriod `json:"statistics"`
}

type RawLineupStatistics struct {
	Rating        *float64 `json:"rating"`
	MinutesPlayed *int     `json:"minutesPlayed"`
}

type RawLineupPlayer struct {
	Player      RawPlayer            `json:"player"`
	Position    string               `json:"position"`
	ShirtNumber *int                 `json:"shirtNumber"`
	Captain     bool                 `json:"captain"`
	Substitute  bool                 `json:"substitute"`
	Statistics  *RawLineupStatistics `json:"statistics"`
}

type RawTeamLineup struct {
	Formation string            `json:"formation"`
	Players   []RawLineupPlayer `json:"players"`
}

type LineupsEnvelope struct {
	Confirmed bool           `json:"confirmed"`
	Home      *RawTeamLineup `json:"home"`
	Away      *RawTeamLineup `json:"away"`
}

type RawManager struct {
	ID                   int64      `json:"id"`
	Name                 string     `json:"name"`
	Slug                 string     `json:"slug"`
	ShortName            string     `json:"shortName"`
	Country              RawCountry `json:"country"`
	DateOfBirthTimestamp *int64     `json:"dateOfBirthTimestamp"`
}

type ManagersEnvelope struct {
	HomeManager *RawManager `json:"homeManager"`
	AwayManager *RawManager `json:"awayManager"`
}

type ManagerEnvelope struct {
	Manager *RawManager `json:"manager"`
}

type SeasonsEnvelope struct {
	Seasons []RawSeason `json:"seasons"`
}

type RoundsEnvelope struct {
	Rounds []RawRoundInfo `json:"rounds"`
}

type TeamPlayersEnvelope struct {
	Players []struct {
		Player RawPlayer `json:"player"`
	} `json:"players"`
}

type RawCupParticipant struct {
	Team RawTeam `json:"team"`
}

type RawCupBlock struct {
	Events                   []int64             `json:"events"`
	Participants             []RawCupParticipant `json:"participants"`
	Finished                 bool                `json:"finished"`
	HomeTeamScore            string              `json:"homeTeamScore"`
	AwayTeamScore            string              `json:"awayTeamScore"`
	SeriesStartDateTimestamp *int64              `json:"seriesStartDateTimestamp"`
}

type RawCupRound struct {
	Order       int           `json:"order"`
	Description string        `json:"description"`
	Blocks      []RawCupBlock `json:"blocks"`
}

type RawCupTree struct {
	Rounds []RawCupRound `json:"rounds"`
}

type CupTreesEnvelope struct {
	CupTrees []RawCupTree `json:"cupTrees"`
}

type RawStandingRow struct {
	ID            int64   `json:"id"`
	Team          RawTeam `json:"team"`
	Position      int     `json:"position"`
	Matches       int     `json:"matches"`
	Wins          int     `json:"wins"`
	Draws         int     `json:"draws"`
	Losses        int     `json:"losses"`
	ScoresFor     int     `json:"scoresFor"`
	ScoresAgainst int     `json:"scoresAgainst"`
	Points        int     `json:"points"`
}

type RawStandingTable struct {
	Tournament RawTournament    `json:"tournament"`
	Name       string           `json:"name"`
	Rows       []RawStandingRow `json:"rows"`
}

type StandingsEnvelope struct {
	Standings []RawStandingTable `json:"standings"`
}
