package matchevent

const (
	TypeGoal          = "goal"
	TypeYellowCard    = "yellow_card"
	TypeRedCard       = "red_card"
	TypeSubstitution  = "substitution"
	TypePenaltyMissed = "penalty_missed"
	TypeVAR           = "var"
)

// Event is a persisted match incident keyed by the provider incident id.
type Event struct {
	ID             int64
	SofascoreID    int64
	FixtureID      int64
	TeamID         *int64
	PlayerID       *int64
	AssistPlayerID *int64
	PlayerOutID    *int64
	Type           string
	Minute         *int
	ExtraMinute    *int
	IsHome         bool
	HomeScore      *int
	AwayScore      *int
	IncidentClass  string
	Reason         string
	Detail         string
	Comments       string
}
