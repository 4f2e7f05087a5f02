package lineup

// Entry is one player's appearance on a team sheet, unique per (fixture, team, player).
type Entry struct {
	ID            int64
	FixtureID     int64
	TeamID        int64
	PlayerID      int64
	Formation     string
	Position      string
	ShirtNumber   *int
	Starter       bool
	Substitute    bool
	Captain       bool
	Rating        *float64
	MinutesPlayed *int
}
