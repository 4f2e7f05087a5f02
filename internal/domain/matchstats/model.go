package matchstats

// Statistics is one team's full-match statistics line, unique per (fixture, team).
type Statistics struct {
	ID        int64
	FixtureID int64
	TeamID    int64

	ShotsOnGoal        int
	ShotsOffGoal       int
	TotalShots         int
	BlockedShots       int
	ShotsInsideBox     int
	ShotsOutsideBox    int
	Fouls              int
	Corners            int
	Offsides           int
	Passes             int
	Tackles            int
	Saves              int
	YellowCards        int
	RedCards           int
	FoulsDrawn         int
	PenaltiesCommitted int
	PenaltiesSaved     int
	PenaltiesMissed    int
	Crosses            int
	ThrowIns           int
	Clearances         int
	Interceptions      int
	AerialsWon         int
	AerialsLost        int
	OffsidesGiven      int
	OffsidesWon        int
	Dribbles           int

	BallPossession  float64
	PassAccuracy    float64
	CrossesAccuracy float64
	DribbleSuccess  float64
	TacklesWon      float64
	TacklesLost     float64
}
