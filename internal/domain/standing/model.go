package standing

// Standing is a league table row for one team in one season group.
type Standing struct {
	ID             int64
	SofascoreID    int64
	LeagueID       int64
	SeasonID       int64
	TeamID         int64
	GroupName      string
	Position       int
	Matches        int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
}
