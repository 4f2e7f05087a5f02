package season

import "fmt"

// Season is one edition of a league.
type Season struct {
	ID          int64
	SofascoreID int64
	LeagueID    int64
	Name        string
	Year        string
}

func (s Season) Validate() error {
	if s.SofascoreID <= 0 {
		return fmt.Errorf("season sofascore id is required")
	}
	if s.LeagueID <= 0 {
		return fmt.Errorf("season league id is required")
	}
	return nil
}
