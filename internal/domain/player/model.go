package player

import (
	"fmt"
	"time"
)

// Player is an athlete known to the provider.
type Player struct {
	ID           int64
	SofascoreID  int64
	TeamID       *int64
	Name         string
	ShortName    string
	Slug         string
	Position     string
	JerseyNumber string
	Height       *int
	Country      string
	DateOfBirth  *time.Time
}

func (p Player) Validate() error {
	if p.SofascoreID <= 0 {
		return fmt.Errorf("player sofascore id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}

	return nil
}
