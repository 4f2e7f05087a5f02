package league

import "fmt"

// League is a competition (unique tournament) known to the provider.
type League struct {
	ID          int64
	SofascoreID int64
	Name        string
	Slug        string
	Country     string
}

func (l League) Validate() error {
	if l.SofascoreID <= 0 {
		return fmt.Errorf("league sofascore id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	return nil
}
