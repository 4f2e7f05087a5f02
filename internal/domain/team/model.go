package team

import "fmt"

// LogoURL returns the provider image endpoint for a team.
func LogoURL(sofascoreID int64) string {
	return fmt.Sprintf("https://img.sofascore.com/api/v1/team/%d/image", sofascoreID)
}

// Team is a club or national side.
type Team struct {
	ID             int64
	SofascoreID    int64
	Name           string
	ShortName      string
	Slug           string
	Code           string
	Country        string
	LogoURL        string
	PrimaryColor   string
	SecondaryColor string
	IsNational     bool
}

func (t Team) Validate() error {
	if t.SofascoreID <= 0 {
		return fmt.Errorf("team sofascore id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
