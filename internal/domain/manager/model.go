package manager

import "time"

// Manager is a head coach.
type Manager struct {
	ID          int64
	SofascoreID int64
	Name        string
	ShortName   string
	Slug        string
	Country     string
	DateOfBirth *time.Time
}

// TeamManager links a manager to a team. Only one current link per team is kept.
type TeamManager struct {
	ID        int64
	TeamID    int64
	ManagerID int64
	IsCurrent bool
}
