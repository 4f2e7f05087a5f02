package manager

import "context"

type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (Manager, bool, error)
	GetOrCreate(ctx context.Context, m Manager) (Manager, bool, error)
	// GetOrCreateCurrent keeps an existing current link for link.TeamID untouched.
	GetOrCreateCurrent(ctx context.Context, link TeamManager) (TeamManager, bool, error)
}
