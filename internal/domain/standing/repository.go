package standing

import "context"

type Repository interface {
	ExistsForTeam(ctx context.Context, seasonID, teamID int64) (bool, error)
	GetOrCreate(ctx context.Context, s Standing) (Standing, bool, error)
}
