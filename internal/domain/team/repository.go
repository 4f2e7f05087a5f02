package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (Team, bool, error)
	GetOrCreate(ctx context.Context, t Team) (Team, bool, error)
}
