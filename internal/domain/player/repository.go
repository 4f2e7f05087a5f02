package player

import "context"

type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (Player, bool, error)
	GetOrCreate(ctx context.Context, p Player) (Player, bool, error)
}
