package season

import "context"

type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (Season, bool, error)
	GetOrCreate(ctx context.Context, s Season) (Season, bool, error)
}
