package league

import "context"

// Repository describes league persistence needs from use cases.
type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (League, bool, error)
	// GetOrCreate returns the stored league for l.SofascoreID, inserting l when absent.
	GetOrCreate(ctx context.Context, l League) (League, bool, error)
}
