package lineup

import "context"

type Repository interface {
	GetOrCreate(ctx context.Context, e Entry) (Entry, bool, error)
	ListByFixture(ctx context.Context, fixtureID int64) ([]Entry, error)
}
