package matchstats

import "context"

type Repository interface {
	// GetOrCreate never overwrites an existing (fixture, team) row.
	GetOrCreate(ctx context.Context, s Statistics) (Statistics, bool, error)
	ListByFixture(ctx context.Context, fixtureID int64) ([]Statistics, error)
}
