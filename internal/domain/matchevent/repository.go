package matchevent

import "context"

type Repository interface {
	GetOrCreate(ctx context.Context, e Event) (Event, bool, error)
	ListByFixture(ctx context.Context, fixtureID int64) ([]Event, error)
}
