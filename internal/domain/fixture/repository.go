package fixture

import (
	"context"
	"time"
)

// Repository exposes fixture persistence for the tracker and the batch pipeline.
type Repository interface {
	GetBySofascoreID(ctx context.Context, sofascoreID int64) (Fixture, bool, error)
	GetOrCreate(ctx context.Context, f Fixture) (Fixture, bool, error)
	// ListKickoffBetween returns fixtures with from <= date <= to ordered by kickoff.
	ListKickoffBetween(ctx context.Context, from, to time.Time) ([]Fixture, error)
	UpdateLiveState(ctx context.Context, id int64, state LiveState) error
	MarkAvailability(ctx context.Context, id int64, flags Availability) error
}
