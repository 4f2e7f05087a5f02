package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
)

// LiveMatchEntry is one row of the live board. Fixture is nil for matches the
// provider lists as live but the store does not know yet; Snapshot is nil when
// nothing is cached for a stored fixture.
type LiveMatchEntry struct {
	SofascoreID int64
	Fixture     *fixture.Fixture
	Snapshot    *livematch.Snapshot
}

// ListLiveMatches returns stored fixtures inside the tracking window enriched
// with their cached snapshots, followed by provider-only live matches. A
// provider-only match without any obtainable snapshot is left out.
func (s *LiveTrackerService) ListLiveMatches(ctx context.Context) ([]LiveMatchEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTrackerService.ListLiveMatches")
	defer span.End()

	now := s.now()
	stored, err := s.repos.Fixtures.ListKickoffBetween(ctx, now.Add(-s.cfg.WindowBefore), now.Add(s.cfg.WindowAfter))
	if err != nil {
		return nil, fmt.Errorf("list fixtures in window: %w", err)
	}

	seen := make(map[int64]struct{}, len(stored))
	out := make([]LiveMatchEntry, 0, len(stored))
	for i := range stored {
		fx := stored[i]
		if _, ok := seen[fx.SofascoreID]; ok {
			continue
		}
		seen[fx.SofascoreID] = struct{}{}

		entry := LiveMatchEntry{SofascoreID: fx.SofascoreID, Fixture: &fx}
		if snap, ok := s.GetCachedLiveState(ctx, fx.SofascoreID); ok {
			entry.Snapshot = &snap
		}
		out = append(out, entry)
	}

	live, err := s.provider.ListLiveMatchIDs(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "live listing unavailable", "error", err)
		return out, nil
	}
	for _, id := range live {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		snap, ok := s.LiveOrRefresh(ctx, id)
		if !ok {
			continue
		}
		out = append(out, LiveMatchEntry{SofascoreID: id, Snapshot: &snap})
	}
	return out, nil
}
