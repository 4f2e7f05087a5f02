package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/matchstats"
	"github.com/riskibarqy/football-live/internal/domain/team"
)

func TestStatsRepository_GetOrCreateConcurrent(t *testing.T) {
	t.Parallel()

	repo := NewStatsRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	created := 0
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, isNew, err := repo.GetOrCreate(ctx, matchstats.Statistics{FixtureID: 1, TeamID: 2, Corners: i})
			if err != nil {
				t.Errorf("get or create: %v", err)
				return
			}
			if isNew {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	rows, _ := repo.ListByFixture(ctx, 1)
	if len(rows) != 1 || created != 1 {
		t.Fatalf("expected exactly one row, got rows=%d created=%d", len(rows), created)
	}
}

func TestTeamRepository_ExistingRowWins(t *testing.T) {
	t.Parallel()

	repo := NewTeamRepository()
	ctx := context.Background()

	first, created, err := repo.GetOrCreate(ctx, team.Team{SofascoreID: 42, Name: "Original"})
	if err != nil || !created {
		t.Fatalf("expected create, got created=%v err=%v", created, err)
	}
	second, created, err := repo.GetOrCreate(ctx, team.Team{SofascoreID: 42, Name: "Renamed"})
	if err != nil || created {
		t.Fatalf("expected lookup, got created=%v err=%v", created, err)
	}
	if second.ID != first.ID || second.Name != "Original" {
		t.Fatalf("expected untouched existing row, got %+v", second)
	}

	if _, _, err := repo.GetOrCreate(ctx, team.Team{Name: "No id"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestFixtureRepository_WindowAndFlags(t *testing.T) {
	t.Parallel()

	repo := NewFixtureRepository()
	ctx := context.Background()
	base := time.Date(2026, 10, 17, 18, 0, 0, 0, time.UTC)

	for i, offset := range []time.Duration{-2 * time.Hour, 2 * time.Hour, -30 * time.Minute, 5 * time.Hour} {
		if _, _, err := repo.GetOrCreate(ctx, fixture.Fixture{SofascoreID: int64(100 + i), Date: base.Add(offset)}); err != nil {
			t.Fatalf("create fixture: %v", err)
		}
	}

	got, err := repo.ListKickoffBetween(ctx, base.Add(-time.Hour), base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].SofascoreID != 102 || got[1].SofascoreID != 101 {
		t.Fatalf("unexpected window result: %+v", got)
	}
	if got[0].Status != fixture.StatusNotStarted {
		t.Fatalf("expected default status, got %q", got[0].Status)
	}

	if err := repo.MarkAvailability(ctx, got[0].ID, fixture.Availability{Events: true}); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := repo.MarkAvailability(ctx, got[0].ID, fixture.Availability{Statistics: true}); err != nil {
		t.Fatalf("mark: %v", err)
	}
	f, _, _ := repo.GetBySofascoreID(ctx, 102)
	if !f.HasEvents || !f.HasStatistics || f.HasLineups {
		t.Fatalf("unexpected flags: %+v", f)
	}

	if err := repo.UpdateLiveState(ctx, 9999, fixture.LiveState{Status: fixture.StatusFinished}); err == nil {
		t.Fatalf("expected error for unknown fixture")
	}
}
