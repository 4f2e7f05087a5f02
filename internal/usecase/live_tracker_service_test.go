package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/domain/matchstats"
	"github.com/riskibarqy/football-live/internal/infrastructure/livecache"
	fixturemock "github.com/riskibarqy/football-live/internal/mocks/domain/fixture"
	usecasemock "github.com/riskibarqy/football-live/internal/mocks/usecase"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func noSleep(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func newTestTracker(provider LiveDataProvider, repos Repositories, cache SnapshotCache, opts ...LiveTrackerOption) *LiveTrackerService {
	opts = append([]LiveTrackerOption{
		WithClock(func() time.Time { return testNow }),
		WithSleeper(noSleep),
	}, opts...)
	return NewLiveTrackerService(DefaultLiveTrackerConfig(), provider, cache, repos, logging.NewNop(), opts...)
}

func statsByTeam(t *testing.T, repos Repositories, fixtureID int64) map[int64]matchstats.Statistics {
	t.Helper()

	rows, err := repos.Stats.ListByFixture(context.Background(), fixtureID)
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	out := make(map[int64]matchstats.Statistics, len(rows))
	for _, row := range rows {
		if _, dup := out[row.TeamID]; dup {
			t.Fatalf("duplicate statistics row for team %d", row.TeamID)
		}
		out[row.TeamID] = row
	}
	return out
}

func mustFixture(t *testing.T, repos Repositories, sofascoreID int64) fixture.Fixture {
	t.Helper()

	fx, ok, err := repos.Fixtures.GetBySofascoreID(context.Background(), sofascoreID)
	if err != nil || !ok {
		t.Fatalf("fixture %d not stored: ok=%v err=%v", sofascoreID, ok, err)
	}
	return fx
}

func TestLiveTracker_FinishEdgePersistsOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	cache := livecache.NewMemorySnapshotCache()
	provider := newFakeProvider()
	provider.setEvent(rawMatch(555, "inprogress", 1, 0, testNow.Add(-30*time.Minute)))
	tracker := newTestTracker(provider, repos, cache)

	update, err := tracker.UpdateMatch(ctx, 555)
	if err != nil {
		t.Fatalf("in-progress update: %v", err)
	}
	if !update.Cached || update.Persisted {
		t.Fatalf("unexpected in-progress outcome: %+v", update)
	}
	snap, ok := tracker.GetCachedLiveState(ctx, 555)
	if !ok {
		t.Fatalf("expected cached snapshot")
	}
	if snap.Stats == nil || len(snap.Stats) != 0 {
		t.Fatalf("expected empty stats tree, got %#v", snap.Stats)
	}
	fx := mustFixture(t, repos, 555)
	if fx.Status != fixture.StatusInProgress || !fx.IsLive {
		t.Fatalf("expected stored in-progress fixture, got status=%s live=%v", fx.Status, fx.IsLive)
	}
	if rows := statsByTeam(t, repos, fx.ID); len(rows) != 0 {
		t.Fatalf("expected no statistics rows while live, got %d", len(rows))
	}

	provider.setEvent(rawMatch(555, "finished", 2, 1, testNow.Add(-30*time.Minute)))
	provider.setStats(555, sampleStatistics(), nil)
	provider.mu.Lock()
	provider.incidents[555] = sampleIncidents()
	provider.mu.Unlock()

	update, err = tracker.UpdateMatch(ctx, 555)
	if err != nil {
		t.Fatalf("finish update: %v", err)
	}
	if !update.Persisted {
		t.Fatalf("expected finish edge to persist")
	}

	fx = mustFixture(t, repos, 555)
	if fx.Status != fixture.StatusFinished || fx.IsLive {
		t.Fatalf("expected finished fixture, got status=%s live=%v", fx.Status, fx.IsLive)
	}
	if !fx.HasEvents || !fx.HasStatistics || fx.HasLineups {
		t.Fatalf("unexpected availability flags: events=%v stats=%v lineups=%v", fx.HasEvents, fx.HasStatistics, fx.HasLineups)
	}
	if fx.HomeScore == nil || *fx.HomeScore != 2 || fx.AwayScore == nil || *fx.AwayScore != 1 {
		t.Fatalf("unexpected final score: %v-%v", fx.HomeScore, fx.AwayScore)
	}

	rows := statsByTeam(t, repos, fx.ID)
	if len(rows) != 2 {
		t.Fatalf("expected one statistics row per team, got %d", len(rows))
	}
	home := rows[fx.HomeTeamID]
	away := rows[fx.AwayTeamID]
	if home.BallPossession != 55 || home.PassAccuracy != 75 || home.ShotsOnGoal != 5 {
		t.Fatalf("unexpected home statistics: %+v", home)
	}
	if away.PassAccuracy != 70 || away.Passes != 300 {
		t.Fatalf("unexpected away statistics: %+v", away)
	}

	events, err := repos.Events.ListByFixture(ctx, fx.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events with provider ids, got %d", len(events))
	}

	if _, ok := tracker.GetCachedLiveState(ctx, 555); ok {
		t.Fatalf("expected snapshot removed after finish")
	}

	again, err := tracker.UpdateMatch(ctx, 555)
	if err != nil {
		t.Fatalf("repeat finished update: %v", err)
	}
	if again.Persisted || again.Cached {
		t.Fatalf("expected finished match to be left alone, got %+v", again)
	}
	if _, ok := tracker.GetCachedLiveState(ctx, 555); ok {
		t.Fatalf("expected no snapshot for an already finished match")
	}
	if rows := statsByTeam(t, repos, fx.ID); len(rows) != 2 {
		t.Fatalf("expected statistics rows unchanged, got %d", len(rows))
	}
}

func TestLiveTracker_FinishPostponedWhenStatisticsFail(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	provider := newFakeProvider()
	provider.setEvent(rawMatch(556, "inprogress", 0, 0, testNow.Add(-time.Hour)))
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())

	if _, err := tracker.UpdateMatch(ctx, 556); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	provider.setEvent(rawMatch(556, "finished", 0, 0, testNow.Add(-time.Hour)))
	provider.setStats(556, livematch.StatisticsEnvelope{}, fmt.Errorf("%w: status 503", ErrTransientFetch))

	update, err := tracker.UpdateMatch(ctx, 556)
	if err != nil {
		t.Fatalf("postponed update: %v", err)
	}
	if update.Persisted {
		t.Fatalf("expected finish edge to wait for statistics")
	}
	if update.Snapshot.Stats != nil {
		t.Fatalf("expected failed statistics to stay nil")
	}
	if fx := mustFixture(t, repos, 556); fx.Status != fixture.StatusInProgress {
		t.Fatalf("expected stored status unchanged, got %s", fx.Status)
	}

	provider.setStats(556, sampleStatistics(), nil)
	update, err = tracker.UpdateMatch(ctx, 556)
	if err != nil {
		t.Fatalf("retry update: %v", err)
	}
	if !update.Persisted {
		t.Fatalf("expected finish edge on retry")
	}
	fx := mustFixture(t, repos, 556)
	if fx.Status != fixture.StatusFinished {
		t.Fatalf("expected finished, got %s", fx.Status)
	}
	if rows := statsByTeam(t, repos, fx.ID); len(rows) != 2 {
		t.Fatalf("expected 2 statistics rows, got %d", len(rows))
	}
}

func TestLiveTracker_ConcurrentFinishWritesOneRowPerTeam(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	provider := newFakeProvider()
	provider.setEvent(rawMatch(557, "inprogress", 1, 1, testNow.Add(-time.Hour)))
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())
	if _, err := tracker.UpdateMatch(ctx, 557); err != nil {
		t.Fatalf("seed update: %v", err)
	}

	provider.setEvent(rawMatch(557, "finished", 1, 1, testNow.Add(-time.Hour)))
	provider.setStats(557, sampleStatistics(), nil)
	provider.mu.Lock()
	provider.incidents[557] = sampleIncidents()
	provider.mu.Unlock()

	const workers = 8
	var wg sync.WaitGroup
	errCh := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tracker.UpdateMatch(ctx, 557); err != nil {
				errCh <- err
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("concurrent update: %v", err)
	}

	fx := mustFixture(t, repos, 557)
	if rows := statsByTeam(t, repos, fx.ID); len(rows) != 2 {
		t.Fatalf("expected 2 statistics rows, got %d", len(rows))
	}
	events, err := repos.Events.ListByFixture(ctx, fx.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestLiveTracker_DiscoverUnionsWindowAndLiveListing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	for _, seed := range []struct {
		id      int64
		kickoff time.Time
	}{
		{2, testNow.Add(2 * time.Hour)},
		{1, testNow.Add(-30 * time.Minute)},
		{3, testNow.Add(5 * time.Hour)},
		{4, testNow.Add(-2 * time.Hour)},
	} {
		if _, _, err := repos.Fixtures.GetOrCreate(ctx, fixture.Fixture{SofascoreID: seed.id, Date: seed.kickoff}); err != nil {
			t.Fatalf("seed fixture %d: %v", seed.id, err)
		}
	}

	provider := newFakeProvider()
	provider.live = []int64{2, 9}
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())

	ids, err := tracker.Discover(ctx)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []int64{1, 2, 9}
	if fmt.Sprint(ids) != fmt.Sprint(want) {
		t.Fatalf("tracked ids = %v, want %v", ids, want)
	}

	provider.mu.Lock()
	provider.liveErr = errors.New("listing timeout")
	provider.mu.Unlock()
	ids, err = tracker.Discover(ctx)
	if err != nil {
		t.Fatalf("discover with listing failure: %v", err)
	}
	if fmt.Sprint(ids) != fmt.Sprint([]int64{1, 2}) {
		t.Fatalf("expected stored fixtures only, got %v", ids)
	}
}

func TestLiveTracker_UnknownMatchIsStored(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	provider := newFakeProvider()
	provider.setEvent(rawMatch(777, "inprogress", 1, 0, testNow.Add(-20*time.Minute)))
	provider.live = []int64{777}
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())

	tracked, err := tracker.RunCycle(ctx)
	if err != nil {
		t.Fatalf("run cycle: %v", err)
	}
	if tracked != 1 {
		t.Fatalf("tracked = %d, want 1", tracked)
	}

	fx := mustFixture(t, repos, 777)
	if fx.Status != fixture.StatusInProgress {
		t.Fatalf("expected in-progress after first sighting, got %s", fx.Status)
	}
	if _, ok, _ := repos.Teams.GetBySofascoreID(ctx, 10); !ok {
		t.Fatalf("expected home team stored")
	}
	if _, ok, _ := repos.Leagues.GetBySofascoreID(ctx, 17); !ok {
		t.Fatalf("expected league stored")
	}
	if status := tracker.Status(); status.Tracked != 1 || status.ConsecutiveFailures != 0 {
		t.Fatalf("unexpected status: %+v", status)
	}
}

func TestLiveTracker_RunBacksOffAfterStoreFailure(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fixtureRepo := fixturemock.NewRepository(t)
	fixtureRepo.
		On("ListKickoffBetween", mock.Anything, testNow.Add(-time.Hour), testNow.Add(3*time.Hour)).
		Return(nil, errors.New("connection refused")).
		Once()
	provider := usecasemock.NewLiveDataProvider(t)

	repos := newMemoryRepositories()
	repos.Fixtures = fixtureRepo

	var slept []time.Duration
	sleeper := func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		cancel()
		return ctx.Err()
	}
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache(), WithSleeper(sleeper))

	if err := tracker.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if len(slept) != 1 || slept[0] != time.Minute {
		t.Fatalf("expected one error backoff sleep, got %v", slept)
	}
	status := tracker.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" || status.Running {
		t.Fatalf("unexpected status after failed cycle: %+v", status)
	}
}

func TestLiveTracker_RunCycleSkipsFailedMatches(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLiveDataProvider(t)
	provider.On("ListLiveMatchIDs", mock.Anything).Return([]int64{11, 12}, nil).Once()
	provider.On("FetchMatch", mock.Anything, int64(11)).Return(livematch.EventEnvelope{}, ErrTransientFetch).Once()
	provider.On("FetchMatch", mock.Anything, int64(12)).Return(livematch.EventEnvelope{}, nil).Once()

	var slept []time.Duration
	sleeper := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	tracker := newTestTracker(provider, newMemoryRepositories(), livecache.NewMemorySnapshotCache(), WithSleeper(sleeper))

	tracked, err := tracker.RunCycle(ctx)
	if err != nil {
		t.Fatalf("cycle should survive per-match failures: %v", err)
	}
	if tracked != 2 {
		t.Fatalf("tracked = %d, want 2", tracked)
	}
	if len(slept) != 1 || slept[0] != time.Second {
		t.Fatalf("expected one inter-match delay, got %v", slept)
	}
}

func TestLiveTracker_LineupsFetchedNearKickoff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := usecasemock.NewLiveDataProvider(t)

	far := rawMatch(700, "notstarted", 0, 0, testNow.Add(2*time.Hour))
	near := rawMatch(701, "notstarted", 0, 0, testNow.Add(30*time.Minute))
	provider.On("FetchMatch", mock.Anything, int64(700)).Return(livematch.EventEnvelope{Event: &far}, nil).Once()
	provider.On("FetchMatch", mock.Anything, int64(701)).Return(livematch.EventEnvelope{Event: &near}, nil).Once()
	provider.On("FetchLineups", mock.Anything, int64(701), livematch.SideHome).
		Return(&livematch.RawTeamLineup{Formation: "4-3-3", Players: []livematch.RawLineupPlayer{
			{Player: livematch.RawPlayer{ID: 501, Name: "Home Striker"}, Position: "F", ShirtNumber: intPtr(9)},
		}}, nil).Once()
	provider.On("FetchLineups", mock.Anything, int64(701), livematch.SideAway).Return(nil, ErrNotFound).Once()

	tracker := newTestTracker(provider, newMemoryRepositories(), livecache.NewMemorySnapshotCache())

	snap, ok := tracker.LiveOrRefresh(ctx, 700)
	if !ok {
		t.Fatalf("expected refresh for 700")
	}
	if snap.Lineups != nil || snap.Incidents != nil || snap.Stats != nil {
		t.Fatalf("expected bare snapshot for distant kickoff, got %+v", snap)
	}

	snap, ok = tracker.LiveOrRefresh(ctx, 701)
	if !ok {
		t.Fatalf("expected refresh for 701")
	}
	if snap.Lineups == nil || snap.Lineups.Home == nil || snap.Lineups.Away != nil {
		t.Fatalf("expected home lineup only, got %+v", snap.Lineups)
	}
	if snap.Lineups.Home.Formation != "4-3-3" || len(snap.Lineups.Home.Players) != 1 {
		t.Fatalf("unexpected home lineup: %+v", snap.Lineups.Home)
	}

	if _, ok := tracker.LiveOrRefresh(ctx, 701); !ok {
		t.Fatalf("expected cached snapshot on second read")
	}
}

func TestLiveTracker_ListLiveMatchesMergesStoreAndProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	if _, _, err := repos.Fixtures.GetOrCreate(ctx, fixture.Fixture{SofascoreID: 1, Date: testNow.Add(time.Hour), Status: fixture.StatusNotStarted}); err != nil {
		t.Fatalf("seed fixture: %v", err)
	}

	provider := newFakeProvider()
	provider.live = []int64{1, 9, 10}
	provider.setEvent(rawMatch(9, "inprogress", 0, 0, testNow.Add(-20*time.Minute)))
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())

	entries, err := tracker.ListLiveMatches(ctx)
	if err != nil {
		t.Fatalf("list live matches: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected stored fixture and one provider-only match, got %+v", entries)
	}
	if entries[0].SofascoreID != 1 || entries[0].Fixture == nil || entries[0].Snapshot != nil {
		t.Fatalf("unexpected stored entry: %+v", entries[0])
	}
	if entries[1].SofascoreID != 9 || entries[1].Fixture != nil || entries[1].Snapshot == nil {
		t.Fatalf("unexpected provider entry: %+v", entries[1])
	}
	if entries[1].Snapshot.Status != fixture.StatusInProgress {
		t.Fatalf("unexpected provider entry status %q", entries[1].Snapshot.Status)
	}
	if _, ok := tracker.GetCachedLiveState(ctx, 9); !ok {
		t.Fatalf("provider-only match should be cached after refresh")
	}
}

func TestLiveTracker_FinishForcedPastDeadline(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	provider := newFakeProvider()
	kickoff := testNow.Add(-4 * time.Hour)
	provider.setEvent(rawMatch(558, "inprogress", 2, 1, kickoff))
	tracker := newTestTracker(provider, repos, livecache.NewMemorySnapshotCache())

	if _, err := tracker.UpdateMatch(ctx, 558); err != nil {
		t.Fatalf("seed update: %v", err)
	}
	ids, err := tracker.Discover(ctx)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if fmt.Sprint(ids) != fmt.Sprint([]int64{558}) {
		t.Fatalf("expected stale in-progress fixture to stay tracked, got %v", ids)
	}

	provider.setEvent(rawMatch(558, "finished", 2, 1, kickoff))
	provider.setStats(558, livematch.StatisticsEnvelope{}, fmt.Errorf("%w: missing container", ErrMalformedPayload))
	provider.mu.Lock()
	provider.incidents[558] = sampleIncidents()
	provider.mu.Unlock()

	update, err := tracker.UpdateMatch(ctx, 558)
	if err != nil {
		t.Fatalf("finished update: %v", err)
	}
	if !update.Persisted {
		t.Fatalf("expected finish edge to close the match past the deadline")
	}

	fx := mustFixture(t, repos, 558)
	if fx.Status != fixture.StatusFinished || fx.IsLive {
		t.Fatalf("expected finished and not live, got status=%s live=%v", fx.Status, fx.IsLive)
	}
	if fx.HasStatistics || !fx.HasEvents {
		t.Fatalf("unexpected availability: stats=%v events=%v", fx.HasStatistics, fx.HasEvents)
	}
	if rows := statsByTeam(t, repos, fx.ID); len(rows) != 0 {
		t.Fatalf("expected no statistics rows, got %d", len(rows))
	}

	ids, err = tracker.Discover(ctx)
	if err != nil {
		t.Fatalf("discover after close: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected closed fixture to leave the tracked set, got %v", ids)
	}
}

func TestLiveTracker_DiscoverKeepsOnlyInProgressPastWindow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos := newMemoryRepositories()
	for _, seed := range []struct {
		id      int64
		kickoff time.Time
		status  string
	}{
		{31, testNow.Add(-2 * time.Hour), fixture.StatusNotStarted},
		{32, testNow.Add(-3 * time.Hour), fixture.StatusInProgress},
		{33, testNow.Add(-4 * time.Hour), fixture.StatusFinished},
		{34, testNow.Add(-7 * time.Hour), fixture.StatusInProgress},
		{35, testNow.Add(-30 * time.Minute), fixture.StatusFinished},
	} {
		if _, _, err := repos.Fixtures.GetOrCreate(ctx, fixture.Fixture{SofascoreID: seed.id, Date: seed.kickoff, Status: seed.status}); err != nil {
			t.Fatalf("seed fixture %d: %v", seed.id, err)
		}
	}

	tracker := newTestTracker(newFakeProvider(), repos, livecache.NewMemorySnapshotCache())
	ids, err := tracker.Discover(ctx)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	if fmt.Sprint(ids) != fmt.Sprint([]int64{32, 35}) {
		t.Fatalf("tracked ids = %v, want [32 35]", ids)
	}
}

func TestLiveTracker_UnknownKickoffSkipsLineups(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewLiveDataProvider(t)
	ev := rawMatch(702, "notstarted", 0, 0, testNow)
	ev.StartTimestamp = 0
	provider.On("FetchMatch", mock.Anything, int64(702)).Return(livematch.EventEnvelope{Event: &ev}, nil).Once()

	tracker := newTestTracker(provider, newMemoryRepositories(), livecache.NewMemorySnapshotCache())
	snap, ok := tracker.ForceRefresh(context.Background(), 702)
	if !ok {
		t.Fatalf("expected refresh for 702")
	}
	if snap.Lineups != nil {
		t.Fatalf("expected no lineups without a kickoff time, got %+v", snap.Lineups)
	}
}

// pairedLineupProvider only answers a lineup request once the other side has
// been requested too, so sequential fetching times out.
type pairedLineupProvider struct {
	*fakeProvider
	arrived atomic.Int32
	both    chan struct{}
}

func (p *pairedLineupProvider) FetchLineups(ctx context.Context, id int64, side livematch.Side) (*livematch.RawTeamLineup, error) {
	if p.arrived.Add(1) == 2 {
		close(p.both)
	}
	select {
	case <-p.both:
	case <-time.After(2 * time.Second):
		return nil, errors.New("lineup side requested alone")
	}
	return p.fakeProvider.FetchLineups(ctx, id, side)
}

func TestLiveTracker_LineupSidesFetchedTogether(t *testing.T) {
	t.Parallel()

	inner := newFakeProvider()
	inner.setEvent(rawMatch(711, "inprogress", 0, 0, testNow.Add(-10*time.Minute)))
	inner.mu.Lock()
	inner.lineups[711] = livematch.LineupsEnvelope{
		Home: &livematch.RawTeamLineup{Formation: "4-3-3"},
		Away: &livematch.RawTeamLineup{Formation: "4-4-2"},
	}
	inner.mu.Unlock()
	provider := &pairedLineupProvider{fakeProvider: inner, both: make(chan struct{})}

	tracker := newTestTracker(provider, newMemoryRepositories(), livecache.NewMemorySnapshotCache())
	snap, ok := tracker.ForceRefresh(context.Background(), 711)
	if !ok {
		t.Fatalf("expected refresh for 711")
	}
	if snap.Lineups == nil || snap.Lineups.Home == nil || snap.Lineups.Away == nil {
		t.Fatalf("expected both lineups, got %+v", snap.Lineups)
	}
	if snap.Lineups.Home.Formation != "4-3-3" || snap.Lineups.Away.Formation != "4-4-2" {
		t.Fatalf("unexpected formations: %+v", snap.Lineups)
	}
}
