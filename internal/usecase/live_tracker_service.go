package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

type LiveTrackerConfig struct {
	PollInterval time.Duration
	MatchDelay   time.Duration
	ErrorBackoff time.Duration
	SnapshotTTL  time.Duration
	WindowBefore time.Duration
	WindowAfter  time.Duration
	LineupLead   time.Duration
	// FinishDeadline bounds how long after kickoff a finished match may wait
	// for complete final data. Past it the match is closed with what is
	// available. Zero disables the cutoff.
	FinishDeadline time.Duration
}

func DefaultLiveTrackerConfig() LiveTrackerConfig {
	return LiveTrackerConfig{
		PollInterval: 30 * time.Second,
		MatchDelay:   time.Second,
		ErrorBackoff: time.Minute,
		SnapshotTTL:  120 * time.Second,
		WindowBefore: time.Hour,
		WindowAfter:  3 * time.Hour,
		LineupLead:   time.Hour,

		FinishDeadline: 3 * time.Hour,
	}
}

// TrackerStatus describes the last completed cycle.
type TrackerStatus struct {
	Running             bool      `json:"running"`
	LastCycleAt         time.Time `json:"last_cycle_at"`
	LastCycleDurationMs int64     `json:"last_cycle_duration_ms"`
	Tracked             int       `json:"tracked"`
	Persisted           int       `json:"persisted"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
}

// MatchUpdate is the outcome of polling one match.
type MatchUpdate struct {
	Snapshot  livematch.Snapshot
	Cached    bool
	Persisted bool
}

// LiveTrackerService polls in-window and live matches, keeps their snapshots
// cached and persists final data once when a match finishes.
type LiveTrackerService struct {
	cfg      LiveTrackerConfig
	provider LiveDataProvider
	cache    SnapshotCache
	repos    Repositories
	writer   *matchDataWriter
	logger   *logging.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	mu     sync.RWMutex
	status TrackerStatus
}

type LiveTrackerOption func(*LiveTrackerService)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) LiveTrackerOption {
	return func(s *LiveTrackerService) { s.now = now }
}

// WithSleeper replaces the context-aware sleep used between matches and cycles.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) LiveTrackerOption {
	return func(s *LiveTrackerService) { s.sleep = sleep }
}

func NewLiveTrackerService(
	cfg LiveTrackerConfig,
	provider LiveDataProvider,
	cache SnapshotCache,
	repos Repositories,
	logger *logging.Logger,
	opts ...LiveTrackerOption,
) *LiveTrackerService {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.With("component", "live_tracker")

	s := &LiveTrackerService{
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		repos:    repos,
		writer:   newMatchDataWriter(repos, logger),
		logger:   logger,
		now:      time.Now,
		sleep:    sleepContext,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until ctx is cancelled. A failed cycle waits ErrorBackoff instead
// of PollInterval; nothing else stops the loop.
func (s *LiveTrackerService) Run(ctx context.Context) error {
	s.setRunning(true)
	defer s.setRunning(false)

	s.logger.InfoContext(ctx, "live tracker started",
		"poll_interval", s.cfg.PollInterval,
		"snapshot_ttl", s.cfg.SnapshotTTL,
	)
	for {
		wait := s.cfg.PollInterval
		if _, err := s.RunCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.ErrorContext(ctx, "live tracker cycle failed", "error", err, "backoff", s.cfg.ErrorBackoff)
			wait = s.cfg.ErrorBackoff
		}
		if err := s.sleep(ctx, wait); err != nil {
			s.logger.InfoContext(ctx, "live tracker stopped")
			return err
		}
	}
}

// RunCycle discovers the tracked set and updates each match in order. It
// returns the number of matches polled.
func (s *LiveTrackerService) RunCycle(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTrackerService.RunCycle")
	defer span.End()

	started := s.now()
	ids, err := s.discover(ctx)
	if err != nil {
		s.recordCycle(started, 0, 0, err)
		return 0, err
	}

	persisted := 0
	for i, id := range ids {
		if i > 0 && s.cfg.MatchDelay > 0 {
			if err := s.sleep(ctx, s.cfg.MatchDelay); err != nil {
				s.recordCycle(started, i, persisted, nil)
				return i, err
			}
		}
		update, err := s.UpdateMatch(ctx, id)
		if err != nil {
			s.logger.WarnContext(ctx, "live match update skipped", "fixture_id", id, "error", err)
			continue
		}
		if update.Persisted {
			persisted++
		}
	}

	s.recordCycle(started, len(ids), persisted, nil)
	s.logger.DebugContext(ctx, "live tracker cycle done", "tracked", len(ids), "persisted", persisted)
	return len(ids), nil
}

// discover unions stored fixtures kicking off in [now-WindowBefore, now+WindowAfter]
// with the provider's live listing. Stored fixtures still in progress stay
// tracked for twice FinishDeadline after kickoff so a postponed finish edge is
// retried until the deadline closes it. Stored fixtures come first, by kickoff.
func (s *LiveTrackerService) discover(ctx context.Context) ([]int64, error) {
	now := s.now()
	windowStart := now.Add(-s.cfg.WindowBefore)
	from := windowStart
	if sweep := now.Add(-2 * s.cfg.FinishDeadline); sweep.Before(from) {
		from = sweep
	}
	stored, err := s.repos.Fixtures.ListKickoffBetween(ctx, from, now.Add(s.cfg.WindowAfter))
	if err != nil {
		return nil, fmt.Errorf("list fixtures in window: %w", err)
	}

	seen := make(map[int64]struct{}, len(stored))
	ids := make([]int64, 0, len(stored))
	for _, f := range stored {
		if f.Date.Before(windowStart) && fixture.NormalizeStatus(f.Status) != fixture.StatusInProgress {
			continue
		}
		if _, ok := seen[f.SofascoreID]; ok {
			continue
		}
		seen[f.SofascoreID] = struct{}{}
		ids = append(ids, f.SofascoreID)
	}

	live, err := s.provider.ListLiveMatchIDs(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "live listing unavailable", "error", err)
		return ids, nil
	}
	for _, id := range live {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// UpdateMatch polls one match, refreshes its snapshot and reconciles the
// stored status. The finish edge persists final data at most once: only when
// the observed status is finished and the stored one is not.
func (s *LiveTrackerService) UpdateMatch(ctx context.Context, sofascoreID int64) (MatchUpdate, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTrackerService.UpdateMatch")
	defer span.End()

	snap, event, err := s.fetchSnapshot(ctx, sofascoreID)
	if err != nil {
		return MatchUpdate{}, err
	}
	out := MatchUpdate{Snapshot: snap}

	fx, found, err := s.repos.Fixtures.GetBySofascoreID(ctx, sofascoreID)
	if err != nil {
		return out, fmt.Errorf("get fixture %d: %w", sofascoreID, err)
	}
	if !found {
		// First sighting: the match enters the store as not started so the
		// regular transition path below applies to it.
		fx, _, err = s.writer.ensureFixture(ctx, event, fixture.StatusNotStarted)
		if err != nil {
			s.logger.WarnContext(ctx, "live fixture not stored", "fixture_id", sofascoreID, "error", err)
			if cacheErr := s.cacheSnapshot(ctx, snap); cacheErr == nil {
				out.Cached = true
			}
			return out, nil
		}
	}

	if fixture.IsFinishedStatus(fx.Status) && snap.Status == fixture.StatusFinished {
		return out, nil
	}

	if err := s.cacheSnapshot(ctx, snap); err == nil {
		out.Cached = true
	}

	switch {
	case snap.Status == fixture.StatusFinished:
		persisted, err := s.persistFinished(ctx, fx, snap)
		if err != nil {
			return out, err
		}
		out.Persisted = persisted
	case snap.Status != fixture.NormalizeStatus(fx.Status) || scoreChanged(fx, snap):
		if err := s.repos.Fixtures.UpdateLiveState(ctx, fx.ID, liveState(snap)); err != nil {
			return out, fmt.Errorf("update fixture %d status: %w", sofascoreID, err)
		}
		if snap.Status != fixture.NormalizeStatus(fx.Status) {
			s.logger.InfoContext(ctx, "fixture status changed", "fixture_id", sofascoreID, "from", fx.Status, "to", snap.Status)
		}
	}
	return out, nil
}

// persistFinished writes final data and the finished status in one
// transaction, then drops the snapshot. Missing incidents or statistics
// (fetch failed) postpone the transition to a later cycle until
// FinishDeadline has passed since kickoff; after that the match is closed
// with whatever data is present.
func (s *LiveTrackerService) persistFinished(ctx context.Context, fx fixture.Fixture, snap livematch.Snapshot) (bool, error) {
	if snap.Incidents == nil || snap.Stats == nil {
		if !s.pastFinishDeadline(fx) {
			s.logger.WarnContext(ctx, "finish edge postponed, final data incomplete",
				"fixture_id", fx.SofascoreID,
				"has_incidents", snap.Incidents != nil,
				"has_stats", snap.Stats != nil,
			)
			return false, nil
		}
		s.logger.WarnContext(ctx, "finish edge forced past deadline, final data incomplete",
			"fixture_id", fx.SofascoreID,
			"kickoff", fx.Date,
			"has_incidents", snap.Incidents != nil,
			"has_stats", snap.Stats != nil,
		)
	}

	var counts writeCounts
	err := s.repos.Tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		counts, err = s.writer.writeFinalData(ctx, fx, snap.Incidents, snap.Stats, snap.Lineups)
		if err != nil {
			return err
		}
		return s.repos.Fixtures.UpdateLiveState(ctx, fx.ID, liveState(snap))
	})
	if err != nil {
		return false, fmt.Errorf("persist finished fixture %d: %w", fx.SofascoreID, err)
	}

	if err := s.cache.Delete(ctx, fx.SofascoreID); err != nil {
		s.logger.WarnContext(ctx, "snapshot delete failed", "fixture_id", fx.SofascoreID, "error", err)
	}
	s.logger.InfoContext(ctx, "finished match persisted",
		"fixture_id", fx.SofascoreID,
		"events_created", counts.Events,
		"stats_created", counts.Stats,
		"lineups_created", counts.Lineups,
	)
	return true, nil
}

func (s *LiveTrackerService) pastFinishDeadline(fx fixture.Fixture) bool {
	if s.cfg.FinishDeadline <= 0 || fx.Date.Unix() <= 0 {
		return false
	}
	return s.now().Sub(fx.Date) >= s.cfg.FinishDeadline
}

// GetCachedLiveState returns the cached snapshot. Cache failures read as a miss.
func (s *LiveTrackerService) GetCachedLiveState(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTrackerService.GetCachedLiveState")
	defer span.End()

	snap, ok, err := s.cache.Get(ctx, sofascoreID)
	if err != nil {
		s.logger.WarnContext(ctx, "snapshot read failed", "fixture_id", sofascoreID, "error", err)
		return livematch.Snapshot{}, false
	}
	return snap, ok
}

// ForceRefresh fetches, normalizes and caches a snapshot synchronously. It
// does not touch the durable store.
func (s *LiveTrackerService) ForceRefresh(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveTrackerService.ForceRefresh")
	defer span.End()

	snap, _, err := s.fetchSnapshot(ctx, sofascoreID)
	if err != nil {
		s.logger.WarnContext(ctx, "force refresh failed", "fixture_id", sofascoreID, "error", err)
		return livematch.Snapshot{}, false
	}
	_ = s.cacheSnapshot(ctx, snap)
	return snap, true
}

// LiveOrRefresh serves the cached snapshot, falling back to ForceRefresh.
func (s *LiveTrackerService) LiveOrRefresh(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool) {
	if snap, ok := s.GetCachedLiveState(ctx, sofascoreID); ok {
		return snap, true
	}
	return s.ForceRefresh(ctx, sofascoreID)
}

// Discover exposes the current tracked set.
func (s *LiveTrackerService) Discover(ctx context.Context) ([]int64, error) {
	return s.discover(ctx)
}

func (s *LiveTrackerService) Status() TrackerStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *LiveTrackerService) fetchSnapshot(ctx context.Context, sofascoreID int64) (livematch.Snapshot, livematch.RawEvent, error) {
	now := s.now()

	env, err := s.provider.FetchMatch(ctx, sofascoreID)
	if err != nil {
		return livematch.Snapshot{}, livematch.RawEvent{}, fmt.Errorf("fetch match %d: %w", sofascoreID, err)
	}
	info, err := livematch.ParseMatchInfo(env, now)
	if err != nil {
		return livematch.Snapshot{}, livematch.RawEvent{}, fmt.Errorf("parse match %d: %w", sofascoreID, err)
	}

	snap := livematch.Snapshot{
		FixtureID: sofascoreID,
		Timestamp: now.UTC(),
		Status:    livematch.Status(env),
		MatchInfo: info,
	}

	if fixture.HasStarted(snap.Status) {
		snap.Incidents = s.fetchIncidents(ctx, sofascoreID)
		snap.Stats = s.fetchStatistics(ctx, sofascoreID)
	}

	if fixture.HasStarted(snap.Status) || s.withinLineupLead(info.StartTimestamp, now) {
		snap.Lineups = s.fetchLineups(ctx, sofascoreID)
	}

	return snap, *env.Event, nil
}

func (s *LiveTrackerService) fetchIncidents(ctx context.Context, sofascoreID int64) *livematch.Incidents {
	env, err := s.provider.FetchIncidents(ctx, sofascoreID)
	if errors.Is(err, ErrNotFound) {
		return &livematch.Incidents{Events: []livematch.Incident{}, Periods: []livematch.Period{}}
	}
	if err != nil {
		s.logger.WarnContext(ctx, "incidents fetch failed", "fixture_id", sofascoreID, "error", err)
		return nil
	}

	incidents, dropped := livematch.ParseIncidents(env)
	for _, kind := range dropped {
		s.logger.WarnContext(ctx, "unrecognized incident dropped", "fixture_id", sofascoreID, "incident_type", kind)
	}
	return &incidents
}

func (s *LiveTrackerService) fetchStatistics(ctx context.Context, sofascoreID int64) livematch.StatsTree {
	env, err := s.provider.FetchStatistics(ctx, sofascoreID)
	if errors.Is(err, ErrNotFound) {
		return livematch.StatsTree{}
	}
	if err != nil {
		s.logger.WarnContext(ctx, "statistics fetch failed", "fixture_id", sofascoreID, "error", err)
		return nil
	}
	return livematch.ParseStatistics(env)
}

// withinLineupLead reports whether kickoff is at most LineupLead away. An
// unknown kickoff (zero timestamp) never qualifies.
func (s *LiveTrackerService) withinLineupLead(startTimestamp int64, now time.Time) bool {
	if startTimestamp <= 0 {
		return false
	}
	return !time.Unix(startTimestamp, 0).After(now.Add(s.cfg.LineupLead))
}

func (s *LiveTrackerService) fetchLineups(ctx context.Context, sofascoreID int64) *livematch.Lineups {
	return fetchLineupPair(ctx, s.provider, s.logger, sofascoreID)
}

// fetchLineupPair loads both sides concurrently so the provider's per-path
// request collapsing turns them into one upstream call. It is best effort:
// a failed side is left absent.
func fetchLineupPair(ctx context.Context, provider LiveDataProvider, logger *logging.Logger, sofascoreID int64) *livematch.Lineups {
	var (
		wg               conc.WaitGroup
		home, away       *livematch.RawTeamLineup
		homeErr, awayErr error
	)
	wg.Go(func() { home, homeErr = provider.FetchLineups(ctx, sofascoreID, livematch.SideHome) })
	wg.Go(func() { away, awayErr = provider.FetchLineups(ctx, sofascoreID, livematch.SideAway) })
	wg.Wait()

	if homeErr != nil || awayErr != nil {
		logger.DebugContext(ctx, "lineups unavailable", "fixture_id", sofascoreID, "home_error", homeErr, "away_error", awayErr)
	}
	if home == nil && away == nil {
		return nil
	}
	return &livematch.Lineups{
		Home: livematch.ParseLineup(home),
		Away: livematch.ParseLineup(away),
	}
}

func (s *LiveTrackerService) cacheSnapshot(ctx context.Context, snap livematch.Snapshot) error {
	if err := s.cache.Set(ctx, snap, s.cfg.SnapshotTTL); err != nil {
		s.logger.WarnContext(ctx, "snapshot write failed", "fixture_id", snap.FixtureID, "error", err)
		return err
	}
	return nil
}

func (s *LiveTrackerService) recordCycle(started time.Time, tracked, persisted int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastCycleAt = started.UTC()
	s.status.LastCycleDurationMs = s.now().Sub(started).Milliseconds()
	s.status.Tracked = tracked
	s.status.Persisted += persisted
	if err != nil {
		s.status.ConsecutiveFailures++
		s.status.LastError = err.Error()
		return
	}
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
}

func (s *LiveTrackerService) setRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = running
}

func liveState(snap livematch.Snapshot) fixture.LiveState {
	return fixture.LiveState{
		Status:    snap.Status,
		HomeScore: snap.MatchInfo.Score.Home,
		AwayScore: snap.MatchInfo.Score.Away,
		IsLive:    snap.Status == fixture.StatusInProgress,
	}
}

func scoreChanged(fx fixture.Fixture, snap livematch.Snapshot) bool {
	return !sameInt(fx.HomeScore, snap.MatchInfo.Score.Home) || !sameInt(fx.AwayScore, snap.MatchInfo.Score.Away)
}

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
