package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/lineup"
	"github.com/riskibarqy/football-live/internal/domain/matchevent"
	"github.com/riskibarqy/football-live/internal/domain/matchstats"
)

type FixtureRepository struct {
	rows *table[int64, fixture.Fixture]
}

func NewFixtureRepository() *FixtureRepository {
	return &FixtureRepository{rows: newTable[int64](func(v *fixture.Fixture, id int64) { v.ID = id })}
}

func (r *FixtureRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (fixture.Fixture, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *FixtureRepository) GetOrCreate(_ context.Context, f fixture.Fixture) (fixture.Fixture, bool, error) {
	if f.SofascoreID <= 0 {
		return fixture.Fixture{}, false, fmt.Errorf("fixture sofascore id is required")
	}
	f.Status = fixture.NormalizeStatus(f.Status)
	v, created := r.rows.getOrCreate(f.SofascoreID, f)
	return v, created, nil
}

func (r *FixtureRepository) ListKickoffBetween(_ context.Context, from, to time.Time) ([]fixture.Fixture, error) {
	out := r.rows.filter(func(f fixture.Fixture) bool {
		return !f.Date.Before(from) && !f.Date.After(to)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *FixtureRepository) UpdateLiveState(_ context.Context, id int64, state fixture.LiveState) error {
	ok := r.rows.update(id, func(f *fixture.Fixture) {
		f.Status = fixture.NormalizeStatus(state.Status)
		f.HomeScore = state.HomeScore
		f.AwayScore = state.AwayScore
		f.IsLive = state.IsLive
	})
	if !ok {
		return fmt.Errorf("fixture %d not found", id)
	}
	return nil
}

func (r *FixtureRepository) MarkAvailability(_ context.Context, id int64, flags fixture.Availability) error {
	ok := r.rows.update(id, func(f *fixture.Fixture) {
		f.HasEvents = f.HasEvents || flags.Events
		f.HasStatistics = f.HasStatistics || flags.Statistics
		f.HasLineups = f.HasLineups || flags.Lineups
	})
	if !ok {
		return fmt.Errorf("fixture %d not found", id)
	}
	return nil
}

type EventRepository struct {
	rows *table[int64, matchevent.Event]
}

func NewEventRepository() *EventRepository {
	return &EventRepository{rows: newTable[int64](func(v *matchevent.Event, id int64) { v.ID = id })}
}

func (r *EventRepository) GetOrCreate(_ context.Context, e matchevent.Event) (matchevent.Event, bool, error) {
	v, created := r.rows.getOrCreate(e.SofascoreID, e)
	return v, created, nil
}

func (r *EventRepository) ListByFixture(_ context.Context, fixtureID int64) ([]matchevent.Event, error) {
	return r.rows.filter(func(e matchevent.Event) bool { return e.FixtureID == fixtureID }), nil
}

type fixtureTeamKey struct {
	fixtureID int64
	teamID    int64
}

type StatsRepository struct {
	rows *table[fixtureTeamKey, matchstats.Statistics]
}

func NewStatsRepository() *StatsRepository {
	return &StatsRepository{rows: newTable[fixtureTeamKey](func(v *matchstats.Statistics, id int64) { v.ID = id })}
}

func (r *StatsRepository) GetOrCreate(_ context.Context, s matchstats.Statistics) (matchstats.Statistics, bool, error) {
	v, created := r.rows.getOrCreate(fixtureTeamKey{fixtureID: s.FixtureID, teamID: s.TeamID}, s)
	return v, created, nil
}

func (r *StatsRepository) ListByFixture(_ context.Context, fixtureID int64) ([]matchstats.Statistics, error) {
	return r.rows.filter(func(s matchstats.Statistics) bool { return s.FixtureID == fixtureID }), nil
}

type lineupKey struct {
	fixtureID int64
	teamID    int64
	playerID  int64
}

type LineupRepository struct {
	rows *table[lineupKey, lineup.Entry]
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{rows: newTable[lineupKey](func(v *lineup.Entry, id int64) { v.ID = id })}
}

func (r *LineupRepository) GetOrCreate(_ context.Context, e lineup.Entry) (lineup.Entry, bool, error) {
	v, created := r.rows.getOrCreate(lineupKey{fixtureID: e.FixtureID, teamID: e.TeamID, playerID: e.PlayerID}, e)
	return v, created, nil
}

func (r *LineupRepository) ListByFixture(_ context.Context, fixtureID int64) ([]lineup.Entry, error) {
	return r.rows.filter(func(e lineup.Entry) bool { return e.FixtureID == fixtureID }), nil
}
