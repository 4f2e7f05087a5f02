package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/infrastructure/repository/memory"
)

var testNow = time.Date(2026, 10, 17, 15, 0, 0, 0, time.UTC)

func intPtr(v int) *int           { return &v }
func int64Ptr(v int64) *int64     { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func newMemoryRepositories() Repositories {
	return Repositories{
		Leagues:   memory.NewLeagueRepository(),
		Seasons:   memory.NewSeasonRepository(),
		Teams:     memory.NewTeamRepository(),
		Players:   memory.NewPlayerRepository(),
		Managers:  memory.NewManagerRepository(),
		Fixtures:  memory.NewFixtureRepository(),
		Events:    memory.NewEventRepository(),
		Stats:     memory.NewStatsRepository(),
		Lineups:   memory.NewLineupRepository(),
		Standings: memory.NewStandingRepository(),
		Tx:        memory.NewTxManager(),
	}
}

// fakeProvider serves canned payloads keyed by provider match id.
type fakeProvider struct {
	mu sync.Mutex

	events       map[int64]livematch.RawEvent
	incidents    map[int64]livematch.IncidentsEnvelope
	incidentsErr map[int64]error
	stats        map[int64]livematch.StatisticsEnvelope
	statsErr     map[int64]error
	lineups      map[int64]livematch.LineupsEnvelope
	live         []int64
	liveErr      error

	seasons   []livematch.RawSeason
	rounds    []livematch.RawRoundInfo
	roundEvts map[int][]livematch.RawEvent
	cupTrees  []livematch.RawCupTree
	cupErr    error
	standings []livematch.RawStandingTable
	squads    map[int64][]livematch.RawPlayer
	managers  map[int64]livematch.ManagersEnvelope

	matchCalls   map[int64]int
	squadCalls   map[int64]int
	lineupsCalls map[int64]int
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		events:       map[int64]livematch.RawEvent{},
		incidents:    map[int64]livematch.IncidentsEnvelope{},
		incidentsErr: map[int64]error{},
		stats:        map[int64]livematch.StatisticsEnvelope{},
		statsErr:     map[int64]error{},
		lineups:      map[int64]livematch.LineupsEnvelope{},
		roundEvts:    map[int][]livematch.RawEvent{},
		squads:       map[int64][]livematch.RawPlayer{},
		managers:     map[int64]livematch.ManagersEnvelope{},
		matchCalls:   map[int64]int{},
		squadCalls:   map[int64]int{},
		lineupsCalls: map[int64]int{},
	}
}

func (p *fakeProvider) setEvent(ev livematch.RawEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[ev.ID] = ev
}

func (p *fakeProvider) setStats(id int64, env livematch.StatisticsEnvelope, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stats[id] = env
	p.statsErr[id] = err
}

func (p *fakeProvider) FetchMatch(_ context.Context, id int64) (livematch.EventEnvelope, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.matchCalls[id]++
	ev, ok := p.events[id]
	if !ok {
		return livematch.EventEnvelope{}, ErrNotFound
	}
	return livematch.EventEnvelope{Event: &ev}, nil
}

func (p *fakeProvider) FetchIncidents(_ context.Context, id int64) (livematch.IncidentsEnvelope, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.incidentsErr[id]; err != nil {
		return livematch.IncidentsEnvelope{}, err
	}
	env, ok := p.incidents[id]
	if !ok {
		return livematch.IncidentsEnvelope{}, ErrNotFound
	}
	return env, nil
}

func (p *fakeProvider) FetchStatistics(_ context.Context, id int64) (livematch.StatisticsEnvelope, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.statsErr[id]; err != nil {
		return livematch.StatisticsEnvelope{}, err
	}
	env, ok := p.stats[id]
	if !ok {
		return livematch.StatisticsEnvelope{}, ErrNotFound
	}
	return env, nil
}

func (p *fakeProvider) FetchLineups(_ context.Context, id int64, side livematch.Side) (*livematch.RawTeamLineup, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lineupsCalls[id]++
	env, ok := p.lineups[id]
	if !ok {
		return nil, ErrNotFound
	}
	if side == livematch.SideHome {
		return env.Home, nil
	}
	return env.Away, nil
}

func (p *fakeProvider) ListLiveMatchIDs(context.Context) ([]int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]int64(nil), p.live...), p.liveErr
}

func (p *fakeProvider) ListSeasons(context.Context, int64) ([]livematch.RawSeason, error) {
	return p.seasons, nil
}

func (p *fakeProvider) ListRounds(context.Context, int64, int64) ([]livematch.RawRoundInfo, error) {
	return p.rounds, nil
}

func (p *fakeProvider) ListRoundEvents(_ context.Context, _, _ int64, round int) ([]livematch.RawEvent, error) {
	return p.roundEvts[round], nil
}

func (p *fakeProvider) FetchCupTrees(context.Context, int64, int64) ([]livematch.RawCupTree, error) {
	return p.cupTrees, p.cupErr
}

func (p *fakeProvider) FetchStandings(context.Context, int64, int64) ([]livematch.RawStandingTable, error) {
	return p.standings, nil
}

func (p *fakeProvider) ListTeamPlayers(_ context.Context, teamID int64) ([]livematch.RawPlayer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.squadCalls[teamID]++
	return p.squads[teamID], nil
}

func (p *fakeProvider) FetchMatchManagers(_ context.Context, id int64) (livematch.ManagersEnvelope, error) {
	env, ok := p.managers[id]
	if !ok {
		return livematch.ManagersEnvelope{}, ErrNotFound
	}
	return env, nil
}

func (p *fakeProvider) FetchManager(_ context.Context, id int64) (livematch.RawManager, error) {
	return livematch.RawManager{ID: id, Country: livematch.RawCountry{Name: "England"}}, nil
}

func (p *fakeProvider) calls(id int64) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.matchCalls[id]
}

// rawMatch builds a provider match between teams 10 and 20 of tournament 17.
func rawMatch(id int64, status string, home, away int, kickoff time.Time) livematch.RawEvent {
	return livematch.RawEvent{
		ID:             id,
		StartTimestamp: kickoff.Unix(),
		RoundInfo:      &livematch.RawRoundInfo{Round: 8},
		Tournament: livematch.RawTournament{
			Name: "Premier League",
			UniqueTournament: &livematch.RawUniqueTournament{
				ID:       17,
				Name:     "Premier League",
				Slug:     "premier-league",
				Category: livematch.RawCategory{Name: "England"},
			},
		},
		Season:    &livematch.RawSeason{ID: 61627, Name: "Premier League 26/27", Year: "26/27"},
		Status:    livematch.RawStatus{Type: status, Description: status},
		HomeTeam:  livematch.RawTeam{ID: 10, Name: "Home FC", ShortName: "Home"},
		AwayTeam:  livematch.RawTeam{ID: 20, Name: "Away FC", ShortName: "Away"},
		HomeScore: livematch.RawScore{Current: intPtr(home)},
		AwayScore: livematch.RawScore{Current: intPtr(away)},
	}
}

func sampleIncidents() livematch.IncidentsEnvelope {
	return livematch.IncidentsEnvelope{Incidents: []livematch.RawIncident{
		{IncidentType: "period", Text: "FT", HomeScore: intPtr(2), AwayScore: intPtr(1)},
		{
			ID: int64Ptr(1003), IncidentType: "substitution", Time: intPtr(70), IsHome: boolPtr(true),
			PlayerIn:  &livematch.RawPlayer{ID: 503, Name: "Sub In"},
			PlayerOut: &livematch.RawPlayer{ID: 504, Name: "Sub Out"},
		},
		{
			ID: int64Ptr(1002), IncidentType: "card", IncidentClass: "yellow", Time: intPtr(55), IsHome: boolPtr(false),
			Player: &livematch.RawPlayer{ID: 601, Name: "Away Defender"}, Reason: "Foul",
		},
		{
			ID: int64Ptr(1001), IncidentType: "goal", Time: intPtr(12), IsHome: boolPtr(true),
			Player:  &livematch.RawPlayer{ID: 501, Name: "Home Striker"},
			Assist1: &livematch.RawPlayer{ID: 502, Name: "Home Winger"},
		},
		{IncidentType: "goal", Time: intPtr(80), IsHome: boolPtr(false), PlayerName: "No Id"},
	}}
}

func sampleStatistics() livematch.StatisticsEnvelope {
	return livematch.StatisticsEnvelope{Statistics: []livematch.RawStatisticsPeriod{{
		Period: "ALL",
		Groups: []livematch.RawStatisticsGroup{{
			GroupName: "Match overview",
			StatisticsItems: []livematch.RawStatisticsItem{
				{Key: "ballPossession", HomeValue: floatPtr(55), AwayValue: floatPtr(45)},
				{Key: "passes", HomeValue: floatPtr(400), AwayValue: floatPtr(300)},
				{Key: "accuratePasses", HomeValue: floatPtr(300), AwayValue: floatPtr(210)},
				{Key: "shotsOnGoal", HomeValue: floatPtr(5), AwayValue: floatPtr(2)},
			},
		}},
	}}}
}
