package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/domain/manager"
	"github.com/riskibarqy/football-live/internal/domain/standing"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	concpool "github.com/sourcegraph/conc/pool"
)

type IngestCompetitionInput struct {
	TournamentID int64 `json:"tournament_id" validate:"required,gt=0"`
	// SeasonID defaults to the provider's current season.
	SeasonID      int64 `json:"season_id" validate:"omitempty,gt=0"`
	MaxWorkers    int   `json:"max_workers" validate:"omitempty,gte=1,lte=32"`
	SkipCupTree   bool  `json:"skip_cup_tree"`
	SkipStandings bool  `json:"skip_standings"`
}

type IngestCompetitionResult struct {
	TournamentID int64  `json:"tournament_id"`
	SeasonID     int64  `json:"season_id"`
	Rounds       int    `json:"rounds"`
	Matches      int    `json:"matches"`
	Created      int    `json:"created"`
	Skipped      int    `json:"skipped"`
	Failed       int    `json:"failed"`
	CupFixtures  int    `json:"cup_fixtures"`
	Standings    int    `json:"standings"`
	WorkerCount  int    `json:"worker_count"`
	DurationMs   int64  `json:"duration_ms"`
	Error        string `json:"error,omitempty"`
}

type CompetitionIngestionConfig struct {
	MaxWorkers         int
	CompetitionWorkers int
}

// CompetitionIngestionService walks a competition's rounds, cup tree and
// standings and stores everything through the GetOrCreate primitive. Every
// step logs and continues on failure.
type CompetitionIngestionService struct {
	cfg      CompetitionIngestionConfig
	provider CompetitionDataProvider
	repos    Repositories
	writer   *matchDataWriter
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewCompetitionIngestionService(
	cfg CompetitionIngestionConfig,
	provider CompetitionDataProvider,
	repos Repositories,
	logger *logging.Logger,
) *CompetitionIngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	if cfg.CompetitionWorkers <= 0 {
		cfg.CompetitionWorkers = 1
	}
	logger = logger.With("component", "competition_ingestion")
	return &CompetitionIngestionService{
		cfg:      cfg,
		provider: provider,
		repos:    repos,
		writer:   newMatchDataWriter(repos, logger),
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// IngestCompetitions runs several competitions concurrently, bounded by CompetitionWorkers.
func (s *CompetitionIngestionService) IngestCompetitions(ctx context.Context, inputs []IngestCompetitionInput) []IngestCompetitionResult {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionIngestionService.IngestCompetitions")
	defer span.End()

	p := concpool.NewWithResults[IngestCompetitionResult]().WithMaxGoroutines(s.cfg.CompetitionWorkers)
	for _, input := range inputs {
		input := input
		p.Go(func() IngestCompetitionResult {
			result, err := s.IngestCompetition(ctx, input)
			if err != nil {
				result.TournamentID = input.TournamentID
				result.Error = err.Error()
			}
			return result
		})
	}
	return p.Wait()
}

func (s *CompetitionIngestionService) IngestCompetition(ctx context.Context, input IngestCompetitionInput) (IngestCompetitionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionIngestionService.IngestCompetition")
	defer span.End()

	if err := s.validate.Struct(input); err != nil {
		return IngestCompetitionResult{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}
	started := s.now()

	seasonID := input.SeasonID
	if seasonID == 0 {
		seasons, err := s.provider.ListSeasons(ctx, input.TournamentID)
		if err != nil {
			return IngestCompetitionResult{}, fmt.Errorf("list seasons tournament=%d: %w", input.TournamentID, err)
		}
		if len(seasons) == 0 {
			return IngestCompetitionResult{}, fmt.Errorf("%w: tournament %d has no seasons", ErrNotFound, input.TournamentID)
		}
		seasonID = seasons[0].ID
	}

	workers := input.MaxWorkers
	if workers <= 0 {
		workers = s.cfg.MaxWorkers
	}
	run := &ingestRun{
		svc:          s,
		tournamentID: input.TournamentID,
		seasonID:     seasonID,
		workers:      workers,
	}
	result := IngestCompetitionResult{
		TournamentID: input.TournamentID,
		SeasonID:     seasonID,
		WorkerCount:  workers,
	}

	s.logger.InfoContext(ctx, "competition ingestion started", "tournament_id", input.TournamentID, "season_id", seasonID, "workers", workers)

	result.Rounds = run.ingestRounds(ctx)
	if !input.SkipCupTree {
		result.CupFixtures = run.ingestCupTree(ctx)
	}
	if !input.SkipStandings {
		result.Standings = run.ingestStandings(ctx)
	}

	result.Matches = int(run.matches.Load())
	result.Created = int(run.created.Load())
	result.Skipped = int(run.skipped.Load())
	result.Failed = int(run.failed.Load())
	result.DurationMs = s.now().Sub(started).Milliseconds()

	s.logger.InfoContext(ctx, "competition ingestion finished",
		"tournament_id", input.TournamentID,
		"season_id", seasonID,
		"matches", result.Matches,
		"created", result.Created,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"cup_fixtures", result.CupFixtures,
		"standings", result.Standings,
	)
	return result, nil
}

// ingestRun holds per-run state shared by the worker pool.
type ingestRun struct {
	svc          *CompetitionIngestionService
	tournamentID int64
	seasonID     int64
	workers      int

	squads sync.Map // team sofascore id -> struct{}

	matches atomic.Int32
	created atomic.Int32
	skipped atomic.Int32
	failed  atomic.Int32
}

func (r *ingestRun) ingestRounds(ctx context.Context) int {
	logger := r.svc.logger
	rounds, err := r.svc.provider.ListRounds(ctx, r.tournamentID, r.seasonID)
	if err != nil {
		logger.WarnContext(ctx, "rounds unavailable", "tournament_id", r.tournamentID, "season_id", r.seasonID, "error", err)
		return 0
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		logger.ErrorContext(ctx, "worker pool init failed", "error", err)
		return 0
	}
	defer pool.Release()

	done := 0
	for _, round := range rounds {
		if ctx.Err() != nil {
			break
		}
		events, err := r.svc.provider.ListRoundEvents(ctx, r.tournamentID, r.seasonID, round.Round)
		if err != nil {
			logger.WarnContext(ctx, "round events unavailable", "round", round.Round, "error", err)
			continue
		}

		var wg sync.WaitGroup
		for _, ev := range events {
			ev := ev
			r.matches.Add(1)
			wg.Add(1)
			if err := pool.Submit(func() {
				defer wg.Done()
				r.ingestMatch(ctx, ev)
			}); err != nil {
				wg.Done()
				r.failed.Add(1)
				logger.WarnContext(ctx, "match task rejected", "fixture_id", ev.ID, "error", err)
			}
		}
		wg.Wait()
		done++
	}
	return done
}

// ingestMatch stores one match and its dependents. A match already stored is skipped.
func (r *ingestRun) ingestMatch(ctx context.Context, ev livematch.RawEvent) {
	logger := r.svc.logger.With("fixture_id", ev.ID)
	repos := r.svc.repos
	w := r.svc.writer

	if _, ok, err := repos.Fixtures.GetBySofascoreID(ctx, ev.ID); err != nil {
		r.failed.Add(1)
		logger.WarnContext(ctx, "fixture lookup failed", "error", err)
		return
	} else if ok {
		r.skipped.Add(1)
		return
	}

	home, err := w.ensureTeam(ctx, ev.HomeTeam)
	if err != nil {
		r.failed.Add(1)
		logger.WarnContext(ctx, "home team not stored", "error", err)
		return
	}
	away, err := w.ensureTeam(ctx, ev.AwayTeam)
	if err != nil {
		r.failed.Add(1)
		logger.WarnContext(ctx, "away team not stored", "error", err)
		return
	}

	r.ingestSquad(ctx, ev.HomeTeam.ID, home.ID)
	r.ingestSquad(ctx, ev.AwayTeam.ID, away.ID)
	r.ingestManagers(ctx, ev.ID, home.ID, away.ID)

	status := fixture.NormalizeStatus(ev.Status.Type)
	fx, created, err := w.ensureFixture(ctx, ev, status)
	if err != nil {
		r.failed.Add(1)
		logger.WarnContext(ctx, "fixture not stored", "error", err)
		return
	}
	if created {
		r.created.Add(1)
	}

	if fixture.HasStarted(status) {
		if lineups := r.fetchLineups(ctx, ev.ID); lineups != nil {
			if _, err := w.writeFinalData(ctx, fx, nil, nil, lineups); err != nil {
				logger.WarnContext(ctx, "lineups not stored", "error", err)
			}
		}
	}

	if status == fixture.StatusFinished {
		var incidents *livematch.Incidents
		if env, err := r.svc.provider.FetchIncidents(ctx, ev.ID); err != nil {
			logger.WarnContext(ctx, "incidents unavailable", "error", err)
		} else {
			parsed, dropped := livematch.ParseIncidents(env)
			for _, kind := range dropped {
				logger.WarnContext(ctx, "unrecognized incident dropped", "incident_type", kind)
			}
			incidents = &parsed
		}

		var stats livematch.StatsTree
		if env, err := r.svc.provider.FetchStatistics(ctx, ev.ID); err != nil {
			logger.WarnContext(ctx, "statistics unavailable", "error", err)
		} else {
			stats = livematch.ParseStatistics(env)
		}

		if incidents != nil || stats != nil {
			if _, err := w.writeFinalData(ctx, fx, incidents, stats, nil); err != nil {
				logger.WarnContext(ctx, "final data not stored", "error", err)
			}
		}
	}
}

// ingestSquad stores a team's players once per run.
func (r *ingestRun) ingestSquad(ctx context.Context, teamSofascoreID, teamID int64) {
	if _, loaded := r.squads.LoadOrStore(teamSofascoreID, struct{}{}); loaded {
		return
	}
	players, err := r.svc.provider.ListTeamPlayers(ctx, teamSofascoreID)
	if err != nil {
		r.svc.logger.WarnContext(ctx, "squad unavailable", "team_id", teamSofascoreID, "error", err)
		return
	}
	for _, p := range players {
		if _, err := r.svc.writer.ensurePlayer(ctx, p, &teamID); err != nil {
			r.svc.logger.DebugContext(ctx, "squad player skipped", "team_id", teamSofascoreID, "player_id", p.ID, "error", err)
		}
	}
}

func (r *ingestRun) ingestManagers(ctx context.Context, eventID, homeTeamID, awayTeamID int64) {
	logger := r.svc.logger
	env, err := r.svc.provider.FetchMatchManagers(ctx, eventID)
	if err != nil {
		logger.DebugContext(ctx, "managers unavailable", "fixture_id", eventID, "error", err)
		return
	}

	for _, side := range [...]struct {
		raw    *livematch.RawManager
		teamID int64
	}{{env.HomeManager, homeTeamID}, {env.AwayManager, awayTeamID}} {
		if side.raw == nil || side.raw.ID <= 0 {
			continue
		}
		raw := *side.raw
		if details, err := r.svc.provider.FetchManager(ctx, raw.ID); err == nil {
			raw = mergeManager(raw, details)
		} else {
			logger.DebugContext(ctx, "manager details unavailable", "manager_id", raw.ID, "error", err)
		}

		m, _, err := r.svc.repos.Managers.GetOrCreate(ctx, manager.Manager{
			SofascoreID: raw.ID,
			Name:        raw.Name,
			ShortName:   raw.ShortName,
			Slug:        raw.Slug,
			Country:     raw.Country.Name,
			DateOfBirth: unixPtr(raw.DateOfBirthTimestamp),
		})
		if err != nil {
			logger.WarnContext(ctx, "manager not stored", "manager_id", raw.ID, "error", err)
			continue
		}
		if _, _, err := r.svc.repos.Managers.GetOrCreateCurrent(ctx, manager.TeamManager{
			TeamID:    side.teamID,
			ManagerID: m.ID,
			IsCurrent: true,
		}); err != nil {
			logger.WarnContext(ctx, "team manager link not stored", "manager_id", raw.ID, "error", err)
		}
	}
}

func (r *ingestRun) fetchLineups(ctx context.Context, eventID int64) *livematch.Lineups {
	return fetchLineupPair(ctx, r.svc.provider, r.svc.logger, eventID)
}

// ingestCupTree stores knockout fixtures from the first cup tree.
func (r *ingestRun) ingestCupTree(ctx context.Context) int {
	logger := r.svc.logger
	trees, err := r.svc.provider.FetchCupTrees(ctx, r.tournamentID, r.seasonID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.WarnContext(ctx, "cup tree unavailable", "tournament_id", r.tournamentID, "error", err)
		}
		return 0
	}
	if len(trees) == 0 {
		return 0
	}

	l, ok, err := r.svc.repos.Leagues.GetBySofascoreID(ctx, r.tournamentID)
	if err != nil || !ok {
		logger.WarnContext(ctx, "cup tree skipped, league not stored", "tournament_id", r.tournamentID, "error", err)
		return 0
	}
	var seasonID *int64
	if s, ok, err := r.svc.repos.Seasons.GetBySofascoreID(ctx, r.seasonID); err == nil && ok {
		seasonID = &s.ID
	}

	created := 0
	for _, round := range trees[0].Rounds {
		for _, block := range round.Blocks {
			if len(block.Events) == 0 || len(block.Participants) < 2 {
				continue
			}
			eventID := block.Events[0]
			if _, exists, err := r.svc.repos.Fixtures.GetBySofascoreID(ctx, eventID); err != nil || exists {
				continue
			}

			home, err := r.svc.writer.ensureTeam(ctx, block.Participants[0].Team)
			if err != nil {
				logger.DebugContext(ctx, "cup participant skipped", "fixture_id", eventID, "error", err)
				continue
			}
			away, err := r.svc.writer.ensureTeam(ctx, block.Participants[1].Team)
			if err != nil {
				logger.DebugContext(ctx, "cup participant skipped", "fixture_id", eventID, "error", err)
				continue
			}

			f := cupFixture(block, round, eventID)
			f.LeagueID = l.ID
			f.SeasonID = seasonID
			f.HomeTeamID = home.ID
			f.AwayTeamID = away.ID
			if _, isNew, err := r.svc.repos.Fixtures.GetOrCreate(ctx, f); err != nil {
				logger.WarnContext(ctx, "cup fixture not stored", "fixture_id", eventID, "error", err)
			} else if isNew {
				created++
			}
		}
	}
	return created
}

func cupFixture(block livematch.RawCupBlock, round livematch.RawCupRound, eventID int64) fixture.Fixture {
	status := fixture.StatusNotStarted
	if block.Finished {
		status = fixture.StatusFinished
	}
	order := round.Order
	f := fixture.Fixture{
		SofascoreID: eventID,
		Round:       &order,
		RoundName:   round.Description,
		Status:      status,
		HomeScore:   leadingInt(block.HomeTeamScore),
		AwayScore:   leadingInt(block.AwayTeamScore),
	}
	if block.SeriesStartDateTimestamp != nil {
		f.Date = time.Unix(*block.SeriesStartDateTimestamp, 0).UTC()
	}
	return f
}

// leadingInt parses the first whitespace-separated token, e.g. "2 (4)" -> 2.
func leadingInt(raw string) *int {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	return &v
}

func (r *ingestRun) ingestStandings(ctx context.Context) int {
	logger := r.svc.logger
	tables, err := r.svc.provider.FetchStandings(ctx, r.tournamentID, r.seasonID)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.WarnContext(ctx, "standings unavailable", "tournament_id", r.tournamentID, "error", err)
		}
		return 0
	}

	created := 0
	for _, table := range tables {
		ut := table.Tournament.UniqueTournament
		if ut == nil {
			ut = &livematch.RawUniqueTournament{ID: r.tournamentID, Name: table.Tournament.Name}
		}
		l, err := r.svc.writer.ensureLeagueFromTournament(ctx, *ut)
		if err != nil {
			logger.WarnContext(ctx, "standings league not stored", "error", err)
			continue
		}
		seasonID, err := r.svc.writer.ensureSeason(ctx, &livematch.RawSeason{ID: r.seasonID}, l.ID)
		if err != nil || seasonID == nil {
			logger.WarnContext(ctx, "standings season not stored", "error", err)
			continue
		}

		group := firstNonEmpty(table.Tournament.GroupName, table.Name)
		for _, row := range table.Rows {
			t, err := r.svc.writer.ensureTeam(ctx, row.Team)
			if err != nil {
				logger.DebugContext(ctx, "standing row skipped", "error", err)
				continue
			}
			exists, err := r.svc.repos.Standings.ExistsForTeam(ctx, *seasonID, t.ID)
			if err != nil {
				logger.WarnContext(ctx, "standing lookup failed", "team_id", row.Team.ID, "error", err)
				continue
			}
			if exists {
				continue
			}
			_, isNew, err := r.svc.repos.Standings.GetOrCreate(ctx, standing.Standing{
				SofascoreID:    row.ID,
				LeagueID:       l.ID,
				SeasonID:       *seasonID,
				TeamID:         t.ID,
				GroupName:      group,
				Position:       row.Position,
				Matches:        row.Matches,
				Wins:           row.Wins,
				Draws:          row.Draws,
				Losses:         row.Losses,
				GoalsFor:       row.ScoresFor,
				GoalsAgainst:   row.ScoresAgainst,
				GoalDifference: row.ScoresFor - row.ScoresAgainst,
				Points:         row.Points,
			})
			if err != nil {
				logger.WarnContext(ctx, "standing not stored", "team_id", row.Team.ID, "error", err)
				continue
			}
			if isNew {
				created++
			}
		}
	}
	return created
}

func mergeManager(basic, details livematch.RawManager) livematch.RawManager {
	out := basic
	out.Name = firstNonEmpty(details.Name, basic.Name)
	out.ShortName = firstNonEmpty(details.ShortName, basic.ShortName)
	out.Slug = firstNonEmpty(details.Slug, basic.Slug)
	out.Country.Name = firstNonEmpty(details.Country.Name, basic.Country.Name)
	if details.DateOfBirthTimestamp != nil {
		out.DateOfBirthTimestamp = details.DateOfBirthTimestamp
	}
	return out
}
