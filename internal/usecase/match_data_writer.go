package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/league"
	"github.com/riskibarqy/football-live/internal/domain/lineup"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/domain/matchevent"
	"github.com/riskibarqy/football-live/internal/domain/player"
	"github.com/riskibarqy/football-live/internal/domain/season"
	"github.com/riskibarqy/football-live/internal/domain/team"
	"github.com/riskibarqy/football-live/internal/platform/logging"
)

// matchDataWriter turns normalized provider data into stored rows through the
// repositories' GetOrCreate primitive. Both the tracker and the pipeline use it.
type matchDataWriter struct {
	repos  Repositories
	logger *logging.Logger
}

// writeCounts reports how many rows a final-data write created.
type writeCounts struct {
	Events  int
	Stats   int
	Lineups int
}

func newMatchDataWriter(repos Repositories, logger *logging.Logger) *matchDataWriter {
	return &matchDataWriter{repos: repos, logger: logger}
}

func (w *matchDataWriter) ensureLeague(ctx context.Context, ev livematch.RawEvent) (league.League, error) {
	ut := ev.Tournament.UniqueTournament
	if ut == nil || ut.ID <= 0 {
		return league.League{}, fmt.Errorf("%w: event %d has no unique tournament", ErrUnresolvedReference, ev.ID)
	}
	return w.ensureLeagueFromTournament(ctx, *ut)
}

func (w *matchDataWriter) ensureLeagueFromTournament(ctx context.Context, ut livematch.RawUniqueTournament) (league.League, error) {
	l, _, err := w.repos.Leagues.GetOrCreate(ctx, league.League{
		SofascoreID: ut.ID,
		Name:        ut.Name,
		Slug:        ut.Slug,
		Country:     ut.Category.Name,
	})
	if err != nil {
		return league.League{}, fmt.Errorf("ensure league %d: %w", ut.ID, err)
	}
	return l, nil
}

func (w *matchDataWriter) ensureSeason(ctx context.Context, raw *livematch.RawSeason, leagueID int64) (*int64, error) {
	if raw == nil || raw.ID <= 0 {
		return nil, nil
	}
	s, _, err := w.repos.Seasons.GetOrCreate(ctx, season.Season{
		SofascoreID: raw.ID,
		LeagueID:    leagueID,
		Name:        raw.Name,
		Year:        raw.Year,
	})
	if err != nil {
		return nil, fmt.Errorf("ensure season %d: %w", raw.ID, err)
	}
	return &s.ID, nil
}

func (w *matchDataWriter) ensureTeam(ctx context.Context, raw livematch.RawTeam) (team.Team, error) {
	if raw.ID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team without id", ErrUnresolvedReference)
	}
	t, _, err := w.repos.Teams.GetOrCreate(ctx, team.Team{
		SofascoreID:    raw.ID,
		Name:           firstNonEmpty(raw.Name, raw.ShortName),
		ShortName:      raw.ShortName,
		Slug:           raw.Slug,
		Code:           raw.NameCode,
		Country:        raw.Country.Name,
		LogoURL:        team.LogoURL(raw.ID),
		PrimaryColor:   raw.TeamColors.Primary,
		SecondaryColor: raw.TeamColors.Secondary,
		IsNational:     raw.National,
	})
	if err != nil {
		return team.Team{}, fmt.Errorf("ensure team %d: %w", raw.ID, err)
	}
	return t, nil
}

func (w *matchDataWriter) ensurePlayer(ctx context.Context, raw livematch.RawPlayer, teamID *int64) (player.Player, error) {
	if raw.ID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player without id", ErrUnresolvedReference)
	}
	if existing, ok, err := w.repos.Players.GetBySofascoreID(ctx, raw.ID); err != nil {
		return player.Player{}, fmt.Errorf("get player %d: %w", raw.ID, err)
	} else if ok {
		return existing, nil
	}

	p, _, err := w.repos.Players.GetOrCreate(ctx, player.Player{
		SofascoreID:  raw.ID,
		TeamID:       teamID,
		Name:         firstNonEmpty(raw.Name, raw.ShortName, fmt.Sprintf("player-%d", raw.ID)),
		ShortName:    raw.ShortName,
		Slug:         raw.Slug,
		Position:     raw.Position,
		JerseyNumber: raw.JerseyNumber,
		Height:       raw.Height,
		Country:      raw.Country.Name,
		DateOfBirth:  unixPtr(raw.DateOfBirthTimestamp),
	})
	if err != nil {
		return player.Player{}, fmt.Errorf("ensure player %d: %w", raw.ID, err)
	}
	return p, nil
}

// ensureFixture creates league, season, both teams and the fixture for ev.
// The fixture is inserted with status; an existing row is returned untouched.
func (w *matchDataWriter) ensureFixture(ctx context.Context, ev livematch.RawEvent, status string) (fixture.Fixture, bool, error) {
	l, err := w.ensureLeague(ctx, ev)
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	seasonID, err := w.ensureSeason(ctx, ev.Season, l.ID)
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	home, err := w.ensureTeam(ctx, ev.HomeTeam)
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	away, err := w.ensureTeam(ctx, ev.AwayTeam)
	if err != nil {
		return fixture.Fixture{}, false, err
	}

	f := fixture.Fixture{
		SofascoreID:         ev.ID,
		LeagueID:            l.ID,
		SeasonID:            seasonID,
		HomeTeamID:          home.ID,
		AwayTeamID:          away.ID,
		Date:                time.Unix(ev.StartTimestamp, 0).UTC(),
		GroupName:           ev.Tournament.GroupName,
		GroupSign:           ev.Tournament.GroupSign,
		Status:              status,
		HomeScore:           ev.HomeScore.Current,
		AwayScore:           ev.AwayScore.Current,
		HomeScorePeriod1:    ev.HomeScore.Period1,
		AwayScorePeriod1:    ev.AwayScore.Period1,
		HomeScorePeriod2:    ev.HomeScore.Period2,
		AwayScorePeriod2:    ev.AwayScore.Period2,
		HomeScoreNormaltime: ev.HomeScore.Normaltime,
		AwayScoreNormaltime: ev.AwayScore.Normaltime,
		IsLive:              status == fixture.StatusInProgress,
	}
	if ev.RoundInfo != nil {
		round := ev.RoundInfo.Round
		f.Round = &round
		f.RoundName = ev.RoundInfo.Name
	}

	out, created, err := w.repos.Fixtures.GetOrCreate(ctx, f)
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("ensure fixture %d: %w", ev.ID, err)
	}
	return out, created, nil
}

// writeEvents stores incidents keyed by their provider id. Incidents without
// an id are discarded.
func (w *matchDataWriter) writeEvents(ctx context.Context, fx fixture.Fixture, incidents livematch.Incidents) (int, error) {
	created := 0
	for _, inc := range incidents.Events {
		if inc.SofascoreID == nil || *inc.SofascoreID <= 0 {
			w.logger.DebugContext(ctx, "incident without id discarded", "fixture_id", fx.SofascoreID, "type", inc.Kind)
			continue
		}

		teamID := fx.AwayTeamID
		if inc.IsHome() {
			teamID = fx.HomeTeamID
		}

		ev := matchevent.Event{
			SofascoreID:    *inc.SofascoreID,
			FixtureID:      fx.ID,
			TeamID:         &teamID,
			PlayerID:       w.resolvePlayer(ctx, inc.Player, teamID),
			AssistPlayerID: w.resolvePlayer(ctx, inc.Assist, teamID),
			PlayerOutID:    w.resolvePlayer(ctx, inc.PlayerOut, teamID),
			Type:           string(inc.Kind),
			Minute:         inc.Time,
			ExtraMinute:    inc.AddedTime,
			IsHome:         inc.IsHome(),
			HomeScore:      inc.HomeScore,
			AwayScore:      inc.AwayScore,
			IncidentClass:  inc.IncidentClass,
			Reason:         inc.Reason,
			Detail:         inc.Detail(),
			Comments:       inc.Description,
		}
		_, isNew, err := w.repos.Events.GetOrCreate(ctx, ev)
		if err != nil {
			return created, fmt.Errorf("store event %d: %w", ev.SofascoreID, err)
		}
		if isNew {
			created++
		}
	}
	return created, nil
}

// resolvePlayer returns the stored player id for ref, creating the player when
// the provider gave an id. Unresolvable references are stored as NULL.
func (w *matchDataWriter) resolvePlayer(ctx context.Context, ref *livematch.PlayerRef, teamID int64) *int64 {
	if ref == nil {
		return nil
	}
	if ref.ID <= 0 {
		w.logger.DebugContext(ctx, "player reference unresolved", "player", ref.Name, "error", ErrUnresolvedReference)
		return nil
	}
	p, err := w.ensurePlayer(ctx, livematch.RawPlayer{ID: ref.ID, Name: ref.Name}, &teamID)
	if err != nil {
		w.logger.DebugContext(ctx, "player reference unresolved", "player_id", ref.ID, "error", err)
		return nil
	}
	return &p.ID
}

// writeStatistics stores one row per team from the full-match period. A tree
// without that period writes nothing.
func (w *matchDataWriter) writeStatistics(ctx context.Context, fx fixture.Fixture, tree livematch.StatsTree) (int, error) {
	all, ok := tree[livematch.PeriodAll]
	if !ok {
		return 0, nil
	}

	home, away := livematch.DeriveLines(all)
	created := 0
	for _, row := range [...]struct {
		teamID int64
		line   livematch.StatLine
	}{{fx.HomeTeamID, home}, {fx.AwayTeamID, away}} {
		_, isNew, err := w.repos.Stats.GetOrCreate(ctx, row.line.ToStatistics(fx.ID, row.teamID))
		if err != nil {
			return created, fmt.Errorf("store statistics fixture=%d team=%d: %w", fx.ID, row.teamID, err)
		}
		if isNew {
			created++
		}
	}
	return created, nil
}

func (w *matchDataWriter) writeLineups(ctx context.Context, fx fixture.Fixture, lineups *livematch.Lineups) (int, error) {
	if lineups == nil {
		return 0, nil
	}

	created := 0
	for _, side := range [...]struct {
		teamID int64
		sheet  *livematch.TeamLineup
	}{{fx.HomeTeamID, lineups.Home}, {fx.AwayTeamID, lineups.Away}} {
		if side.sheet == nil {
			continue
		}
		teamID := side.teamID
		for _, lp := range side.sheet.Players {
			p, err := w.ensurePlayer(ctx, livematch.RawPlayer{ID: lp.ID, Name: lp.Name, Position: lp.Position}, &teamID)
			if err != nil {
				w.logger.DebugContext(ctx, "lineup player skipped", "fixture_id", fx.SofascoreID, "player_id", lp.ID, "error", err)
				continue
			}
			_, isNew, err := w.repos.Lineups.GetOrCreate(ctx, lineup.Entry{
				FixtureID:     fx.ID,
				TeamID:        teamID,
				PlayerID:      p.ID,
				Formation:     side.sheet.Formation,
				Position:      lp.Position,
				ShirtNumber:   lp.ShirtNumber,
				Starter:       !lp.Substitute,
				Substitute:    lp.Substitute,
				Captain:       lp.Captain,
				Rating:        lp.Rating,
				MinutesPlayed: lp.MinutesPlayed,
			})
			if err != nil {
				return created, fmt.Errorf("store lineup fixture=%d player=%d: %w", fx.ID, p.ID, err)
			}
			if isNew {
				created++
			}
		}
	}
	return created, nil
}

// writeFinalData persists events, statistics and lineups and switches on the
// matching availability flags. It does not touch the fixture status.
func (w *matchDataWriter) writeFinalData(ctx context.Context, fx fixture.Fixture, incidents *livematch.Incidents, stats livematch.StatsTree, lineups *livematch.Lineups) (writeCounts, error) {
	var counts writeCounts
	var flags fixture.Availability
	var err error

	if incidents != nil {
		if counts.Events, err = w.writeEvents(ctx, fx, *incidents); err != nil {
			return counts, err
		}
		flags.Events = true
	}
	if stats != nil {
		if counts.Stats, err = w.writeStatistics(ctx, fx, stats); err != nil {
			return counts, err
		}
		flags.Statistics = true
	}
	if lineups != nil {
		if counts.Lineups, err = w.writeLineups(ctx, fx, lineups); err != nil {
			return counts, err
		}
		flags.Lineups = true
	}

	if err := w.repos.Fixtures.MarkAvailability(ctx, fx.ID, flags); err != nil {
		return counts, fmt.Errorf("mark availability fixture=%d: %w", fx.ID, err)
	}
	return counts, nil
}

func unixPtr(ts *int64) *time.Time {
	if ts == nil {
		return nil
	}
	t := time.Unix(*ts, 0).UTC()
	return &t
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
