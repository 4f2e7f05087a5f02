package memory

import (
	"context"

	"github.com/riskibarqy/football-live/internal/domain/league"
	"github.com/riskibarqy/football-live/internal/domain/manager"
	"github.com/riskibarqy/football-live/internal/domain/player"
	"github.com/riskibarqy/football-live/internal/domain/season"
	"github.com/riskibarqy/football-live/internal/domain/standing"
	"github.com/riskibarqy/football-live/internal/domain/team"
)

type LeagueRepository struct {
	rows *table[int64, league.League]
}

func NewLeagueRepository() *LeagueRepository {
	return &LeagueRepository{rows: newTable[int64](func(v *league.League, id int64) { v.ID = id })}
}

func (r *LeagueRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (league.League, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *LeagueRepository) GetOrCreate(_ context.Context, l league.League) (league.League, bool, error) {
	if err := l.Validate(); err != nil {
		return league.League{}, false, err
	}
	v, created := r.rows.getOrCreate(l.SofascoreID, l)
	return v, created, nil
}

type SeasonRepository struct {
	rows *table[int64, season.Season]
}

func NewSeasonRepository() *SeasonRepository {
	return &SeasonRepository{rows: newTable[int64](func(v *season.Season, id int64) { v.ID = id })}
}

func (r *SeasonRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (season.Season, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *SeasonRepository) GetOrCreate(_ context.Context, s season.Season) (season.Season, bool, error) {
	if err := s.Validate(); err != nil {
		return season.Season{}, false, err
	}
	v, created := r.rows.getOrCreate(s.SofascoreID, s)
	return v, created, nil
}

type TeamRepository struct {
	rows *table[int64, team.Team]
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{rows: newTable[int64](func(v *team.Team, id int64) { v.ID = id })}
}

func (r *TeamRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (team.Team, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *TeamRepository) GetOrCreate(_ context.Context, t team.Team) (team.Team, bool, error) {
	if err := t.Validate(); err != nil {
		return team.Team{}, false, err
	}
	v, created := r.rows.getOrCreate(t.SofascoreID, t)
	return v, created, nil
}

type PlayerRepository struct {
	rows *table[int64, player.Player]
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{rows: newTable[int64](func(v *player.Player, id int64) { v.ID = id })}
}

func (r *PlayerRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (player.Player, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *PlayerRepository) GetOrCreate(_ context.Context, p player.Player) (player.Player, bool, error) {
	if err := p.Validate(); err != nil {
		return player.Player{}, false, err
	}
	v, created := r.rows.getOrCreate(p.SofascoreID, p)
	return v, created, nil
}

type ManagerRepository struct {
	rows  *table[int64, manager.Manager]
	links *table[int64, manager.TeamManager]
}

func NewManagerRepository() *ManagerRepository {
	return &ManagerRepository{
		rows:  newTable[int64](func(v *manager.Manager, id int64) { v.ID = id }),
		links: newTable[int64](func(v *manager.TeamManager, id int64) { v.ID = id }),
	}
}

func (r *ManagerRepository) GetBySofascoreID(_ context.Context, sofascoreID int64) (manager.Manager, bool, error) {
	v, ok := r.rows.get(sofascoreID)
	return v, ok, nil
}

func (r *ManagerRepository) GetOrCreate(_ context.Context, m manager.Manager) (manager.Manager, bool, error) {
	v, created := r.rows.getOrCreate(m.SofascoreID, m)
	return v, created, nil
}

// GetOrCreateCurrent keys links by team: the first current manager stored wins.
func (r *ManagerRepository) GetOrCreateCurrent(_ context.Context, link manager.TeamManager) (manager.TeamManager, bool, error) {
	link.IsCurrent = true
	v, created := r.links.getOrCreate(link.TeamID, link)
	return v, created, nil
}

type standingKey struct {
	seasonID int64
	teamID   int64
}

type StandingRepository struct {
	rows *table[standingKey, standing.Standing]
}

func NewStandingRepository() *StandingRepository {
	return &StandingRepository{rows: newTable[standingKey](func(v *standing.Standing, id int64) { v.ID = id })}
}

func (r *StandingRepository) ExistsForTeam(_ context.Context, seasonID, teamID int64) (bool, error) {
	_, ok := r.rows.get(standingKey{seasonID: seasonID, teamID: teamID})
	return ok, nil
}

func (r *StandingRepository) GetOrCreate(_ context.Context, s standing.Standing) (standing.Standing, bool, error) {
	v, created := r.rows.getOrCreate(standingKey{seasonID: s.SeasonID, teamID: s.TeamID}, s)
	return v, created, nil
}
