package httpapi

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/platform/id"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/usecase"
)

// LiveService is the tracker surface the API reads from.
type LiveService interface {
	ListLiveMatches(ctx context.Context) ([]usecase.LiveMatchEntry, error)
	LiveOrRefresh(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool)
	ForceRefresh(ctx context.Context, sofascoreID int64) (livematch.Snapshot, bool)
	Status() usecase.TrackerStatus
}

type IngestionService interface {
	IngestCompetitions(ctx context.Context, inputs []usecase.IngestCompetitionInput) []usecase.IngestCompetitionResult
}

type Handler struct {
	live      LiveService
	ingestion IngestionService
	runIDs    id.Generator
	now       func() time.Time
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(live LiveService, ingestion IngestionService, runIDs id.Generator, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if runIDs == nil {
		runIDs = id.NewRunIDGenerator("ingest")
	}

	return &Handler{
		live:      live,
		ingestion: ingestion,
		runIDs:    runIDs,
		now:       time.Now,
		logger:    logger,
		validator: validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type matchPathParams struct {
	MatchID int64 `validate:"required,gt=0"`
}

func (h *Handler) parseMatchID(ctx context.Context, raw string) (int64, error) {
	matchID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: match id must be numeric", usecase.ErrInvalidInput)
	}
	if err := h.validateRequest(ctx, matchPathParams{MatchID: matchID}); err != nil {
		return 0, err
	}
	return matchID, nil
}

type healthDTO struct {
	Status  string                `json:"status"`
	Tracker usecase.TrackerStatus `json:"tracker"`
}

type scorePairDTO struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type liveMatchListItemDTO struct {
	SofascoreID       int64        `json:"sofascore_id"`
	FixtureID         *int64       `json:"fixture_id"`
	Source            string       `json:"source"`
	Tournament        string       `json:"tournament,omitempty"`
	HomeTeam          string       `json:"home_team,omitempty"`
	AwayTeam          string       `json:"away_team,omitempty"`
	Score             scorePairDTO `json:"score"`
	Minute            *int         `json:"minute"`
	Status            string       `json:"status"`
	StatusDescription string       `json:"status_description,omitempty"`
	Kickoff           *time.Time   `json:"kickoff"`
	KickoffInMinutes  *int         `json:"kickoff_in_minutes"`
}

type liveMatchListDTO struct {
	Matches []liveMatchListItemDTO `json:"matches"`
	Total   int                    `json:"total"`
}

type matchScoreDTO struct {
	Current  scorePairDTO `json:"current"`
	HalfTime scorePairDTO `json:"half_time"`
	Period1  scorePairDTO `json:"period1"`
	Period2  scorePairDTO `json:"period2"`
}

type liveMatchDTO struct {
	SofascoreID       int64              `json:"sofascore_id"`
	Status            string             `json:"status"`
	StatusDescription string             `json:"status_description,omitempty"`
	Minute            *int               `json:"minute"`
	Tournament        string             `json:"tournament,omitempty"`
	Kickoff           *time.Time         `json:"kickoff"`
	HomeTeam          livematch.TeamInfo `json:"home_team"`
	AwayTeam          livematch.TeamInfo `json:"away_team"`
	Score             matchScoreDTO      `json:"score"`
	LastUpdated       time.Time          `json:"last_updated"`
}

type eventBucketsDTO struct {
	Goals         []livematch.Incident `json:"goals"`
	Cards         []livematch.Incident `json:"cards"`
	Substitutions []livematch.Incident `json:"substitutions"`
	VAR           []livematch.Incident `json:"var"`
	PenaltyMissed []livematch.Incident `json:"penalty_missed"`
}

type eventTotalsDTO struct {
	Goals         int `json:"goals"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	Substitutions int `json:"substitutions"`
}

type liveEventsDTO struct {
	SofascoreID int64                `json:"sofascore_id"`
	Status      string               `json:"status"`
	LastUpdated time.Time            `json:"last_updated"`
	Available   bool                 `json:"available"`
	Timeline    []livematch.Incident `json:"timeline"`
	ByType      eventBucketsDTO      `json:"by_type"`
	Periods     []livematch.Period   `json:"periods"`
	Totals      eventTotalsDTO       `json:"totals"`
}

type statPairDTO struct {
	Home any `json:"home"`
	Away any `json:"away"`
}

type statsSummaryDTO struct {
	Possession  statPairDTO `json:"possession"`
	Shots       statPairDTO `json:"shots"`
	Corners     statPairDTO `json:"corners"`
	YellowCards statPairDTO `json:"yellow_cards"`
}

type liveStatsDTO struct {
	SofascoreID int64               `json:"sofascore_id"`
	Status      string              `json:"status"`
	LastUpdated time.Time           `json:"last_updated"`
	HomeTeam    string              `json:"home_team"`
	AwayTeam    string              `json:"away_team"`
	Available   bool                `json:"available"`
	Summary     *statsSummaryDTO    `json:"summary"`
	Details     livematch.StatsTree `json:"details"`
}

type liveLineupsDTO struct {
	SofascoreID int64              `json:"sofascore_id"`
	Status      string             `json:"status"`
	LastUpdated time.Time          `json:"last_updated"`
	HomeTeam    string             `json:"home_team"`
	AwayTeam    string             `json:"away_team"`
	Available   bool               `json:"available"`
	Lineups     *livematch.Lineups `json:"lineups"`
}

func liveEntryToDTO(entry usecase.LiveMatchEntry, now time.Time) liveMatchListItemDTO {
	out := liveMatchListItemDTO{SofascoreID: entry.SofascoreID, Source: "sofascore_live"}

	if fx := entry.Fixture; fx != nil {
		fixtureID := fx.ID
		kickoff := fx.Date
		out.FixtureID = &fixtureID
		out.Source = "store"
		out.Kickoff = &kickoff
		out.Status = fx.Status
		out.Score = scorePairDTO{Home: fx.HomeScore, Away: fx.AwayScore}
		if kickoff.After(now) {
			minutes := int(kickoff.Sub(now).Minutes())
			out.KickoffInMinutes = &minutes
		}
	}

	if snap := entry.Snapshot; snap != nil {
		info := snap.MatchInfo
		out.Tournament = info.Tournament
		out.HomeTeam = info.HomeTeam.Name
		out.AwayTeam = info.AwayTeam.Name
		out.Minute = info.Minute
		out.Status = snap.Status
		out.StatusDescription = info.StatusDescription
		if info.Score.Home != nil || info.Score.Away != nil {
			out.Score = scorePairDTO{Home: info.Score.Home, Away: info.Score.Away}
		}
	}
	return out
}

func liveMatchToDTO(snap livematch.Snapshot) liveMatchDTO {
	info := snap.MatchInfo
	score := info.Score

	halfTime := scorePairDTO{Home: score.HomePeriod1, Away: score.AwayPeriod1}
	if snap.Incidents != nil {
		for _, p := range snap.Incidents.Periods {
			if p.Text == "HT" {
				halfTime = scorePairDTO{Home: p.HomeScore, Away: p.AwayScore}
				break
			}
		}
	}

	var kickoff *time.Time
	if info.StartTimestamp > 0 {
		t := time.Unix(info.StartTimestamp, 0).UTC()
		kickoff = &t
	}

	return liveMatchDTO{
		SofascoreID:       snap.FixtureID,
		Status:            snap.Status,
		StatusDescription: info.StatusDescription,
		Minute:            info.Minute,
		Tournament:        info.Tournament,
		Kickoff:           kickoff,
		HomeTeam:          info.HomeTeam,
		AwayTeam:          info.AwayTeam,
		Score: matchScoreDTO{
			Current:  scorePairDTO{Home: score.Home, Away: score.Away},
			HalfTime: halfTime,
			Period1:  scorePairDTO{Home: score.HomePeriod1, Away: score.AwayPeriod1},
			Period2:  scorePairDTO{Home: score.HomePeriod2, Away: score.AwayPeriod2},
		},
		LastUpdated: snap.Timestamp,
	}
}

func liveEventsToDTO(snap livematch.Snapshot) liveEventsDTO {
	out := liveEventsDTO{
		SofascoreID: snap.FixtureID,
		Status:      snap.Status,
		LastUpdated: snap.Timestamp,
		Available:   snap.Incidents != nil,
		Timeline:    []livematch.Incident{},
		Periods:     []livematch.Period{},
		ByType: eventBucketsDTO{
			Goals:         []livematch.Incident{},
			Cards:         []livematch.Incident{},
			Substitutions: []livematch.Incident{},
			VAR:           []livematch.Incident{},
			PenaltyMissed: []livematch.Incident{},
		},
	}
	if snap.Incidents == nil {
		return out
	}

	out.Timeline = append(out.Timeline, snap.Incidents.Events...)
	out.Periods = append(out.Periods, snap.Incidents.Periods...)
	for _, ev := range snap.Incidents.Events {
		switch ev.Kind {
		case livematch.KindGoal:
			out.ByType.Goals = append(out.ByType.Goals, ev)
			out.Totals.Goals++
		case livematch.KindYellowCard:
			out.ByType.Cards = append(out.ByType.Cards, ev)
			out.Totals.YellowCards++
		case livematch.KindRedCard:
			out.ByType.Cards = append(out.ByType.Cards, ev)
			out.Totals.RedCards++
		case livematch.KindSubstitution:
			out.ByType.Substitutions = append(out.ByType.Substitutions, ev)
			out.Totals.Substitutions++
		case livematch.KindVAR:
			out.ByType.VAR = append(out.ByType.VAR, ev)
		case livematch.KindPenaltyMissed:
			out.ByType.PenaltyMissed = append(out.ByType.PenaltyMissed, ev)
		}
	}
	return out
}

func liveStatsToDTO(snap livematch.Snapshot) liveStatsDTO {
	out := liveStatsDTO{
		SofascoreID: snap.FixtureID,
		Status:      snap.Status,
		LastUpdated: snap.Timestamp,
		HomeTeam:    snap.MatchInfo.HomeTeam.Name,
		AwayTeam:    snap.MatchInfo.AwayTeam.Name,
		Available:   snap.Stats != nil,
		Details:     snap.Stats,
	}

	full, ok := snap.Stats["all"]
	if !ok {
		return out
	}
	overview, ok := full.Group("match_overview")
	if !ok {
		return out
	}
	period := livematch.StatsPeriod{Groups: []livematch.StatGroup{overview}}

	summary := statsSummaryDTO{}
	if it, ok := period.Item("ballPossession"); ok {
		summary.Possession = statPairDTO{Home: it.HomeDisplay, Away: it.AwayDisplay}
	}
	if it, ok := period.Item("totalShotsOnGoal"); ok {
		summary.Shots = statPairDTO{Home: it.Home, Away: it.Away}
	}
	if it, ok := period.Item("cornerKicks"); ok {
		summary.Corners = statPairDTO{Home: it.Home, Away: it.Away}
	}
	if it, ok := period.Item("yellowCards"); ok {
		summary.YellowCards = statPairDTO{Home: it.Home, Away: it.Away}
	}
	out.Summary = &summary
	return out
}

func liveLineupsToDTO(snap livematch.Snapshot) liveLineupsDTO {
	return liveLineupsDTO{
		SofascoreID: snap.FixtureID,
		Status:      snap.Status,
		LastUpdated: snap.Timestamp,
		HomeTeam:    snap.MatchInfo.HomeTeam.Name,
		AwayTeam:    snap.MatchInfo.AwayTeam.Name,
		Available:   snap.Lineups != nil,
		Lineups:     snap.Lineups,
	}
}
