package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-live/internal/domain/fixture"
	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/usecase"
)

type fakeLiveService struct {
	entries   []usecase.LiveMatchEntry
	snapshots map[int64]livematch.Snapshot
	refreshed []int64
}

func (f *fakeLiveService) ListLiveMatches(context.Context) ([]usecase.LiveMatchEntry, error) {
	return f.entries, nil
}

func (f *fakeLiveService) LiveOrRefresh(_ context.Context, id int64) (livematch.Snapshot, bool) {
	snap, ok := f.snapshots[id]
	return snap, ok
}

func (f *fakeLiveService) ForceRefresh(_ context.Context, id int64) (livematch.Snapshot, bool) {
	f.refreshed = append(f.refreshed, id)
	snap, ok := f.snapshots[id]
	return snap, ok
}

func (f *fakeLiveService) Status() usecase.TrackerStatus {
	return usecase.TrackerStatus{Running: true, Tracked: 3}
}

type fakeIngestion struct {
	inputs []usecase.IngestCompetitionInput
}

func (f *fakeIngestion) IngestCompetitions(_ context.Context, inputs []usecase.IngestCompetitionInput) []usecase.IngestCompetitionResult {
	f.inputs = inputs
	out := make([]usecase.IngestCompetitionResult, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, usecase.IngestCompetitionResult{TournamentID: in.TournamentID, Created: 2})
	}
	return out
}

type fixedIDs struct{}

func (fixedIDs) NewID() (string, error) { return "run-1", nil }

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func sampleSnapshot() livematch.Snapshot {
	return livematch.Snapshot{
		FixtureID: 555,
		Timestamp: time.Date(2026, 10, 17, 15, 30, 0, 0, time.UTC),
		Status:    fixture.StatusInProgress,
		MatchInfo: livematch.MatchInfo{
			HomeTeam:   livematch.TeamInfo{ID: 10, Name: "Arsenal"},
			AwayTeam:   livematch.TeamInfo{ID: 20, Name: "Chelsea"},
			Score:      livematch.Score{Home: intPtr(2), Away: intPtr(1), HomePeriod1: intPtr(1), AwayPeriod1: intPtr(1)},
			Minute:     intPtr(67),
			Tournament: "Premier League",
		},
		Incidents: &livematch.Incidents{
			Events: []livematch.Incident{
				{Kind: livematch.KindGoal, Time: intPtr(12), Team: "home"},
				{Kind: livematch.KindYellowCard, Time: intPtr(30), Team: "away"},
				{Kind: livematch.KindRedCard, Time: intPtr(41), Team: "away"},
				{Kind: livematch.KindGoal, Time: intPtr(44), Team: "away"},
				{Kind: livematch.KindSubstitution, Time: intPtr(60), Team: "home"},
				{Kind: livematch.KindGoal, Time: intPtr(65), Team: "home"},
			},
			Periods: []livematch.Period{{Text: "HT", Time: intPtr(45), HomeScore: intPtr(1), AwayScore: intPtr(1)}},
		},
		Stats: livematch.StatsTree{
			"all": livematch.StatsPeriod{Groups: []livematch.StatGroup{{
				Name: "match_overview",
				Items: []livematch.StatItem{
					{Key: "ballPossession", Home: floatPtr(58), Away: floatPtr(42), HomeDisplay: "58%", AwayDisplay: "42%"},
					{Key: "cornerKicks", Home: floatPtr(6), Away: floatPtr(2)},
				},
			}}},
		},
	}
}

func newTestRouter(live *fakeLiveService, ingestion IngestionService) http.Handler {
	handler := NewHandler(live, ingestion, fixedIDs{}, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), false, []string{"*"}, "secret")
}

func serve(t *testing.T, router http.Handler, method, target, body string, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, decoded
}

func TestHandler_GetLiveMatchUsesHalfTimePeriod(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{snapshots: map[int64]livematch.Snapshot{555: sampleSnapshot()}}
	rec, body := serve(t, newTestRouter(live, nil), http.MethodGet, "/v1/live/matches/555", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	data := body["data"].(map[string]any)
	score := data["score"].(map[string]any)
	current := score["current"].(map[string]any)
	halfTime := score["half_time"].(map[string]any)
	if current["home"] != float64(2) || current["away"] != float64(1) {
		t.Fatalf("unexpected current score: %v", current)
	}
	if halfTime["home"] != float64(1) || halfTime["away"] != float64(1) {
		t.Fatalf("unexpected half-time score: %v", halfTime)
	}
	if data["minute"] != float64(67) {
		t.Fatalf("unexpected minute: %v", data["minute"])
	}
}

func TestHandler_GetLiveEventsBucketsByType(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{snapshots: map[int64]livematch.Snapshot{555: sampleSnapshot()}}
	_, body := serve(t, newTestRouter(live, nil), http.MethodGet, "/v1/live/matches/555/events", "", nil)

	data := body["data"].(map[string]any)
	totals := data["totals"].(map[string]any)
	if totals["goals"] != float64(3) || totals["yellow_cards"] != float64(1) || totals["red_cards"] != float64(1) || totals["substitutions"] != float64(1) {
		t.Fatalf("unexpected totals: %v", totals)
	}
	byType := data["by_type"].(map[string]any)
	if cards := byType["cards"].([]any); len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if timeline := data["timeline"].([]any); len(timeline) != 6 {
		t.Fatalf("expected 6 timeline entries, got %d", len(timeline))
	}
}

func TestHandler_GetLiveStatsSummary(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{snapshots: map[int64]livematch.Snapshot{555: sampleSnapshot()}}
	_, body := serve(t, newTestRouter(live, nil), http.MethodGet, "/v1/live/matches/555/stats", "", nil)

	data := body["data"].(map[string]any)
	if data["available"] != true {
		t.Fatalf("expected stats to be available")
	}
	summary := data["summary"].(map[string]any)
	possession := summary["possession"].(map[string]any)
	if possession["home"] != "58%" || possession["away"] != "42%" {
		t.Fatalf("unexpected possession: %v", possession)
	}
	corners := summary["corners"].(map[string]any)
	if corners["home"] != float64(6) {
		t.Fatalf("unexpected corners: %v", corners)
	}
}

func TestHandler_UnavailableSnapshotIs503(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{snapshots: map[int64]livematch.Snapshot{}}
	rec, body := serve(t, newTestRouter(live, nil), http.MethodGet, "/v1/live/matches/9/lineups", "", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	errObj := body["error"].(map[string]any)
	if errObj["status"] != "UNAVAILABLE" {
		t.Fatalf("unexpected error status: %v", errObj["status"])
	}
}

func TestHandler_InvalidMatchIDIs400(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{}
	for _, target := range []string{"/v1/live/matches/abc", "/v1/live/matches/0"} {
		rec, _ := serve(t, newTestRouter(live, nil), http.MethodGet, target, "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rec.Code)
		}
	}
}

func TestHandler_ListLiveMatches(t *testing.T) {
	t.Parallel()

	kickoff := time.Now().Add(2 * time.Hour).UTC()
	snap := sampleSnapshot()
	live := &fakeLiveService{entries: []usecase.LiveMatchEntry{
		{SofascoreID: 1, Fixture: &fixture.Fixture{ID: 11, SofascoreID: 1, Date: kickoff, Status: fixture.StatusNotStarted}},
		{SofascoreID: 555, Snapshot: &snap},
	}}
	_, body := serve(t, newTestRouter(live, nil), http.MethodGet, "/v1/live/matches", "", nil)

	data := body["data"].(map[string]any)
	if data["total"] != float64(2) {
		t.Fatalf("unexpected total: %v", data["total"])
	}
	matches := data["matches"].([]any)
	stored := matches[0].(map[string]any)
	if stored["source"] != "store" || stored["fixture_id"] != float64(11) || stored["kickoff_in_minutes"] == nil {
		t.Fatalf("unexpected stored entry: %v", stored)
	}
	providerOnly := matches[1].(map[string]any)
	if providerOnly["source"] != "sofascore_live" || providerOnly["home_team"] != "Arsenal" || providerOnly["fixture_id"] != nil {
		t.Fatalf("unexpected provider entry: %v", providerOnly)
	}
}

func TestHandler_HealthzReportsTracker(t *testing.T) {
	t.Parallel()

	_, body := serve(t, newTestRouter(&fakeLiveService{}, nil), http.MethodGet, "/healthz", "", nil)
	data := body["data"].(map[string]any)
	tracker := data["tracker"].(map[string]any)
	if data["status"] != "ok" || tracker["tracked"] != float64(3) {
		t.Fatalf("unexpected health payload: %v", data)
	}
}

func TestHandler_InternalRoutesRequireToken(t *testing.T) {
	t.Parallel()

	live := &fakeLiveService{snapshots: map[int64]livematch.Snapshot{555: sampleSnapshot()}}
	router := newTestRouter(live, &fakeIngestion{})

	rec, _ := serve(t, router, http.MethodPost, "/v1/internal/live/matches/555/refresh", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	rec, _ = serve(t, router, http.MethodPost, "/v1/internal/live/matches/555/refresh", "", map[string]string{"X-Internal-Job-Token": "secret"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
	if len(live.refreshed) != 1 || live.refreshed[0] != 555 {
		t.Fatalf("expected a forced refresh of 555, got %v", live.refreshed)
	}
}

func TestHandler_RunCompetitionIngestion(t *testing.T) {
	t.Parallel()

	ingestion := &fakeIngestion{}
	router := newTestRouter(&fakeLiveService{}, ingestion)
	header := map[string]string{"X-Internal-Job-Token": "secret", "Content-Type": "application/json"}

	rec, body := serve(t, router, http.MethodPost, "/v1/internal/jobs/ingest-competitions",
		`{"competitions":[{"tournament_id":17,"max_workers":4}]}`, header)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	data := body["data"].(map[string]any)
	if data["run_id"] != "run-1" {
		t.Fatalf("unexpected run id: %v", data["run_id"])
	}
	if len(ingestion.inputs) != 1 || ingestion.inputs[0].TournamentID != 17 || ingestion.inputs[0].MaxWorkers != 4 {
		t.Fatalf("unexpected inputs: %+v", ingestion.inputs)
	}

	rec, _ = serve(t, router, http.MethodPost, "/v1/internal/jobs/ingest-competitions", `{"competitions":[]}`, header)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty competitions, got %d", rec.Code)
	}
	rec, _ = serve(t, router, http.MethodPost, "/v1/internal/jobs/ingest-competitions", `{"competitions":[{"tournament_id":0}]}`, header)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid tournament, got %d", rec.Code)
	}
}
