package livematch

import (
	"errors"
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func ptrInt64(v int64) *int64     { return &v }
func ptrFloat(v float64) *float64 { return &v }
func ptrBool(v bool) *bool        { return &v }
func ptrInt(v int) *int           { return &v }

func TestMinute(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)

	got := Minute(RawTime{CurrentPeriodStartTimestamp: ptrInt64(now.Unix() - 125), Initial: ptrInt64(0)}, now)
	if got == nil || *got != 2 {
		t.Fatalf("expected minute 2, got %v", got)
	}

	second := Minute(RawTime{CurrentPeriodStartTimestamp: ptrInt64(now.Unix() - 60), Initial: ptrInt64(2700)}, now)
	if second == nil || *second != 46 {
		t.Fatalf("expected minute 46 in second half, got %v", second)
	}

	if Minute(RawTime{}, now) != nil {
		t.Fatalf("expected nil minute without period start")
	}
}

func TestParseMatchInfo(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	env := EventEnvelope{Event: &RawEvent{
		ID:             555,
		StartTimestamp: now.Unix() - 600,
		Tournament:     RawTournament{Name: "Premier League"},
		Status:         RawStatus{Type: "inprogress", Description: "1st half"},
		HomeTeam:       RawTeam{ID: 1, Name: "Home FC", ShortName: "Home"},
		AwayTeam:       RawTeam{ID: 2, Name: "Away FC", ShortName: "Away"},
		HomeScore:      RawScore{Current: ptrInt(1), Period1: ptrInt(1)},
		AwayScore:      RawScore{Current: ptrInt(0), Period1: ptrInt(0)},
		Time:           RawTime{CurrentPeriodStartTimestamp: ptrInt64(now.Unix() - 600)},
	}}

	info, err := ParseMatchInfo(env, now)
	if err != nil {
		t.Fatalf("ParseMatchInfo error: %v", err)
	}
	if info.HomeTeam.ShortName != "Home" || info.AwayTeam.ID != 2 {
		t.Fatalf("unexpected teams: %+v", info)
	}
	if *info.Score.Home != 1 || *info.Score.Away != 0 {
		t.Fatalf("unexpected score: %+v", info.Score)
	}
	if info.Minute == nil || *info.Minute != 10 {
		t.Fatalf("expected minute 10, got %v", info.Minute)
	}
	if Status(env) != "inprogress" {
		t.Fatalf("unexpected status %q", Status(env))
	}

	if _, err := ParseMatchInfo(EventEnvelope{}, now); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
}

func TestParseIncidents(t *testing.T) {
	t.Parallel()

	env := IncidentsEnvelope{Incidents: []RawIncident{
		{IncidentType: "period", Text: "HT", Time: ptrInt(45), HomeScore: ptrInt(1), AwayScore: ptrInt(0)},
		{IncidentType: "injuryTime", Time: ptrInt(45), Length: ptrInt(3)},
		{ID: ptrInt64(10), IncidentType: "goal", Time: ptrInt(12), IsHome: ptrBool(true),
			Player: &RawPlayer{ID: 7, Name: "Striker"}, Assist1: &RawPlayer{ID: 8, Name: "Winger"}},
		{ID: ptrInt64(11), IncidentType: "card", IncidentClass: "yellow", Time: ptrInt(30), IsHome: ptrBool(false),
			Player: &RawPlayer{ID: 9, Name: "Defender"}, Reason: "Foul"},
		{ID: ptrInt64(12), IncidentType: "card", IncidentClass: "yellowRed", Time: ptrInt(70), Player: &RawPlayer{ID: 9, Name: "Defender"}},
		{ID: ptrInt64(13), IncidentType: "substitution", Time: ptrInt(60), IsHome: ptrBool(true),
			PlayerIn: &RawPlayer{ID: 20, Name: "Sub"}, PlayerOut: &RawPlayer{ID: 7, Name: "Striker"}},
		{ID: ptrInt64(14), IncidentType: "varDecision", IncidentClass: "goalAwarded", Time: ptrInt(75)},
		{ID: ptrInt64(15), IncidentType: "inGamePenalty", IncidentClass: "missed", Time: ptrInt(80), Player: &RawPlayer{ID: 7, Name: "Striker"}},
		{ID: ptrInt64(16), IncidentType: "weatherDelay", Time: ptrInt(82)},
	}}

	got, dropped := ParseIncidents(env)

	if len(got.Periods) != 2 {
		t.Fatalf("expected 2 period markers, got %d", len(got.Periods))
	}
	if len(got.Events) != 6 {
		t.Fatalf("expected 6 events, got %d: %+v", len(got.Events), got.Events)
	}
	for _, ev := range got.Events {
		if string(ev.Kind) == "period" {
			t.Fatalf("period incident leaked into events")
		}
	}
	if len(dropped) != 1 || dropped[0] != "weatherDelay" {
		t.Fatalf("expected weatherDelay dropped, got %v", dropped)
	}

	wantKinds := []Kind{KindGoal, KindYellowCard, KindRedCard, KindSubstitution, KindVAR, KindPenaltyMissed}
	for i, want := range wantKinds {
		if got.Events[i].Kind != want {
			t.Fatalf("event %d kind=%q want %q", i, got.Events[i].Kind, want)
		}
	}

	if d := got.Events[0].Detail(); d != "Striker (assist: Winger)" {
		t.Fatalf("unexpected goal detail %q", d)
	}
	if d := got.Events[1].Detail(); d != "Defender - Foul" {
		t.Fatalf("unexpected card detail %q", d)
	}
	if d := got.Events[3].Detail(); d != "IN: Sub | OUT: Striker" {
		t.Fatalf("unexpected substitution detail %q", d)
	}
	if d := got.Events[5].Detail(); d != "Penalty - Striker" {
		t.Fatalf("unexpected penalty detail %q", d)
	}
	if !got.Events[0].IsHome() || got.Events[1].IsHome() {
		t.Fatalf("unexpected sides")
	}
}

func TestParseIncidents_ScoredPenaltyIsGoal(t *testing.T) {
	t.Parallel()

	got, _ := ParseIncidents(IncidentsEnvelope{Incidents: []RawIncident{
		{ID: ptrInt64(1), IncidentType: "inGamePenalty", IncidentClass: "scored", Player: &RawPlayer{Name: "Nine"}},
	}})
	if len(got.Events) != 1 || got.Events[0].Kind != KindGoal || !got.Events[0].Penalty {
		t.Fatalf("expected scored penalty to be a goal: %+v", got.Events)
	}
}

func TestParseStatistics_EmptyTree(t *testing.T) {
	t.Parallel()

	tree := ParseStatistics(StatisticsEnvelope{Statistics: []RawStatisticsPeriod{{Period: "ALL"}}})
	if len(tree) != 0 {
		t.Fatalf("expected empty tree, got %+v", tree)
	}
	raw, err := sonic.Marshal(tree)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "{}" {
		t.Fatalf("expected {}, got %s", raw)
	}
}

func TestParseStatistics_TreeShape(t *testing.T) {
	t.Parallel()

	tree := ParseStatistics(StatisticsEnvelope{Statistics: []RawStatisticsPeriod{
		{Period: "ALL", Groups: []RawStatisticsGroup{
			{GroupName: "Match overview", StatisticsItems: []RawStatisticsItem{
				{Key: "ballPossession", Name: "Ball possession", Home: "55%", Away: "45%", HomeValue: ptrFloat(55), AwayValue: ptrFloat(45)},
				{Name: "no key"},
			}},
		}},
		{Period: "1ST", Groups: []RawStatisticsGroup{
			{GroupName: "Shots", StatisticsItems: []RawStatisticsItem{
				{Key: "totalShotsOnGoal", HomeValue: ptrFloat(4), AwayValue: ptrFloat(2)},
			}},
		}},
	}})

	all, ok := tree["all"]
	if !ok {
		t.Fatalf("expected lowercased all period: %+v", tree)
	}
	group, ok := all.Group("match_overview")
	if !ok || len(group.Items) != 1 {
		t.Fatalf("unexpected match overview group: %+v", all)
	}
	if group.Items[0].HomeDisplay != "55%" || *group.Items[0].Away != 45 {
		t.Fatalf("unexpected item: %+v", group.Items[0])
	}
	if _, ok := tree["1st"]; !ok {
		t.Fatalf("expected 1st period")
	}
}

func TestDeriveLines_PassAccuracy(t *testing.T) {
	t.Parallel()

	period := StatsPeriod{Groups: []StatGroup{{Name: "passes", Items: []StatItem{
		{Key: "passes", Home: ptrFloat(40), Away: ptrFloat(0)},
		{Key: "accuratePasses", Home: ptrFloat(30), Away: ptrFloat(0)},
	}}}}

	home, away := DeriveLines(period)
	if home["pass_accuracy"] != 75.0 {
		t.Fatalf("expected 75.0, got %v", home["pass_accuracy"])
	}
	if v, ok := away["pass_accuracy"]; !ok || v != 0 {
		t.Fatalf("expected 0 pass accuracy with zero passes, got %v (set=%v)", v, ok)
	}
}

func TestDeriveLines_AccuratePassesBeforePassesIsUnset(t *testing.T) {
	t.Parallel()

	period := StatsPeriod{Groups: []StatGroup{{Items: []StatItem{
		{Key: "accuratePasses", Home: ptrFloat(30), Away: ptrFloat(20)},
		{Key: "passes", Home: ptrFloat(40), Away: ptrFloat(25)},
	}}}}

	home, _ := DeriveLines(period)
	if _, ok := home["pass_accuracy"]; ok {
		t.Fatalf("expected pass_accuracy to stay unset when passes arrives later")
	}
	if home["passes"] != 40 {
		t.Fatalf("expected passes recorded")
	}
}

func TestDeriveLines_Derived(t *testing.T) {
	t.Parallel()

	period := StatsPeriod{Groups: []StatGroup{{Items: []StatItem{
		{Key: "accurateCross", Home: ptrFloat(3), HomeTotal: ptrFloat(12), Away: ptrFloat(1), AwayTotal: ptrFloat(0)},
		{Key: "dribblesPercentage", Home: ptrFloat(4), HomeTotal: ptrFloat(8)},
		{Key: "wonTacklePercent", Home: ptrFloat(6), HomeTotal: ptrFloat(8)},
		{Key: "aerialDuelsPercentage", Home: ptrFloat(5), HomeTotal: ptrFloat(9)},
	}}}}

	home, away := DeriveLines(period)
	checks := map[string]float64{
		"crosses":          3,
		"crosses_accuracy": 25,
		"dribbles":         4,
		"dribble_success":  50,
		"tackles_won":      75,
		"tackles_lost":     25,
		"aerials_won":      5,
		"aerials_lost":     4,
	}
	for field, want := range checks {
		if home[field] != want {
			t.Fatalf("%s=%v want %v", field, home[field], want)
		}
	}
	if away["crosses_accuracy"] != 0 {
		t.Fatalf("expected zero-total guard, got %v", away["crosses_accuracy"])
	}

	row := home.ToStatistics(1, 2)
	if row.Crosses != 3 || row.TacklesWon != 75 || row.AerialsLost != 4 {
		t.Fatalf("unexpected statistics row: %+v", row)
	}
}

func TestParseLineup(t *testing.T) {
	t.Parallel()

	if ParseLineup(nil) != nil {
		t.Fatalf("expected nil lineup")
	}
	got := ParseLineup(&RawTeamLineup{Formation: "4-3-3", Players: []RawLineupPlayer{
		{Player: RawPlayer{ID: 1, Name: "Keeper", Position: "G"}, Captain: true,
			Statistics: &RawLineupStatistics{Rating: ptrFloat(7.1), MinutesPlayed: ptrInt(90)}},
		{Player: RawPlayer{ID: 2, Name: "Bench"}, Position: "F", Substitute: true},
	}})
	if got.Formation != "4-3-3" || len(got.Players) != 2 {
		t.Fatalf("unexpected lineup: %+v", got)
	}
	if got.Players[0].Position != "G" || !got.Players[0].Captain || *got.Players[0].MinutesPlayed != 90 {
		t.Fatalf("unexpected starter: %+v", got.Players[0])
	}
	if !got.Players[1].Substitute || got.Players[1].Position != "F" {
		t.Fatalf("unexpected substitute: %+v", got.Players[1])
	}
}

func TestCacheKey(t *testing.T) {
	t.Parallel()

	if CacheKey(555) != "live:fixture:555" {
		t.Fatalf("unexpected cache key %q", CacheKey(555))
	}
}
