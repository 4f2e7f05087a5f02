package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/matchevent"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) GetOrCreate(ctx context.Context, e matchevent.Event) (matchevent.Event, bool, error) {
	row, created, err := getOrCreate[matchEventTableModel](ctx, r.db, "match_events", matchEventSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", e.SofascoreID)},
		matchEventColumns{
			SofascoreID:    e.SofascoreID,
			FixtureID:      e.FixtureID,
			TeamID:         e.TeamID,
			PlayerID:       e.PlayerID,
			AssistPlayerID: e.AssistPlayerID,
			PlayerOutID:    e.PlayerOutID,
			Type:           e.Type,
			Minute:         e.Minute,
			ExtraMinute:    e.ExtraMinute,
			IsHome:         e.IsHome,
			HomeScore:      e.HomeScore,
			AwayScore:      e.AwayScore,
			IncidentClass:  e.IncidentClass,
			Reason:         e.Reason,
			Detail:         e.Detail,
			Comments:       e.Comments,
		},
	)
	if err != nil {
		return matchevent.Event{}, false, fmt.Errorf("get or create match event %d: %w", e.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}

func (r *EventRepository) ListByFixture(ctx context.Context, fixtureID int64) ([]matchevent.Event, error) {
	q, _ := executor(ctx, r.db)
	rows, err := selectMany[matchEventTableModel](ctx, q, "match_events", matchEventSelectColumns,
		[]string{"id"},
		qb.Eq("fixture_id", fixtureID),
	)
	if err != nil {
		return nil, fmt.Errorf("list match events: %w", err)
	}
	out := make([]matchevent.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
