package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/manager"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type ManagerRepository struct {
	db *sqlx.DB
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (manager.Manager, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[managerTableModel](ctx, q, "managers", managerSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return manager.Manager{}, false, fmt.Errorf("get manager by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

func (r *ManagerRepository) GetOrCreate(ctx context.Context, m manager.Manager) (manager.Manager, bool, error) {
	if m.SofascoreID <= 0 || m.Name == "" {
		return manager.Manager{}, false, fmt.Errorf("manager sofascore id and name are required")
	}
	row, created, err := getOrCreate[managerTableModel](ctx, r.db, "managers", managerSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", m.SofascoreID)},
		managerColumns{
			SofascoreID: m.SofascoreID,
			Name:        m.Name,
			ShortName:   m.ShortName,
			Slug:        m.Slug,
			Country:     m.Country,
			DateOfBirth: m.DateOfBirth,
		},
	)
	if err != nil {
		return manager.Manager{}, false, fmt.Errorf("get or create manager %d: %w", m.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}

// GetOrCreateCurrent relies on the partial unique index over current links per team.
func (r *ManagerRepository) GetOrCreateCurrent(ctx context.Context, link manager.TeamManager) (manager.TeamManager, bool, error) {
	row, created, err := getOrCreate[teamManagerTableModel](ctx, r.db, "team_managers", teamManagerSelectColumns,
		[]qb.Condition{qb.Eq("team_id", link.TeamID), qb.Eq("is_current", true)},
		teamManagerColumns{TeamID: link.TeamID, ManagerID: link.ManagerID, IsCurrent: true},
	)
	if err != nil {
		return manager.TeamManager{}, false, fmt.Errorf("get or create current manager team=%d: %w", link.TeamID, err)
	}
	return manager.TeamManager{
		ID:        row.ID,
		TeamID:    row.TeamID,
		ManagerID: row.ManagerID,
		IsCurrent: row.IsCurrent,
	}, created, nil
}
