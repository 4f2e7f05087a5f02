package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-live/internal/domain/player"
	qb "github.com/riskibarqy/football-live/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetBySofascoreID(ctx context.Context, sofascoreID int64) (player.Player, bool, error) {
	q, _ := executor(ctx, r.db)
	row, ok, err := selectOne[playerTableModel](ctx, q, "players", playerSelectColumns, qb.Eq("sofascore_id", sofascoreID))
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get player by sofascore id: %w", err)
	}
	return row.toDomain(), ok, nil
}

func (r *PlayerRepository) GetOrCreate(ctx context.Context, p player.Player) (player.Player, bool, error) {
	if err := p.Validate(); err != nil {
		return player.Player{}, false, err
	}
	row, created, err := getOrCreate[playerTableModel](ctx, r.db, "players", playerSelectColumns,
		[]qb.Condition{qb.Eq("sofascore_id", p.SofascoreID)},
		playerColumns{
			SofascoreID:  p.SofascoreID,
			TeamID:       p.TeamID,
			Name:         p.Name,
			ShortName:    p.ShortName,
			Slug:         p.Slug,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
			Height:       p.Height,
			Country:      p.Country,
			DateOfBirth:  p.DateOfBirth,
		},
	)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("get or create player %d: %w", p.SofascoreID, err)
	}
	return row.toDomain(), created, nil
}
