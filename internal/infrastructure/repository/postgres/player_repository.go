package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/player"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type playerRowModel struct {
	ID          int    `db:"id"`
	WebName     string `db:"web_name"`
	TeamID      int    `db:"team_id"`
	ElementType int    `db:"element_type"`
	NowCost     int    `db:"now_cost"`
}

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByIDs(ctx context.Context, ids []int) ([]player.Player, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("id", "web_name", "team_id", "element_type", "now_cost").
		From("players").
		Where(qb.In("id", intsToAny(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:          row.ID,
			WebName:     row.WebName,
			TeamID:      row.TeamID,
			Position:    player.Position(row.ElementType),
			PriceTenths: row.NowCost,
		})
	}
	return out, nil
}
