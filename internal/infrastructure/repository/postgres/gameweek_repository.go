package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/gameweek"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type gameweekRowModel struct {
	ID     int  `db:"id"`
	IsNext bool `db:"is_next"`
}

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) List(ctx context.Context) ([]gameweek.Gameweek, error) {
	query, args, err := qb.Select("id", "is_next").From("gameweeks").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select gameweeks query: %w", err)
	}

	var rows []gameweekRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select gameweeks: %w", err)
	}

	out := make([]gameweek.Gameweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweek.Gameweek{ID: row.ID, IsNext: row.IsNext})
	}
	return out, nil
}
