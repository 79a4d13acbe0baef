package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/squad"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type pickRowModel struct {
	PlayerID      int  `db:"player_id"`
	Position      int  `db:"position"`
	IsCaptain     bool `db:"is_captain"`
	IsViceCaptain bool `db:"is_vice_captain"`
	ElementType   int  `db:"element_type"`
}

type SquadRepository struct {
	db *sqlx.DB
}

func NewSquadRepository(db *sqlx.DB) *SquadRepository {
	return &SquadRepository{db: db}
}

func (r *SquadRepository) ListPicks(ctx context.Context, managerID, gw int) ([]squad.Pick, error) {
	query, args, err := qb.Select("player_id", "position", "is_captain", "is_vice_captain", "element_type").
		From("manager_picks").
		Where(
			qb.Eq("manager_id", managerID),
			qb.Eq("gameweek", gw),
		).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select picks query: %w", err)
	}

	var rows []pickRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select picks: %w", err)
	}

	out := make([]squad.Pick, 0, len(rows))
	for _, row := range rows {
		out = append(out, squad.Pick{
			PlayerID:       row.PlayerID,
			Position:       row.Position,
			IsCaptain:      row.IsCaptain,
			IsViceCaptain:  row.IsViceCaptain,
			PlayerPosition: player.Position(row.ElementType),
		})
	}
	return out, nil
}
