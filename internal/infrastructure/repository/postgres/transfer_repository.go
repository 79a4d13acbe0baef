package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/transfers"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type transferRowModel struct {
	ID            int       `db:"id"`
	ManagerID     int       `db:"manager_id"`
	Gameweek      int       `db:"gameweek"`
	PlayerInID    int       `db:"player_in_id"`
	PlayerOutID   int       `db:"player_out_id"`
	PlayerInCost  int       `db:"player_in_cost"`
	PlayerOutCost int       `db:"player_out_cost"`
	MadeAt        time.Time `db:"made_at"`
}

func (m transferRowModel) toDomain() transfers.Transfer {
	return transfers.Transfer{
		ID:               m.ID,
		ManagerID:        m.ManagerID,
		Gameweek:         m.Gameweek,
		PlayerInID:       m.PlayerInID,
		PlayerOutID:      m.PlayerOutID,
		PlayerInCostTen:  m.PlayerInCost,
		PlayerOutCostTen: m.PlayerOutCost,
		MadeAt:           m.MadeAt,
	}
}

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) ListByManagerAndGameweek(ctx context.Context, managerID, gw int) ([]transfers.Transfer, error) {
	query, args, err := qb.Select("*").From("manager_transfers").
		Where(
			qb.Eq("manager_id", managerID),
			qb.Eq("gameweek", gw),
		).
		OrderBy("made_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select transfers query: %w", err)
	}

	var rows []transferRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager transfers: %w", err)
	}

	out := make([]transfers.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
