package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/league"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type leagueRowModel struct {
	ID     int    `db:"id"`
	Name   string `db:"name"`
	Closed bool   `db:"closed"`
}

type LeagueRepository struct {
	db *sqlx.DB
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int) (league.MiniLeague, bool, error) {
	query, args, err := qb.Select("id", "name", "closed").From("mini_leagues").
		Where(qb.Eq("id", leagueID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return league.MiniLeague{}, false, fmt.Errorf("build select league query: %w", err)
	}

	var row leagueRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.MiniLeague{}, false, nil
		}
		return league.MiniLeague{}, false, fmt.Errorf("get league by id: %w", err)
	}

	return league.MiniLeague{ID: row.ID, Name: row.Name, Closed: row.Closed}, true, nil
}
