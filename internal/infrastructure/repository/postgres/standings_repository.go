package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/standings"
)

// StandingsRepository reads the standings materialized view joined with the
// per-gameweek live status rows. Captain and vice names are resolved in SQL so
// the table renders in a single round trip.
type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

const standingsQuery = `SELECT
	s.manager_id,
	s.manager_name,
	s.team_name,
	s.rank,
	s.rank_change,
	s.league_rank_change,
	s.total_points,
	s.gameweek_points,
	COALESCE(ls.players_left, 0) AS players_left,
	COALESCE(ls.live_points, 0) AS live_points,
	COALESCE(ls.captain_name, '') AS captain_name,
	COALESCE(ls.vice_name, '') AS vice_name,
	COALESCE(ls.active_chip, '') AS active_chip
FROM mv_mini_league_standings s
LEFT JOIN manager_live_status ls
	ON ls.manager_id = s.manager_id AND ls.gameweek = $2
WHERE s.mini_league_id = $1
ORDER BY s.rank, s.manager_id`

func (r *StandingsRepository) ListByLeagueAndGameweek(ctx context.Context, leagueID, gw int) ([]standings.Row, error) {
	var rows []standingsRowModel
	if err := r.db.SelectContext(ctx, &rows, standingsQuery, leagueID, gw); err != nil {
		return nil, fmt.Errorf("select league standings: %w", err)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
