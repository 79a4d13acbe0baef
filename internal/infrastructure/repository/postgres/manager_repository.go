package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/squad"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type managerRowModel struct {
	ID         int    `db:"id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	TeamName   string `db:"team_name"`
	LeagueID   int    `db:"league_id"`
	LeagueRank int    `db:"league_rank"`
}

type historyRowModel struct {
	ManagerID      int    `db:"manager_id"`
	Gameweek       int    `db:"gameweek"`
	GameweekPoints int    `db:"gameweek_points"`
	TotalPoints    int    `db:"total_points"`
	GameweekRank   int    `db:"gameweek_rank"`
	OverallRank    int    `db:"overall_rank"`
	Bank           int    `db:"bank"`
	Value          int    `db:"value"`
	TransfersMade  int    `db:"transfers_made"`
	TransferCost   int    `db:"transfer_cost"`
	PointsOnBench  int    `db:"points_on_bench"`
	ActiveChip     string `db:"active_chip"`
}

func (m historyRowModel) toDomain() manager.GameweekHistory {
	return manager.GameweekHistory{
		ManagerID:      m.ManagerID,
		Gameweek:       m.Gameweek,
		GameweekPoints: m.GameweekPoints,
		TotalPoints:    m.TotalPoints,
		GameweekRank:   m.GameweekRank,
		OverallRank:    m.OverallRank,
		BankTenths:     m.Bank,
		ValueTenths:    m.Value,
		TransfersMade:  m.TransfersMade,
		TransferCost:   m.TransferCost,
		PointsOnBench:  m.PointsOnBench,
		ActiveChip:     squad.Chip(m.ActiveChip),
	}
}

// ManagerRepository reads managers joined with their mini-league membership,
// plus the per-gameweek history rows.
type ManagerRepository struct {
	db *sqlx.DB
}

func NewManagerRepository(db *sqlx.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

const managerColumns = "m.id, m.first_name, m.last_name, m.team_name, mlm.mini_league_id AS league_id, mlm.rank AS league_rank"

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	query := fmt.Sprintf(`SELECT %s
FROM managers m
JOIN mini_league_managers mlm ON mlm.manager_id = m.id
WHERE m.id = $1
LIMIT 1`, managerColumns)

	var row managerRowModel
	if err := r.db.GetContext(ctx, &row, query, managerID); err != nil {
		if isNotFound(err) {
			return manager.Manager{}, false, nil
		}
		return manager.Manager{}, false, fmt.Errorf("get manager by id: %w", err)
	}

	return toManager(row), true, nil
}

func (r *ManagerRepository) ListByLeague(ctx context.Context, leagueID int) ([]manager.Manager, error) {
	query := fmt.Sprintf(`SELECT %s
FROM managers m
JOIN mini_league_managers mlm ON mlm.manager_id = m.id
WHERE mlm.mini_league_id = $1
ORDER BY mlm.rank, m.id`, managerColumns)

	var rows []managerRowModel
	if err := r.db.SelectContext(ctx, &rows, query, leagueID); err != nil {
		return nil, fmt.Errorf("select managers by league: %w", err)
	}

	out := make([]manager.Manager, 0, len(rows))
	for _, row := range rows {
		out = append(out, toManager(row))
	}
	return out, nil
}

func (r *ManagerRepository) ListHistory(ctx context.Context, managerID int) ([]manager.GameweekHistory, error) {
	query, args, err := qb.Select("*").From("manager_gameweek_history").
		Where(qb.Eq("manager_id", managerID)).
		OrderBy("gameweek").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select history query: %w", err)
	}

	var rows []historyRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select manager history: %w", err)
	}

	out := make([]manager.GameweekHistory, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ManagerRepository) GetHistoryRow(ctx context.Context, managerID, gw int) (manager.GameweekHistory, bool, error) {
	query, args, err := qb.Select("*").From("manager_gameweek_history").
		Where(
			qb.Eq("manager_id", managerID),
			qb.Eq("gameweek", gw),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return manager.GameweekHistory{}, false, fmt.Errorf("build select history row query: %w", err)
	}

	var row historyRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return manager.GameweekHistory{}, false, nil
		}
		return manager.GameweekHistory{}, false, fmt.Errorf("get history row: %w", err)
	}

	return row.toDomain(), true, nil
}

func toManager(row managerRowModel) manager.Manager {
	return manager.Manager{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		TeamName:   row.TeamName,
		LeagueID:   row.LeagueID,
		LeagueRank: row.LeagueRank,
	}
}
