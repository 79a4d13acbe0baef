package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/playerstats"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByPlayersAndGameweek(ctx context.Context, playerIDs []int, gw int) ([]playerstats.GameweekStats, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select("*").From("player_gameweek_stats").
		Where(
			qb.In("player_id", intsToAny(playerIDs)),
			qb.Eq("gameweek", gw),
		).
		OrderBy("player_id", "fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player stats query: %w", err)
	}

	var rows []playerStatsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player stats: %w", err)
	}

	out := make([]playerstats.GameweekStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListSeasonTotals(ctx context.Context, playerIDs []int) ([]playerstats.SeasonTotals, error) {
	if len(playerIDs) == 0 {
		return nil, nil
	}

	// The stats table is one row per (player, fixture); season totals are the
	// straight sums.
	query, args, err := qb.Select(
		"player_id",
		"COALESCE(SUM(minutes), 0) AS minutes",
		"COALESCE(SUM(goals_scored), 0) AS goals_scored",
		"COALESCE(SUM(assists), 0) AS assists",
		"COALESCE(SUM(clean_sheets), 0) AS clean_sheets",
		"COALESCE(SUM(saves), 0) AS saves",
		"COALESCE(SUM(bps), 0) AS bps",
		"COALESCE(SUM(bonus), 0) AS bonus",
		"COALESCE(SUM(total_points), 0) AS total_points",
		"COALESCE(SUM(expected_goals), 0) AS expected_goals",
		"COALESCE(SUM(expected_assists), 0) AS expected_assists",
		"COALESCE(SUM(expected_goals_conceded), 0) AS expected_goals_conceded",
		"COALESCE(SUM(yellow_cards), 0) AS yellow_cards",
		"COALESCE(SUM(red_cards), 0) AS red_cards",
		"COALESCE(SUM(defensive_contribution), 0) AS defensive_contribution",
	).
		From("player_gameweek_stats").
		Where(qb.In("player_id", intsToAny(playerIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select season totals query: %w", err)
	}
	query += " GROUP BY player_id"

	var rows []seasonTotalsRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select season totals: %w", err)
	}

	out := make([]playerstats.SeasonTotals, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.SeasonTotals{
			PlayerID:               row.PlayerID,
			Minutes:                row.Minutes,
			Goals:                  row.Goals,
			Assists:                row.Assists,
			CleanSheets:            row.CleanSheets,
			Saves:                  row.Saves,
			BPS:                    row.BPS,
			Bonus:                  row.Bonus,
			TotalPoints:            row.TotalPoints,
			ExpectedGoals:          row.ExpectedGoals,
			ExpectedAssists:        row.ExpectedAssists,
			ExpectedGoalsConceded:  row.ExpectedGoalsConceded,
			YellowCards:            row.YellowCards,
			RedCards:               row.RedCards,
			DefensiveContributions: row.DefensiveContributions,
		})
	}
	return out, nil
}
