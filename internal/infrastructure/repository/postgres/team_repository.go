package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/team"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

var teamStrengthColumns = []string{
	"id", "short_name", "name", "strength",
	"strength_overall_home", "strength_overall_away",
	"strength_attack_home", "strength_attack_away",
	"strength_defence_home", "strength_defence_away",
}

// TeamRepository reads the calculated strength view. When the view is missing
// the strength columns it falls back to a reduced query and leaves the raw
// facets nil, so normalization degrades instead of failing.
type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select(teamStrengthColumns...).
		From("v_team_calculated_strength").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams query: %w", err)
	}

	var rows []teamStrengthRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		if isUndefinedColumn(err) {
			return r.listReduced(ctx)
		}
		return nil, fmt.Errorf("select teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:                  row.ID,
			ShortName:           row.ShortName,
			FullName:            row.FullName,
			Strength:            row.Strength,
			StrengthOverallHome: nullIntToPtr(row.StrengthOverallHome),
			StrengthOverallAway: nullIntToPtr(row.StrengthOverallAway),
			StrengthAttackHome:  nullIntToPtr(row.StrengthAttackHome),
			StrengthAttackAway:  nullIntToPtr(row.StrengthAttackAway),
			StrengthDefenceHome: nullIntToPtr(row.StrengthDefenceHome),
			StrengthDefenceAway: nullIntToPtr(row.StrengthDefenceAway),
		})
	}

	return out, nil
}

func (r *TeamRepository) listReduced(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("id", "short_name", "name", "strength").
		From("teams").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build reduced select teams query: %w", err)
	}

	var rows []teamReducedRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams reduced: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:        row.ID,
			ShortName: row.ShortName,
			FullName:  row.FullName,
			Strength:  row.Strength,
		})
	}

	return out, nil
}
