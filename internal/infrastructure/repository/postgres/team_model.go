package postgres

import "database/sql"

type teamStrengthRowModel struct {
	ID        int    `db:"id"`
	ShortName string `db:"short_name"`
	FullName  string `db:"name"`
	Strength  int    `db:"strength"`

	StrengthOverallHome sql.NullInt64 `db:"strength_overall_home"`
	StrengthOverallAway sql.NullInt64 `db:"strength_overall_away"`
	StrengthAttackHome  sql.NullInt64 `db:"strength_attack_home"`
	StrengthAttackAway  sql.NullInt64 `db:"strength_attack_away"`
	StrengthDefenceHome sql.NullInt64 `db:"strength_defence_home"`
	StrengthDefenceAway sql.NullInt64 `db:"strength_defence_away"`
}

type teamReducedRowModel struct {
	ID        int    `db:"id"`
	ShortName string `db:"short_name"`
	FullName  string `db:"name"`
	Strength  int    `db:"strength"`
}
