package postgres

import (
	"database/sql"

	"github.com/fplstack/companion/internal/domain/standings"
)

type standingsRowModel struct {
	ManagerID        int           `db:"manager_id"`
	ManagerName      string        `db:"manager_name"`
	TeamName         string        `db:"team_name"`
	Rank             int           `db:"rank"`
	RankChange       sql.NullInt64 `db:"rank_change"`
	LeagueRankChange int           `db:"league_rank_change"`
	TotalPoints      int           `db:"total_points"`
	GameweekPoints   int           `db:"gameweek_points"`
	PlayersLeft      int           `db:"players_left"`
	LivePoints       int           `db:"live_points"`
	CaptainName      string        `db:"captain_name"`
	ViceName         string        `db:"vice_name"`
	ActiveChip       string        `db:"active_chip"`
}

func (m standingsRowModel) toDomain() standings.Row {
	return standings.Row{
		ManagerID:        m.ManagerID,
		ManagerName:      m.ManagerName,
		TeamName:         m.TeamName,
		Rank:             m.Rank,
		RankChange:       nullIntToPtr(m.RankChange),
		LeagueRankChange: m.LeagueRankChange,
		TotalPoints:      m.TotalPoints,
		GameweekPoints:   m.GameweekPoints,
		PlayersLeft:      m.PlayersLeft,
		LivePoints:       m.LivePoints,
		CaptainName:      m.CaptainName,
		ViceName:         m.ViceName,
		ActiveChip:       m.ActiveChip,
	}
}
