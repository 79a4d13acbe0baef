package postgres

import "github.com/fplstack/companion/internal/domain/playerstats"

type playerStatsRowModel struct {
	PlayerID  int `db:"player_id"`
	FixtureID int `db:"fixture_id"`
	Gameweek  int `db:"gameweek"`

	Minutes     int `db:"minutes"`
	Goals       int `db:"goals_scored"`
	Assists     int `db:"assists"`
	CleanSheets int `db:"clean_sheets"`
	Saves       int `db:"saves"`

	BPS              int    `db:"bps"`
	Bonus            int    `db:"bonus"`
	ProvisionalBonus int    `db:"provisional_bonus"`
	BonusStatus      string `db:"bonus_status"`

	TotalPoints int `db:"total_points"`

	ExpectedGoals         float64 `db:"expected_goals"`
	ExpectedAssists       float64 `db:"expected_assists"`
	ExpectedGoalsConceded float64 `db:"expected_goals_conceded"`

	YellowCards int `db:"yellow_cards"`
	RedCards    int `db:"red_cards"`

	MatchPlayed              bool `db:"match_played"`
	MatchFinished            bool `db:"match_finished"`
	MatchFinishedProvisional bool `db:"match_finished_provisional"`
	DefensiveContributions   int  `db:"defensive_contribution"`
}

func (m playerStatsRowModel) toDomain() playerstats.GameweekStats {
	return playerstats.GameweekStats{
		PlayerID:                 m.PlayerID,
		FixtureID:                m.FixtureID,
		Gameweek:                 m.Gameweek,
		Minutes:                  m.Minutes,
		Goals:                    m.Goals,
		Assists:                  m.Assists,
		CleanSheets:              m.CleanSheets,
		Saves:                    m.Saves,
		BPS:                      m.BPS,
		Bonus:                    m.Bonus,
		ProvisionalBonus:         m.ProvisionalBonus,
		BonusStatus:              playerstats.BonusStatus(m.BonusStatus),
		TotalPoints:              m.TotalPoints,
		ExpectedGoals:            m.ExpectedGoals,
		ExpectedAssists:          m.ExpectedAssists,
		ExpectedGoalsConceded:    m.ExpectedGoalsConceded,
		YellowCards:              m.YellowCards,
		RedCards:                 m.RedCards,
		MatchPlayed:              m.MatchPlayed,
		MatchFinished:            m.MatchFinished,
		MatchFinishedProvisional: m.MatchFinishedProvisional,
		DefensiveContributions:   m.DefensiveContributions,
	}
}

type seasonTotalsRowModel struct {
	PlayerID int `db:"player_id"`

	Minutes     int `db:"minutes"`
	Goals       int `db:"goals_scored"`
	Assists     int `db:"assists"`
	CleanSheets int `db:"clean_sheets"`
	Saves       int `db:"saves"`

	BPS         int `db:"bps"`
	Bonus       int `db:"bonus"`
	TotalPoints int `db:"total_points"`

	ExpectedGoals         float64 `db:"expected_goals"`
	ExpectedAssists       float64 `db:"expected_assists"`
	ExpectedGoalsConceded float64 `db:"expected_goals_conceded"`

	YellowCards            int `db:"yellow_cards"`
	RedCards               int `db:"red_cards"`
	DefensiveContributions int `db:"defensive_contribution"`
}
