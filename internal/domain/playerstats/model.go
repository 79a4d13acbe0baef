package playerstats

import "context"

type BonusStatus string

const (
	BonusProvisional BonusStatus = "provisional"
	BonusConfirmed   BonusStatus = "confirmed"
)

// GameweekStats is one (player, fixture) live-scoring row.
type GameweekStats struct {
	PlayerID  int
	FixtureID int
	Gameweek  int

	Minutes     int
	Goals       int
	Assists     int
	CleanSheets int
	Saves       int

	BPS              int
	Bonus            int
	ProvisionalBonus int
	BonusStatus      BonusStatus

	TotalPoints int

	ExpectedGoals         float64
	ExpectedAssists       float64
	ExpectedGoalsConceded float64

	YellowCards int
	RedCards    int

	MatchPlayed              bool
	MatchFinished            bool
	MatchFinishedProvisional bool
	DefensiveContributions   int
}

// DisplayPoints is the number the dashboard shows while bonus is still
// provisional: confirmed rows already carry bonus inside TotalPoints.
func (s GameweekStats) DisplayPoints() int {
	if s.BonusStatus == BonusConfirmed {
		return s.TotalPoints
	}
	return s.TotalPoints + s.ProvisionalBonus
}

// DidNotPlay reports whether the player's match reached completion with zero
// minutes logged.
func (s GameweekStats) DidNotPlay() bool {
	return (s.MatchFinished || s.MatchFinishedProvisional) && s.Minutes == 0
}

// MatchSettled reports whether the row's fixture is past the point where the
// score can still move.
func (s GameweekStats) MatchSettled() bool {
	return s.MatchFinished || s.MatchFinishedProvisional
}

// SeasonTotals is a player's aggregated season line, used by the comparison
// view.
type SeasonTotals struct {
	PlayerID int

	Minutes     int
	Goals       int
	Assists     int
	CleanSheets int
	Saves       int

	BPS         int
	Bonus       int
	TotalPoints int

	ExpectedGoals         float64
	ExpectedAssists       float64
	ExpectedGoalsConceded float64

	YellowCards            int
	RedCards               int
	DefensiveContributions int
}

type Repository interface {
	ListByPlayersAndGameweek(ctx context.Context, playerIDs []int, gameweek int) ([]GameweekStats, error)
	ListSeasonTotals(ctx context.Context, playerIDs []int) ([]SeasonTotals, error)
}
