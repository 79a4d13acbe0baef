package standings

import "context"

// Row is one manager's line in a mini-league table. Stored rows come from the
// standings materialized view; the projector overlays live totals on top.
type Row struct {
	ManagerID   int
	ManagerName string
	TeamName    string

	// Rank and RankChange are the last stored calculations. RankChange is nil
	// when the view has not computed one, in which case LeagueRankChange from
	// the upstream league payload is the fallback.
	Rank             int
	RankChange       *int
	LeagueRankChange int

	TotalPoints    int
	GameweekPoints int

	// PlayersLeft counts squad members whose fixture has not settled.
	PlayersLeft int
	LivePoints  int

	CaptainName string
	ViceName    string
	ActiveChip  string
}

type Repository interface {
	ListByLeagueAndGameweek(ctx context.Context, leagueID, gameweek int) ([]Row, error)
}
