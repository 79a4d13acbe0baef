package league

import "context"

// MiniLeague is a private ranking of selected managers.
type MiniLeague struct {
	ID     int
	Name   string
	Closed bool
}

type Repository interface {
	GetByID(ctx context.Context, leagueID int) (MiniLeague, bool, error)
}
