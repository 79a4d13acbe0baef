package manager

import (
	"context"

	"github.com/fplstack/companion/internal/domain/squad"
)

// Manager is an FPL entry inside a mini-league.
type Manager struct {
	ID         int
	FirstName  string
	LastName   string
	TeamName   string
	LeagueID   int
	LeagueRank int
}

// GameweekHistory is the recorded outcome of one manager gameweek.
type GameweekHistory struct {
	ManagerID      int
	Gameweek       int
	GameweekPoints int
	TotalPoints    int
	GameweekRank   int
	OverallRank    int
	BankTenths     int
	ValueTenths    int
	TransfersMade  int
	TransferCost   int
	PointsOnBench  int
	ActiveChip     squad.Chip
}

type Repository interface {
	GetByID(ctx context.Context, managerID int) (Manager, bool, error)
	ListByLeague(ctx context.Context, leagueID int) ([]Manager, error)
	ListHistory(ctx context.Context, managerID int) ([]GameweekHistory, error)
	GetHistoryRow(ctx context.Context, managerID, gameweek int) (GameweekHistory, bool, error)
}
