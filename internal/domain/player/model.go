package player

import "context"

// Position is the numeric element type the game uses.
type Position int

const (
	PositionGoalkeeper Position = 1
	PositionDefender   Position = 2
	PositionMidfielder Position = 3
	PositionForward    Position = 4
)

func (p Position) String() string {
	switch p {
	case PositionGoalkeeper:
		return "GK"
	case PositionDefender:
		return "DEF"
	case PositionMidfielder:
		return "MID"
	case PositionForward:
		return "FWD"
	}
	return "UNKNOWN"
}

func (p Position) Valid() bool {
	return p >= PositionGoalkeeper && p <= PositionForward
}

// Player is one selectable athlete. Prices are tenths of a million.
type Player struct {
	ID          int
	WebName     string
	TeamID      int
	Position    Position
	PriceTenths int
}

type Repository interface {
	ListByIDs(ctx context.Context, ids []int) ([]Player, error)
}
