package squad

import (
	"context"
	"fmt"

	"github.com/fplstack/companion/internal/domain/player"
)

const (
	SquadSize    = 15
	StartingSize = 11

	// Bench slots by pick position. Position 12 is always the substitute
	// goalkeeper; 13..15 are outfield substitutes in priority order.
	BenchGoalkeeperSlot = 12
)

type Chip string

const (
	ChipNone          Chip = ""
	ChipWildcard      Chip = "wildcard"
	ChipFreeHit       Chip = "freehit"
	ChipBenchBoost    Chip = "bboost"
	ChipTripleCaptain Chip = "3xc"
)

// Pick is one of the 15 squad slots a manager fills for a gameweek.
type Pick struct {
	PlayerID       int
	Position       int // 1..11 starters, 12..15 bench in priority order
	IsCaptain      bool
	IsViceCaptain  bool
	PlayerPosition player.Position
}

func (p Pick) IsStarter() bool {
	return p.Position >= 1 && p.Position <= StartingSize
}

// Validate checks the structural invariants of a manager-gameweek pick set:
// 15 slots, 11 starters, ordered bench, exactly one captain and one vice.
func Validate(picks []Pick) error {
	if len(picks) != SquadSize {
		return fmt.Errorf("expected %d picks, got %d", SquadSize, len(picks))
	}

	seenPositions := make(map[int]struct{}, SquadSize)
	captains, vices, starters := 0, 0, 0
	for _, p := range picks {
		if p.Position < 1 || p.Position > SquadSize {
			return fmt.Errorf("pick position out of range: %d", p.Position)
		}
		if _, dup := seenPositions[p.Position]; dup {
			return fmt.Errorf("duplicate pick position: %d", p.Position)
		}
		seenPositions[p.Position] = struct{}{}

		if !p.PlayerPosition.Valid() {
			return fmt.Errorf("player %d has invalid position", p.PlayerID)
		}
		if p.IsStarter() {
			starters++
		}
		if p.IsCaptain {
			captains++
		}
		if p.IsViceCaptain {
			vices++
		}
	}

	if starters != StartingSize {
		return fmt.Errorf("expected %d starters, got %d", StartingSize, starters)
	}
	if captains != 1 {
		return fmt.Errorf("expected exactly one captain, got %d", captains)
	}
	if vices != 1 {
		return fmt.Errorf("expected exactly one vice-captain, got %d", vices)
	}

	return nil
}

type Repository interface {
	// ListPicks returns a manager's picks for a gameweek ordered by position.
	ListPicks(ctx context.Context, managerID, gameweek int) ([]Pick, error)
}
