package manager

import (
	"sort"

	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/squad"
)

// ChipSlot identifies one of the eight season chip uses: each chip has a
// first-half and a second-half slot.
type ChipSlot string

const (
	SlotWildcard1      ChipSlot = "WC1"
	SlotWildcard2      ChipSlot = "WC2"
	SlotFreeHit1       ChipSlot = "FH1"
	SlotFreeHit2       ChipSlot = "FH2"
	SlotBenchBoost1    ChipSlot = "BB1"
	SlotBenchBoost2    ChipSlot = "BB2"
	SlotTripleCaptain1 ChipSlot = "TC1"
	SlotTripleCaptain2 ChipSlot = "TC2"
)

// ChipSlotOf maps a played chip to its season slot based on which half the
// gameweek falls in. False for no chip.
func ChipSlotOf(chip squad.Chip, gw int) (ChipSlot, bool) {
	first := gameweek.HalfOf(gw) == gameweek.FirstHalf
	switch chip {
	case squad.ChipWildcard:
		return pick(first, SlotWildcard1, SlotWildcard2), true
	case squad.ChipFreeHit:
		return pick(first, SlotFreeHit1, SlotFreeHit2), true
	case squad.ChipBenchBoost:
		return pick(first, SlotBenchBoost1, SlotBenchBoost2), true
	case squad.ChipTripleCaptain:
		return pick(first, SlotTripleCaptain1, SlotTripleCaptain2), true
	default:
		return "", false
	}
}

func pick(first bool, a, b ChipSlot) ChipSlot {
	if first {
		return a
	}
	return b
}

// ClassifyChips maps a manager's history to the gameweek each chip slot was
// used in. At most one use per slot; when the data contains duplicates the
// earliest occurrence wins.
func ClassifyChips(history []GameweekHistory) map[ChipSlot]int {
	rows := append([]GameweekHistory(nil), history...)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Gameweek < rows[j].Gameweek })

	used := make(map[ChipSlot]int)
	for _, row := range rows {
		slot, ok := ChipSlotOf(row.ActiveChip, row.Gameweek)
		if !ok {
			continue
		}
		if _, taken := used[slot]; taken {
			continue
		}
		used[slot] = row.Gameweek
	}
	return used
}

// ChipToken is the short label shown beside a captain cell. Wildcards carry
// their half, the other chips a bare token.
func ChipToken(chip squad.Chip, gw int) string {
	switch chip {
	case squad.ChipWildcard:
		if gameweek.HalfOf(gw) == gameweek.FirstHalf {
			return "WC1"
		}
		return "WC2"
	case squad.ChipFreeHit:
		return "FH"
	case squad.ChipBenchBoost:
		return "BB"
	case squad.ChipTripleCaptain:
		return "TC"
	default:
		return ""
	}
}
