package manager

import (
	"testing"

	"github.com/fplstack/companion/internal/domain/squad"
)

func TestClassifyChips_SplitsBySeasonHalf(t *testing.T) {
	t.Parallel()

	history := []GameweekHistory{
		{Gameweek: 4, ActiveChip: squad.ChipWildcard},
		{Gameweek: 12, ActiveChip: squad.ChipBenchBoost},
		{Gameweek: 19, ActiveChip: squad.ChipTripleCaptain},
		{Gameweek: 20, ActiveChip: squad.ChipTripleCaptain},
		{Gameweek: 25, ActiveChip: squad.ChipWildcard},
		{Gameweek: 31, ActiveChip: squad.ChipFreeHit},
	}

	used := ClassifyChips(history)

	want := map[ChipSlot]int{
		SlotWildcard1:      4,
		SlotBenchBoost1:    12,
		SlotTripleCaptain1: 19,
		SlotTripleCaptain2: 20,
		SlotWildcard2:      25,
		SlotFreeHit2:       31,
	}
	if len(used) != len(want) {
		t.Fatalf("unexpected slot count: got=%d want=%d", len(used), len(want))
	}
	for slot, gw := range want {
		if used[slot] != gw {
			t.Fatalf("slot %s: got=%d want=%d", slot, used[slot], gw)
		}
	}
}

func TestClassifyChips_FirstOccurrenceWins(t *testing.T) {
	t.Parallel()

	// Duplicate first-half wildcards should never happen, but bad data must
	// not shadow the earliest use.
	history := []GameweekHistory{
		{Gameweek: 9, ActiveChip: squad.ChipWildcard},
		{Gameweek: 3, ActiveChip: squad.ChipWildcard},
	}

	used := ClassifyChips(history)

	if used[SlotWildcard1] != 3 {
		t.Fatalf("earliest duplicate must win: got=%d want=3", used[SlotWildcard1])
	}
}

func TestClassifyChips_IgnoresChiplessRows(t *testing.T) {
	t.Parallel()

	history := []GameweekHistory{
		{Gameweek: 1, ActiveChip: squad.ChipNone},
		{Gameweek: 2, ActiveChip: squad.ChipNone},
	}
	if used := ClassifyChips(history); len(used) != 0 {
		t.Fatalf("chipless history must classify nothing, got %v", used)
	}
}

func TestChipToken(t *testing.T) {
	t.Parallel()

	cases := []struct {
		chip squad.Chip
		gw   int
		want string
	}{
		{squad.ChipWildcard, 8, "WC1"},
		{squad.ChipWildcard, 27, "WC2"},
		{squad.ChipFreeHit, 8, "FH"},
		{squad.ChipBenchBoost, 33, "BB"},
		{squad.ChipTripleCaptain, 2, "TC"},
		{squad.ChipNone, 2, ""},
	}
	for _, tc := range cases {
		if got := ChipToken(tc.chip, tc.gw); got != tc.want {
			t.Fatalf("ChipToken(%q, %d): got=%q want=%q", tc.chip, tc.gw, got, tc.want)
		}
	}
}
