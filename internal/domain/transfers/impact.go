package transfers

import (
	"sort"

	"github.com/fplstack/companion/internal/domain/squad"
)

// Impact is one derived transfer pairing with its point swing for the
// gameweek. A zero player id marks a missing counterpart, which happens when
// the squad size changed asymmetrically between gameweeks.
type Impact struct {
	PlayerOutID int
	PlayerInID  int
	PointImpact int
}

// Derive diffs two consecutive gameweeks of picks into transfer pairs. Players
// leaving the squad are ordered by their previous slot, players arriving by
// their current slot, and the two lists are zipped positionally. When one side
// is shorter its last element repeats, so every surplus arrival is still
// attributed to an outgoing player.
//
// This is the fallback path for when the canonical transfer log has no rows
// for the gameweek. displayPoints maps player id to that gameweek's display
// points; a missing entry counts as zero.
func Derive(previous, current []squad.Pick, displayPoints map[int]int) []Impact {
	outIDs := diff(previous, current)
	inIDs := diff(current, previous)

	// An unchanged squad still derives one pair; both sides pad to zero ids.
	n := max(len(outIDs), len(inIDs), 1)
	impacts := make([]Impact, 0, n)
	for i := 0; i < n; i++ {
		out := padded(outIDs, i)
		in := padded(inIDs, i)
		impacts = append(impacts, Impact{
			PlayerOutID: out,
			PlayerInID:  in,
			PointImpact: displayPoints[in] - displayPoints[out],
		})
	}

	return impacts
}

// diff returns ids present in a but not in b, ordered by slot in a.
func diff(a, b []squad.Pick) []int {
	inB := make(map[int]struct{}, len(b))
	for _, p := range b {
		inB[p.PlayerID] = struct{}{}
	}

	picks := append([]squad.Pick(nil), a...)
	sort.Slice(picks, func(i, j int) bool { return picks[i].Position < picks[j].Position })

	var out []int
	for _, p := range picks {
		if _, ok := inB[p.PlayerID]; !ok {
			out = append(out, p.PlayerID)
		}
	}
	return out
}

func padded(ids []int, i int) int {
	if len(ids) == 0 {
		return 0
	}
	if i >= len(ids) {
		return ids[len(ids)-1]
	}
	return ids[i]
}
