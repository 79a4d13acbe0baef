package squad

import (
	"sort"

	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
)

// Contribution is one pick's share of the manager's gameweek total.
type Contribution struct {
	Pick

	DisplayPoints     int
	Multiplier        int
	ContributedPoints int
	DidNotPlay        bool
	WasAutoSubbedOut  bool
	WasAutoSubbedIn   bool
}

// Result carries the resolved contributions for all 15 picks in position
// order plus the derived flags the reconciler needs.
type Result struct {
	Contributions []Contribution
	// RawPoints is the sum of contributed points before the transfer hit.
	RawPoints int
	// ViceActing reports that the captaincy fell through to the vice.
	ViceActing bool
	// SubsApplied reports that auto-substitutions were resolved; false while
	// any of the squad's fixtures can still change.
	SubsApplied bool
}

// Resolve computes every pick's contribution from live stats.
//
// Auto-substitutions and the captain-to-vice fallthrough are applied only
// when every fixture touching the squad has settled (FINAL or PROVISIONAL);
// until then starters score as picked and the bench scores nothing. With the
// bench boost chip the bench contributes directly and no substitutions are
// made.
func Resolve(picks []Pick, stats map[int]playerstats.GameweekStats, chip Chip) Result {
	ordered := make([]Pick, len(picks))
	copy(ordered, picks)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Position < ordered[j].Position })

	captainMultiplier := 2
	if chip == ChipTripleCaptain {
		captainMultiplier = 3
	}

	contribs := make([]Contribution, len(ordered))
	allSettled := true
	for i, p := range ordered {
		row, ok := stats[p.PlayerID]
		c := Contribution{Pick: p, Multiplier: 1}
		if ok {
			c.DisplayPoints = row.DisplayPoints()
			c.DidNotPlay = row.DidNotPlay()
			if !row.MatchSettled() {
				allSettled = false
			}
		} else {
			// No stats row: blank gameweek for the player, nothing can change.
			c.DidNotPlay = true
		}
		contribs[i] = c
	}

	result := Result{SubsApplied: allSettled && chip != ChipBenchBoost}

	if result.SubsApplied {
		applyAutoSubs(contribs)
	}
	if allSettled {
		// The armband falls through even under bench boost, where no bench
		// swaps happen but the captain can still blank.
		result.ViceActing = promoteVice(contribs)
	}

	for i := range contribs {
		c := &contribs[i]
		counted := c.IsStarter() && !c.WasAutoSubbedOut || c.WasAutoSubbedIn || chip == ChipBenchBoost
		if !counted {
			continue
		}
		switch {
		case c.IsCaptain && !(allSettled && c.DidNotPlay):
			c.Multiplier = captainMultiplier
		case c.IsViceCaptain && result.ViceActing:
			c.Multiplier = captainMultiplier
		}
		c.ContributedPoints = c.DisplayPoints * c.Multiplier
		result.RawPoints += c.ContributedPoints
	}

	result.Contributions = contribs
	return result
}

// applyAutoSubs realizes the bench substitutions for DNP starters.
//
// DNP starters are processed in starter position ascending (a deterministic
// order; the game itself does not document one). The goalkeeper may only be
// replaced by the position-12 bench keeper; outfielders take the first
// playing bench outfielder (13..15) that keeps the formation legal:
// exactly 1 GK, at least 3 DEF, at least 1 FWD.
func applyAutoSubs(contribs []Contribution) {
	counts := map[player.Position]int{}
	for i := range contribs {
		if contribs[i].IsStarter() {
			counts[contribs[i].PlayerPosition]++
		}
	}

	benchUsed := map[int]bool{}
	for i := range contribs {
		starter := &contribs[i]
		if !starter.IsStarter() || !starter.DidNotPlay {
			continue
		}

		for j := range contribs {
			bench := &contribs[j]
			if bench.IsStarter() || benchUsed[bench.Position] || bench.DidNotPlay {
				continue
			}

			if starter.PlayerPosition == player.PositionGoalkeeper {
				if bench.Position != BenchGoalkeeperSlot {
					continue
				}
			} else {
				if bench.Position == BenchGoalkeeperSlot {
					continue
				}
				if !formationLegal(counts, starter.PlayerPosition, bench.PlayerPosition) {
					continue
				}
			}

			counts[starter.PlayerPosition]--
			counts[bench.PlayerPosition]++
			benchUsed[bench.Position] = true
			starter.WasAutoSubbedOut = true
			bench.WasAutoSubbedIn = true
			break
		}
	}
}

func formationLegal(counts map[player.Position]int, out, in player.Position) bool {
	def := counts[player.PositionDefender]
	fwd := counts[player.PositionForward]
	if out == player.PositionDefender {
		def--
	}
	if out == player.PositionForward {
		fwd--
	}
	if in == player.PositionDefender {
		def++
	}
	if in == player.PositionForward {
		fwd++
	}
	return def >= 3 && fwd >= 1
}

// promoteVice reports whether the vice inherits the armband: the captain did
// not play and the vice did.
func promoteVice(contribs []Contribution) bool {
	captainDNP, vicePlayed := false, false
	for i := range contribs {
		if contribs[i].IsCaptain {
			captainDNP = contribs[i].DidNotPlay
		}
		if contribs[i].IsViceCaptain {
			vicePlayed = !contribs[i].DidNotPlay
		}
	}
	return captainDNP && vicePlayed
}
