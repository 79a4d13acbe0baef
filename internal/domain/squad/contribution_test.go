package squad

import (
	"testing"

	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
)

// fifteen builds a 4-4-2 squad: positions 1..11 starters, 12..15 bench
// [GK, DEF, MID, FWD]. Player ids equal pick positions.
func fifteen() []Pick {
	layout := []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender, player.PositionDefender, player.PositionDefender, player.PositionDefender,
		player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
		player.PositionForward, player.PositionForward,
		player.PositionGoalkeeper, player.PositionDefender, player.PositionMidfielder, player.PositionForward,
	}

	picks := make([]Pick, 0, SquadSize)
	for i, pos := range layout {
		picks = append(picks, Pick{
			PlayerID:       i + 1,
			Position:       i + 1,
			PlayerPosition: pos,
		})
	}
	picks[9].IsCaptain = true      // starting forward
	picks[5].IsViceCaptain = true // starting midfielder
	return picks
}

func settledStats(picks []Pick, points map[int]int) map[int]playerstats.GameweekStats {
	out := make(map[int]playerstats.GameweekStats, len(picks))
	for _, p := range picks {
		minutes := 90
		if points[p.PlayerID] == 0 {
			minutes = 0
		}
		out[p.PlayerID] = playerstats.GameweekStats{
			PlayerID:      p.PlayerID,
			Minutes:       minutes,
			TotalPoints:   points[p.PlayerID],
			BonusStatus:   playerstats.BonusConfirmed,
			MatchFinished: true,
		}
	}
	return out
}

func contributionByID(t *testing.T, result Result, playerID int) Contribution {
	t.Helper()
	for _, c := range result.Contributions {
		if c.PlayerID == playerID {
			return c
		}
	}
	t.Fatalf("player %d not in contributions", playerID)
	return Contribution{}
}

func TestResolve_CaptainDoubles(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{}
	for i := 1; i <= 11; i++ {
		points[i] = 2
	}
	points[10] = 10 // captain

	result := Resolve(picks, settledStats(picks, points), ChipNone)

	captain := contributionByID(t, result, 10)
	if captain.Multiplier != 2 || captain.ContributedPoints != 20 {
		t.Fatalf("captain must double: multiplier=%d points=%d", captain.Multiplier, captain.ContributedPoints)
	}
	if result.RawPoints != 10*2+20 {
		t.Fatalf("unexpected raw points: %d", result.RawPoints)
	}
}

func TestResolve_TripleCaptainChip(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{10: 10}
	for i := 1; i <= 11; i++ {
		if points[i] == 0 {
			points[i] = 1
		}
	}

	result := Resolve(picks, settledStats(picks, points), ChipTripleCaptain)
	captain := contributionByID(t, result, 10)
	if captain.Multiplier != 3 || captain.ContributedPoints != 30 {
		t.Fatalf("triple captain must treble: multiplier=%d points=%d", captain.Multiplier, captain.ContributedPoints)
	}
}

func TestResolve_ProvisionalBonusInDisplayPoints(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	stats := settledStats(picks, map[int]int{1: 6})
	row := stats[1]
	row.ProvisionalBonus = 3
	row.BonusStatus = playerstats.BonusProvisional
	stats[1] = row

	result := Resolve(picks, stats, ChipNone)
	keeper := contributionByID(t, result, 1)
	if keeper.DisplayPoints != 9 {
		t.Fatalf("provisional bonus must be added to display points, got %d", keeper.DisplayPoints)
	}
}

func TestResolve_AutoSubOutfield(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{}
	for i := 1; i <= 15; i++ {
		points[i] = 1
	}
	points[2] = 0  // starting DEF did not play
	points[13] = 4 // bench DEF played

	result := Resolve(picks, settledStats(picks, points), ChipNone)

	out := contributionByID(t, result, 2)
	in := contributionByID(t, result, 13)
	if !out.WasAutoSubbedOut || out.ContributedPoints != 0 {
		t.Fatalf("DNP defender must be subbed out: %+v", out)
	}
	if !in.WasAutoSubbedIn || in.ContributedPoints != 4 {
		t.Fatalf("bench defender must come in: %+v", in)
	}
	if out.WasAutoSubbedIn || in.WasAutoSubbedOut {
		t.Fatal("sub flags must be mutually exclusive per pick")
	}
}

func TestResolve_AutoSubRespectsFormation(t *testing.T) {
	t.Parallel()

	// 3-5-2: swapping the lone third defender out for a midfielder would
	// leave only 2 DEF, so the bench midfielder must be skipped in favour of
	// the bench defender further down the priority order.
	layout := []player.Position{
		player.PositionGoalkeeper,
		player.PositionDefender, player.PositionDefender, player.PositionDefender,
		player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder, player.PositionMidfielder,
		player.PositionForward, player.PositionForward,
		player.PositionGoalkeeper, player.PositionMidfielder, player.PositionDefender, player.PositionForward,
	}
	picks := make([]Pick, 0, SquadSize)
	for i, pos := range layout {
		picks = append(picks, Pick{PlayerID: i + 1, Position: i + 1, PlayerPosition: pos})
	}
	picks[0].IsCaptain = true
	picks[1].IsViceCaptain = true

	points := map[int]int{}
	for i := 1; i <= 15; i++ {
		points[i] = 1
	}
	points[2] = 0 // DNP defender

	result := Resolve(picks, settledStats(picks, points), ChipNone)

	if c := contributionByID(t, result, 13); c.WasAutoSubbedIn {
		t.Fatal("bench midfielder would break the 3-DEF minimum")
	}
	if c := contributionByID(t, result, 14); !c.WasAutoSubbedIn {
		t.Fatal("bench defender must be the realized substitution")
	}

	def := 0
	for _, c := range result.Contributions {
		counted := c.IsStarter() && !c.WasAutoSubbedOut || c.WasAutoSubbedIn
		if counted && c.PlayerPosition == player.PositionDefender {
			def++
		}
	}
	if def < 3 {
		t.Fatalf("resulting XI must keep at least 3 defenders, got %d", def)
	}
}

func TestResolve_GoalkeeperOnlySwapsWithBenchKeeper(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{}
	for i := 1; i <= 15; i++ {
		points[i] = 1
	}
	points[1] = 0  // starting GK DNP
	points[12] = 0 // bench GK DNP too

	result := Resolve(picks, settledStats(picks, points), ChipNone)

	if c := contributionByID(t, result, 1); c.WasAutoSubbedOut {
		t.Fatal("GK must not be replaced when the bench keeper did not play")
	}
	for _, id := range []int{13, 14, 15} {
		if c := contributionByID(t, result, id); c.WasAutoSubbedIn {
			t.Fatalf("outfield bench player %d must never replace a goalkeeper", id)
		}
	}
}

func TestResolve_ViceInheritsArmband(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{}
	for i := 1; i <= 15; i++ {
		points[i] = 1
	}
	points[10] = 0 // captain DNP
	points[6] = 7  // vice played

	result := Resolve(picks, settledStats(picks, points), ChipNone)

	if !result.ViceActing {
		t.Fatal("vice must inherit the armband when the captain did not play")
	}
	vice := contributionByID(t, result, 6)
	if vice.Multiplier != 2 || vice.ContributedPoints != 14 {
		t.Fatalf("vice must carry the captain multiplier: %+v", vice)
	}
}

func TestResolve_NoSubsWhileLive(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	stats := settledStats(picks, map[int]int{2: 0, 13: 4})
	row := stats[9]
	row.MatchFinished = false
	row.Minutes = 55
	stats[9] = row

	result := Resolve(picks, stats, ChipNone)
	if result.SubsApplied {
		t.Fatal("auto-subs must wait until every fixture has settled")
	}
	if c := contributionByID(t, result, 13); c.ContributedPoints != 0 {
		t.Fatal("bench must not contribute while the gameweek is live")
	}
}

func TestResolve_BenchBoostCountsBench(t *testing.T) {
	t.Parallel()

	picks := fifteen()
	points := map[int]int{}
	for i := 1; i <= 15; i++ {
		points[i] = 2
	}

	result := Resolve(picks, settledStats(picks, points), ChipBenchBoost)
	if result.RawPoints != 2*14+2*2 {
		t.Fatalf("bench boost must count all 15, got %d", result.RawPoints)
	}
	if result.SubsApplied {
		t.Fatal("bench boost leaves no bench to substitute from")
	}
}
