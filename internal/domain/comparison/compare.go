// Package comparison implements the head-to-head player view: a fixed stat
// catalogue, position-driven visibility, optional per-90 projection and a
// leader verdict per stat.
package comparison

import "github.com/fplstack/companion/internal/domain/player"

// Leader is the verdict for one stat line.
type Leader string

const (
	LeaderPlayerOne Leader = "p1"
	LeaderPlayerTwo Leader = "p2"
	LeaderTie       Leader = "tie"
)

// Stat describes one comparable line in the head-to-head table.
type Stat struct {
	Key          string
	Label        string
	HigherBetter bool
	// PerNinety marks rate stats that can be projected to a per-90 value.
	PerNinety bool

	goalkeeperOnly bool
	needsForward   bool
	expectedGoal   bool
}

// Catalogue is the stat set in display order.
func Catalogue() []Stat {
	return []Stat{
		{Key: "total_points", Label: "Points", HigherBetter: true, PerNinety: true},
		{Key: "minutes", Label: "Minutes", HigherBetter: true},
		{Key: "goals_scored", Label: "Goals", HigherBetter: true, PerNinety: true},
		{Key: "assists", Label: "Assists", HigherBetter: true, PerNinety: true},
		{Key: "expected_goals", Label: "xG", HigherBetter: true, PerNinety: true, expectedGoal: true},
		{Key: "expected_assists", Label: "xA", HigherBetter: true, PerNinety: true, expectedGoal: true},
		{Key: "clean_sheets", Label: "Clean Sheets", HigherBetter: true, needsForward: true},
		{Key: "expected_goals_conceded", Label: "xGC", HigherBetter: false, PerNinety: true, needsForward: true, expectedGoal: true},
		{Key: "defensive_contribution", Label: "DEFCON", HigherBetter: true, PerNinety: true, needsForward: true},
		{Key: "saves", Label: "Saves", HigherBetter: true, PerNinety: true, goalkeeperOnly: true},
		{Key: "bonus", Label: "Bonus", HigherBetter: true},
		{Key: "bps", Label: "BPS", HigherBetter: true},
		{Key: "yellow_cards", Label: "Yellow Cards", HigherBetter: false},
		{Key: "red_cards", Label: "Red Cards", HigherBetter: false},
		{Key: "price", Label: "Price", HigherBetter: false},
	}
}

// Entrant is one side of the comparison: the player's position, season
// minutes and a stat-key to value map.
type Entrant struct {
	Position player.Position
	Minutes  int
	Values   map[string]float64
}

// Line is the computed comparison row for one stat.
type Line struct {
	Stat    Stat
	P1Value float64
	P2Value float64
	Leader  Leader
}

// Visible reports whether a stat row is shown for the selected pair.
// Goalkeeper stats need a goalkeeper in one slot, defensive-return stats a
// forward, and expected-goal stats disappear for an all-goalkeeper pairing.
func Visible(s Stat, p1, p2 player.Position) bool {
	if s.goalkeeperOnly && p1 != player.PositionGoalkeeper && p2 != player.PositionGoalkeeper {
		return false
	}
	if s.needsForward && p1 != player.PositionForward && p2 != player.PositionForward {
		return false
	}
	if s.expectedGoal && p1 == player.PositionGoalkeeper && p2 == player.PositionGoalkeeper {
		return false
	}
	return true
}

// Value resolves an entrant's comparison value for a stat, projecting rate
// stats to per-90 when asked and the player has at least a full match of
// minutes.
func Value(s Stat, e Entrant, perNinety bool) float64 {
	v := e.Values[s.Key]
	if perNinety && s.PerNinety && e.Minutes >= 90 {
		return v * 90 / float64(e.Minutes)
	}
	return v
}

// GetLeader compares two resolved values under the stat's polarity.
func GetLeader(s Stat, v1, v2 float64) Leader {
	if v1 == v2 {
		return LeaderTie
	}
	if (v1 > v2) == s.HigherBetter {
		return LeaderPlayerOne
	}
	return LeaderPlayerTwo
}

// Compare computes all visible stat lines for a pair of entrants.
func Compare(p1, p2 Entrant, perNinety bool) []Line {
	var lines []Line
	for _, s := range Catalogue() {
		if !Visible(s, p1.Position, p2.Position) {
			continue
		}
		v1 := Value(s, p1, perNinety)
		v2 := Value(s, p2, perNinety)
		lines = append(lines, Line{
			Stat:    s,
			P1Value: v1,
			P2Value: v2,
			Leader:  GetLeader(s, v1, v2),
		})
	}
	return lines
}
