package schedule

import (
	"sort"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/team"
)

// Opponent is one fixture cell from a row team's perspective.
type Opponent struct {
	TeamID    int
	ShortName string
	FullName  string
	// IsHome is the row team's venue, not the opponent's.
	IsHome bool

	// Difficulty facets come from the opponent's venue-conditioned
	// categories; nil when the underlying strength facet is unavailable.
	Difficulty        *int
	AttackDifficulty  *int
	DefenceDifficulty *int
}

// Matrix maps (team, gameweek) to that team's opponents for the window it
// was built over. Zero opponents is a blank, two or more a double gameweek.
type Matrix struct {
	teamIDs   []int
	gameweeks []int
	slots     map[int]int
	cells     map[int]map[int][]Opponent
}

// Build constructs the matrix from a contiguous fixture window and the
// normalized team set. Both directions of every fixture are emitted: the home
// team sees the away side and vice versa.
func Build(fixtures []fixture.Fixture, teams []team.Normalized, overrides team.Overrides, custom bool) *Matrix {
	byID := make(map[int]team.Normalized, len(teams))
	teamIDs := make([]int, 0, len(teams))
	for _, t := range teams {
		byID[t.ID] = t
		teamIDs = append(teamIDs, t.ID)
	}

	gwSet := make(map[int]struct{})
	cells := make(map[int]map[int][]Opponent, len(teams))
	for _, f := range fixtures {
		home, homeKnown := byID[f.HomeTeamID]
		away, awayKnown := byID[f.AwayTeamID]
		if !homeKnown || !awayKnown {
			continue
		}
		gwSet[f.Gameweek] = struct{}{}

		appendCell(cells, f.HomeTeamID, f.Gameweek, opponentFor(away, true, overrides, custom))
		appendCell(cells, f.AwayTeamID, f.Gameweek, opponentFor(home, false, overrides, custom))
	}

	gameweeks := make([]int, 0, len(gwSet))
	for gw := range gwSet {
		gameweeks = append(gameweeks, gw)
	}
	sort.Ints(gameweeks)

	slots := make(map[int]int, len(gameweeks))
	for _, gw := range gameweeks {
		most := 1
		for _, id := range teamIDs {
			if n := len(cells[id][gw]); n > most {
				most = n
			}
		}
		slots[gw] = most
	}

	return &Matrix{
		teamIDs:   teamIDs,
		gameweeks: gameweeks,
		slots:     slots,
		cells:     cells,
	}
}

// opponentFor renders the opposing side of a fixture for a row team playing
// at rowHome. The opponent plays at the other venue, which conditions every
// difficulty facet.
func opponentFor(opponent team.Normalized, rowHome bool, overrides team.Overrides, custom bool) Opponent {
	opponentHome := !rowHome
	return Opponent{
		TeamID:            opponent.ID,
		ShortName:         opponent.ShortName,
		FullName:          opponent.FullName,
		IsHome:            rowHome,
		Difficulty:        opponent.Category(team.FacetOverall, opponentHome, overrides, custom),
		AttackDifficulty:  opponent.Category(team.FacetAttack, opponentHome, overrides, custom),
		DefenceDifficulty: opponent.Category(team.FacetDefence, opponentHome, overrides, custom),
	}
}

func appendCell(cells map[int]map[int][]Opponent, teamID, gw int, opp Opponent) {
	if cells[teamID] == nil {
		cells[teamID] = make(map[int][]Opponent)
	}
	cells[teamID][gw] = append(cells[teamID][gw], opp)
}

// TeamIDs returns the row order, stable across calls.
func (m *Matrix) TeamIDs() []int {
	return append([]int(nil), m.teamIDs...)
}

// Gameweeks returns the column order, ascending.
func (m *Matrix) Gameweeks() []int {
	return append([]int(nil), m.gameweeks...)
}

// SlotsPerGw is the widest fixture count any team has in the gameweek;
// always at least 1, above 1 during a double gameweek.
func (m *Matrix) SlotsPerGw(gw int) int {
	if n, ok := m.slots[gw]; ok {
		return n
	}
	return 1
}

// Opponents returns a team's fixtures in a gameweek: empty for a blank, one
// for a standard week, two or more for a double.
func (m *Matrix) Opponents(teamID, gw int) []Opponent {
	return m.cells[teamID][gw]
}

// Opponent returns the first fixture of the cell, false on a blank.
func (m *Matrix) Opponent(teamID, gw int) (Opponent, bool) {
	cell := m.cells[teamID][gw]
	if len(cell) == 0 {
		return Opponent{}, false
	}
	return cell[0], true
}
