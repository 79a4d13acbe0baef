package schedule

import (
	"sort"

	"github.com/fplstack/companion/internal/domain/team"
)

const (
	ShortWindow = 4
	LongWindow  = 10

	// A team with no fixtures in the window scores the worst case.
	worstDifficulty = 5.0

	recommendationSize = 4
)

// TeamRun is a team's average opponent difficulty over a window.
type TeamRun struct {
	TeamID     int
	Average    float64
	SampleSize int
}

// Recommendation holds the four buy/sell lists for one difficulty facet.
type Recommendation struct {
	EasiestShort []TeamRun
	EasiestLong  []TeamRun
	HardestShort []TeamRun
	HardestLong  []TeamRun
}

// Recommend ranks every team by mean opponent difficulty over the short and
// long windows from the start of the matrix. Blank gameweeks contribute no
// samples; difficulty facets without data contribute none either. Ties break
// by team id ascending, so the output is totally ordered.
func Recommend(m *Matrix, facet team.Facet) Recommendation {
	short := runs(m, facet, ShortWindow)
	long := runs(m, facet, LongWindow)

	return Recommendation{
		EasiestShort: top(short, false),
		EasiestLong:  top(long, false),
		HardestShort: top(short, true),
		HardestLong:  top(long, true),
	}
}

func runs(m *Matrix, facet team.Facet, window int) []TeamRun {
	gameweeks := m.Gameweeks()
	if len(gameweeks) > window {
		gameweeks = gameweeks[:window]
	}

	out := make([]TeamRun, 0, len(m.teamIDs))
	for _, teamID := range m.TeamIDs() {
		sum, count := 0, 0
		for _, gw := range gameweeks {
			for _, opp := range m.Opponents(teamID, gw) {
				if d := facetOf(opp, facet); d != nil {
					sum += *d
					count++
				}
			}
		}

		run := TeamRun{TeamID: teamID, Average: worstDifficulty}
		if count > 0 {
			run.Average = float64(sum) / float64(count)
			run.SampleSize = count
		}
		out = append(out, run)
	}

	return out
}

func facetOf(opp Opponent, facet team.Facet) *int {
	switch facet {
	case team.FacetAttack:
		return opp.AttackDifficulty
	case team.FacetDefence:
		return opp.DefenceDifficulty
	default:
		return opp.Difficulty
	}
}

func top(all []TeamRun, hardest bool) []TeamRun {
	ranked := append([]TeamRun(nil), all...)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Average != ranked[j].Average {
			if hardest {
				return ranked[i].Average > ranked[j].Average
			}
			return ranked[i].Average < ranked[j].Average
		}
		return ranked[i].TeamID < ranked[j].TeamID
	})

	if len(ranked) > recommendationSize {
		ranked = ranked[:recommendationSize]
	}
	return ranked
}
