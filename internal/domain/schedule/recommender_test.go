package schedule

import (
	"testing"

	"github.com/fplstack/companion/internal/domain/team"
)

func matrixFromRuns(runs map[int][]int) *Matrix {
	m := &Matrix{
		slots: map[int]int{},
		cells: map[int]map[int][]Opponent{},
	}
	maxLen := 0
	for teamID, difficulties := range runs {
		m.teamIDs = append(m.teamIDs, teamID)
		if len(difficulties) > maxLen {
			maxLen = len(difficulties)
		}
		for gw, d := range difficulties {
			appendCell(m.cells, teamID, gw+1, Opponent{
				TeamID:            -1,
				Difficulty:        &d,
				AttackDifficulty:  &d,
				DefenceDifficulty: &d,
			})
		}
	}
	for gw := 1; gw <= maxLen; gw++ {
		m.gameweeks = append(m.gameweeks, gw)
		m.slots[gw] = 1
	}
	return m
}

func TestRecommend_RanksByWindowAverage(t *testing.T) {
	t.Parallel()

	m := matrixFromRuns(map[int][]int{
		1: {1, 2, 1, 2}, // mean 1.5
		2: {4, 5, 4, 5}, // mean 4.5
		3: {3, 3, 3, 3}, // mean 3.0
	})

	rec := Recommend(m, team.FacetOverall)

	if got := rec.EasiestShort[0].TeamID; got != 1 {
		t.Fatalf("easiest run must rank first: got=%d want=1", got)
	}
	if got := rec.EasiestShort[0].Average; got != 1.5 {
		t.Fatalf("unexpected easiest average: got=%v want=1.5", got)
	}
	if got := rec.HardestShort[0].TeamID; got != 2 {
		t.Fatalf("hardest run must rank first: got=%d want=2", got)
	}
	if got := rec.HardestShort[0].Average; got != 4.5 {
		t.Fatalf("unexpected hardest average: got=%v want=4.5", got)
	}
}

func TestRecommend_TieBreaksByTeamID(t *testing.T) {
	t.Parallel()

	m := matrixFromRuns(map[int][]int{
		7: {2, 2, 2, 2},
		4: {2, 2, 2, 2},
		9: {3, 3, 3, 3},
	})

	rec := Recommend(m, team.FacetOverall)

	if rec.EasiestShort[0].TeamID != 4 || rec.EasiestShort[1].TeamID != 7 {
		t.Fatalf("ties must order by team id: got=%d,%d",
			rec.EasiestShort[0].TeamID, rec.EasiestShort[1].TeamID)
	}
}

func TestRecommend_BlankWindowScoresWorstCase(t *testing.T) {
	t.Parallel()

	m := matrixFromRuns(map[int][]int{
		1: {1, 1, 1, 1},
		2: {}, // no fixtures at all
	})

	rec := Recommend(m, team.FacetOverall)

	var blank TeamRun
	for _, run := range rec.HardestShort {
		if run.TeamID == 2 {
			blank = run
		}
	}
	if blank.TeamID != 2 || blank.Average != worstDifficulty || blank.SampleSize != 0 {
		t.Fatalf("team without fixtures must score the worst case: %+v", blank)
	}
}

func TestRecommend_WindowsDiverge(t *testing.T) {
	t.Parallel()

	// Easy opener, brutal run-in: short and long windows must disagree.
	m := matrixFromRuns(map[int][]int{
		1: {1, 1, 1, 1, 5, 5, 5, 5, 5, 5},
		2: {3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
	})

	rec := Recommend(m, team.FacetOverall)

	if got := rec.EasiestShort[0].TeamID; got != 1 {
		t.Fatalf("short window must favour the easy opener: got=%d", got)
	}
	if got := rec.EasiestLong[0].TeamID; got != 2 {
		t.Fatalf("long window must favour the steady run: got=%d", got)
	}
}
