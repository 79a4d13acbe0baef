package standings

import (
	"math"
	"sort"
)

// Live is a reconciled live result for one manager, used to replace that
// manager's stored totals before re-ranking.
type Live struct {
	GameweekPoints int
	TotalPoints    int
}

// Project overlays live totals onto the stored rows and re-ranks the league.
// The order is total, (seasonTotal descending, managerId ascending), so two
// managers never share a rank.
//
// Rank change is recomputed from the stored baseline only when every
// participant's input is settled; while matches are live the stored change is
// kept (the upstream league change as fallback), since a transient reshuffle
// says nothing about the gameweek outcome.
func Project(rows []Row, live map[int]Live, settled bool) []Row {
	out := append([]Row(nil), rows...)

	for i := range out {
		if l, ok := live[out[i].ManagerID]; ok {
			out[i].GameweekPoints = l.GameweekPoints
			out[i].TotalPoints = l.TotalPoints
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalPoints != out[j].TotalPoints {
			return out[i].TotalPoints > out[j].TotalPoints
		}
		return out[i].ManagerID < out[j].ManagerID
	})

	for i := range out {
		newRank := i + 1
		if settled {
			// The stored change relates the stored rank to the previous
			// gameweek; shifting it by the live movement keeps that baseline.
			previous := out[i].Rank + storedChange(out[i])
			change := previous - newRank
			out[i].RankChange = &change
		} else if out[i].RankChange == nil {
			change := out[i].LeagueRankChange
			out[i].RankChange = &change
		}
		out[i].Rank = newRank
	}

	return out
}

func storedChange(r Row) int {
	if r.RankChange != nil {
		return *r.RankChange
	}
	return r.LeagueRankChange
}

// maxGildRank caps the styling classes available for gilded cells.
const maxGildRank = 5

// Gild marks the top third of a column with a 1-based medal rank, capped for
// styling. Zero values never gild, so a league where nobody has scored stays
// plain. The result is index-aligned with values; 0 means no gilding.
func Gild(values []int) []int {
	n := len(values)
	out := make([]int, n)
	if n == 0 {
		return out
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return values[order[a]] > values[order[b]]
	})

	gilded := int(math.Ceil(float64(n) / 3))
	for pos, idx := range order {
		if pos >= gilded || values[idx] <= 0 {
			break
		}
		rank := pos + 1
		if rank > maxGildRank {
			rank = maxGildRank
		}
		out[idx] = rank
	}

	return out
}
