package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu   sync.RWMutex
	rows []playerstats.GameweekStats
}

func NewPlayerStatsRepository(rows []playerstats.GameweekStats) *PlayerStatsRepository {
	return &PlayerStatsRepository{rows: append([]playerstats.GameweekStats(nil), rows...)}
}

func (r *PlayerStatsRepository) ListByPlayersAndGameweek(_ context.Context, playerIDs []int, gw int) ([]playerstats.GameweekStats, error) {
	wanted := make(map[int]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []playerstats.GameweekStats
	for _, row := range r.rows {
		if row.Gameweek != gw {
			continue
		}
		if _, ok := wanted[row.PlayerID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *PlayerStatsRepository) ListSeasonTotals(_ context.Context, playerIDs []int) ([]playerstats.SeasonTotals, error) {
	wanted := make(map[int]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	totals := make(map[int]*playerstats.SeasonTotals, len(playerIDs))
	order := make([]int, 0, len(playerIDs))
	for _, row := range r.rows {
		if _, ok := wanted[row.PlayerID]; !ok {
			continue
		}
		t, ok := totals[row.PlayerID]
		if !ok {
			t = &playerstats.SeasonTotals{PlayerID: row.PlayerID}
			totals[row.PlayerID] = t
			order = append(order, row.PlayerID)
		}
		t.Minutes += row.Minutes
		t.Goals += row.Goals
		t.Assists += row.Assists
		t.CleanSheets += row.CleanSheets
		t.Saves += row.Saves
		t.BPS += row.BPS
		t.Bonus += row.Bonus
		t.TotalPoints += row.TotalPoints
		t.ExpectedGoals += row.ExpectedGoals
		t.ExpectedAssists += row.ExpectedAssists
		t.ExpectedGoalsConceded += row.ExpectedGoalsConceded
		t.YellowCards += row.YellowCards
		t.RedCards += row.RedCards
		t.DefensiveContributions += row.DefensiveContributions
	}

	out := make([]playerstats.SeasonTotals, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	return out, nil
}
