package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/league"
	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/standings"
)

func settledFixtures(gw, count int) []fixture.Fixture {
	out := make([]fixture.Fixture, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, fixture.Fixture{
			ID: gw*100 + i, Gameweek: gw,
			HomeTeamID: i*2 + 1, AwayTeamID: i*2 + 2,
			Started: true, Finished: true, FinishedProvisional: true, Minutes: 90,
		})
	}
	return out
}

func TestLiveTable_OverlaysFocusManager(t *testing.T) {
	t.Parallel()

	picks := fullSquad()
	points := map[int]int{}
	for _, p := range picks {
		points[p.PlayerID] = 4
	}
	scoring := NewLiveScoringService(
		&stubSquadRepository{picks: map[string][]squad.Pick{picksKey(7, 10): picks}},
		&stubStatsRepository{rows: map[int][]playerstats.GameweekStats{10: settledRows(10, picks, points)}},
		&stubPlayerRepository{players: transferPlayers()},
		&stubManagerRepository{history: map[string]manager.GameweekHistory{
			historyKey(7, 10): {ManagerID: 7, Gameweek: 10},
			historyKey(7, 9):  {ManagerID: 7, Gameweek: 9, TotalPoints: 400},
		}},
	)

	svc := NewStandingsService(
		&stubLeagueRepository{byID: map[int]league.MiniLeague{55: {ID: 55, Name: "The Office"}}},
		&stubStandingsRepository{rows: map[int][]standings.Row{
			55: {
				{ManagerID: 7, Rank: 2, TotalPoints: 410, GameweekPoints: 10},
				{ManagerID: 8, Rank: 1, TotalPoints: 430, GameweekPoints: 35},
			},
		}},
		&stubFixtureRepository{byGameweek: map[int][]fixture.Fixture{10: settledFixtures(10, 2)}},
		scoring,
	)

	table, err := svc.LiveTable(context.Background(), 55, 10, []int{7})
	if err != nil {
		t.Fatalf("LiveTable error: %v", err)
	}

	if !table.Settled {
		t.Fatal("all-final fixtures must settle the table")
	}
	// Manager 7 reconciles to 48 gw points, 448 season total and overtakes.
	if table.Rows[0].ManagerID != 7 || table.Rows[0].Rank != 1 {
		t.Fatalf("live overlay must re-rank: %+v", table.Rows[0])
	}
	if table.Rows[0].TotalPoints != 448 || table.Rows[0].GameweekPoints != 48 {
		t.Fatalf("unexpected overlay totals: %+v", table.Rows[0])
	}
	if len(table.GildGameweek) != 2 || table.GildGameweek[0] != 1 {
		t.Fatalf("top gameweek score must gild first: %v", table.GildGameweek)
	}
}

func TestLiveTable_UnknownLeague(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(
		&stubLeagueRepository{},
		&stubStandingsRepository{},
		&stubFixtureRepository{},
		NewLiveScoringService(&stubSquadRepository{}, &stubStatsRepository{}, &stubPlayerRepository{}, &stubManagerRepository{}),
	)

	_, err := svc.LiveTable(context.Background(), 55, 10, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown league must be not found: %v", err)
	}
}

func TestLiveTable_NoLeagueConfigured(t *testing.T) {
	t.Parallel()

	svc := NewStandingsService(
		&stubLeagueRepository{},
		&stubStandingsRepository{},
		&stubFixtureRepository{},
		NewLiveScoringService(&stubSquadRepository{}, &stubStatsRepository{}, &stubPlayerRepository{}, &stubManagerRepository{}),
	)

	_, err := svc.LiveTable(context.Background(), 0, 10, nil)
	if !errors.Is(err, ErrNoLeagueConfigured) {
		t.Fatalf("zero league id must surface the empty state: %v", err)
	}
}

func TestSortTable_KeepsGildingAligned(t *testing.T) {
	t.Parallel()

	table := Table{
		Rows: []standings.Row{
			{ManagerID: 1, ManagerName: "zoe", GameweekPoints: 50},
			{ManagerID: 2, ManagerName: "ann", GameweekPoints: 20},
		},
		GildGameweek: []int{1, 0},
		GildTotal:    []int{0, 0},
	}

	sorted := SortTable(table, standings.ColumnManager, standings.Ascending)

	if sorted.Rows[0].ManagerID != 2 {
		t.Fatalf("alphabetic sort must lead with ann: %+v", sorted.Rows[0])
	}
	if sorted.GildGameweek[1] != 1 {
		t.Fatalf("gilding must follow its row: %v", sorted.GildGameweek)
	}
}
