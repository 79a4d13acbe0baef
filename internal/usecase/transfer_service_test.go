package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/transfers"
)

func transferPlayers(ids ...int) map[int]player.Player {
	out := make(map[int]player.Player, len(ids))
	for _, id := range ids {
		out[id] = player.Player{ID: id, WebName: fmt.Sprintf("player-%d", id)}
	}
	return out
}

func confirmedRow(playerID, gw, points int) playerstats.GameweekStats {
	return playerstats.GameweekStats{
		PlayerID:      playerID,
		Gameweek:      gw,
		Minutes:       90,
		TotalPoints:   points,
		BonusStatus:   playerstats.BonusConfirmed,
		MatchPlayed:   true,
		MatchFinished: true,
	}
}

func TestImpacts_TransferLogTakesPrecedence(t *testing.T) {
	t.Parallel()

	svc := NewTransferService(
		&stubTransferRepository{rows: map[string][]transfers.Transfer{
			"1/5": {{ManagerID: 1, Gameweek: 5, PlayerOutID: 10, PlayerInID: 20}},
		}},
		&stubSquadRepository{},
		&stubStatsRepository{rows: map[int][]playerstats.GameweekStats{
			5: {confirmedRow(10, 5, 3), confirmedRow(20, 5, 11)},
		}},
		&stubPlayerRepository{players: transferPlayers(10, 20)},
	)

	got, err := svc.Impacts(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Impacts error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("unexpected impact count: got=%d want=1", len(got))
	}
	if got[0].Derived {
		t.Fatal("logged transfers must not be marked derived")
	}
	if got[0].PlayerOutName != "player-10" || got[0].PlayerInName != "player-20" {
		t.Fatalf("unexpected names: %+v", got[0])
	}
	if got[0].PointImpact != 8 {
		t.Fatalf("unexpected impact: got=%d want=8", got[0].PointImpact)
	}
}

func TestImpacts_FallsBackToSquadDiff(t *testing.T) {
	t.Parallel()

	previous := []squad.Pick{
		{PlayerID: 1, Position: 1}, {PlayerID: 10, Position: 2}, {PlayerID: 11, Position: 3},
	}
	current := []squad.Pick{
		{PlayerID: 1, Position: 1}, {PlayerID: 20, Position: 2}, {PlayerID: 21, Position: 3},
	}

	svc := NewTransferService(
		&stubTransferRepository{},
		&stubSquadRepository{picks: map[string][]squad.Pick{
			picksKey(1, 5): current,
			picksKey(1, 4): previous,
		}},
		&stubStatsRepository{rows: map[int][]playerstats.GameweekStats{
			5: {
				confirmedRow(10, 5, 3), confirmedRow(11, 5, 9),
				confirmedRow(20, 5, 11), confirmedRow(21, 5, 2),
			},
		}},
		&stubPlayerRepository{players: transferPlayers(10, 11, 20, 21)},
	)

	got, err := svc.Impacts(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Impacts error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("unexpected impact count: got=%d want=2", len(got))
	}
	for _, im := range got {
		if !im.Derived {
			t.Fatalf("fallback pairs must be marked derived: %+v", im)
		}
	}
	if got[0].PointImpact+got[1].PointImpact != 1 {
		t.Fatalf("impact sum must match the swing: %+v", got)
	}
}

func TestImpacts_UnchangedSquadYieldsOneEmptyPair(t *testing.T) {
	t.Parallel()

	picks := []squad.Pick{{PlayerID: 1, Position: 1}}
	svc := NewTransferService(
		&stubTransferRepository{},
		&stubSquadRepository{picks: map[string][]squad.Pick{
			picksKey(1, 5): picks,
			picksKey(1, 4): picks,
		}},
		&stubStatsRepository{},
		&stubPlayerRepository{},
	)

	got, err := svc.Impacts(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("Impacts error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected impact count: got=%d want=1", len(got))
	}
	if got[0].PlayerOutID != 0 || got[0].PlayerInID != 0 {
		t.Fatalf("unchanged squad must pair absent counterparts: %+v", got[0])
	}
	if got[0].PlayerOutName != "" || got[0].PlayerInName != "" {
		t.Fatalf("absent counterparts must have empty names: %+v", got[0])
	}
	if !got[0].Derived {
		t.Fatal("fallback pair must be marked derived")
	}
	if got[0].PointImpact != 0 {
		t.Fatalf("unexpected impact: got=%d want=0", got[0].PointImpact)
	}
}

func TestImpacts_InvalidInput(t *testing.T) {
	t.Parallel()

	svc := NewTransferService(&stubTransferRepository{}, &stubSquadRepository{}, &stubStatsRepository{}, &stubPlayerRepository{})

	if _, err := svc.Impacts(context.Background(), 0, 5); err == nil {
		t.Fatal("zero manager id must error")
	}
	if _, err := svc.Impacts(context.Background(), 1, 0); err == nil {
		t.Fatal("zero gameweek must error")
	}
}
