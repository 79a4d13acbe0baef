package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/platform/cache"
)

func strengthTeams() []team.Team {
	raw := func(v int) *int { return &v }
	return []team.Team{
		{ID: 1, ShortName: "AAA", Strength: 2, StrengthOverallHome: raw(1100), StrengthOverallAway: raw(1100)},
		{ID: 2, ShortName: "BBB", Strength: 3, StrengthOverallHome: raw(1300), StrengthOverallAway: raw(1300)},
		{ID: 3, ShortName: "CCC", Strength: 5, StrengthOverallHome: raw(1500), StrengthOverallAway: raw(1500)},
	}
}

func seasonGameweeks(next int) []gameweek.Gameweek {
	out := make([]gameweek.Gameweek, 0, gameweek.Last)
	for gw := gameweek.First; gw <= gameweek.Last; gw++ {
		out = append(out, gameweek.Gameweek{ID: gw, IsNext: gw == next})
	}
	return out
}

func TestMatrix_BuildsFromNextGameweek(t *testing.T) {
	t.Parallel()

	teamReader := &stubTeamReader{teams: strengthTeams()}
	svc := NewScheduleService(
		teamReader,
		&stubFixtureRepository{byGameweek: map[int][]fixture.Fixture{
			9:  {{ID: 1, Gameweek: 9, HomeTeamID: 1, AwayTeamID: 2}},
			10: {{ID: 2, Gameweek: 10, HomeTeamID: 1, AwayTeamID: 3}},
			11: {{ID: 3, Gameweek: 11, HomeTeamID: 2, AwayTeamID: 3}},
		}},
		&stubGameweekRepository{gameweeks: seasonGameweeks(10)},
		cache.NewStore(time.Minute),
	)

	m, err := svc.Matrix(context.Background(), MatrixInput{Gameweeks: 4})
	if err != nil {
		t.Fatalf("Matrix error: %v", err)
	}

	if _, ok := m.Opponent(1, 9); ok {
		t.Fatal("past gameweeks must stay out of the window")
	}
	opp, ok := m.Opponent(1, 10)
	if !ok || opp.TeamID != 3 || !opp.IsHome {
		t.Fatalf("unexpected next-gameweek cell: %+v", opp)
	}
	if opp.Difficulty == nil || *opp.Difficulty != 5 {
		t.Fatalf("strongest opponent must rate 5: %v", opp.Difficulty)
	}
}

func TestMatrix_CachesTeamStrengths(t *testing.T) {
	t.Parallel()

	teamReader := &stubTeamReader{teams: strengthTeams()}
	svc := NewScheduleService(
		teamReader,
		&stubFixtureRepository{byGameweek: map[int][]fixture.Fixture{
			10: {{ID: 1, Gameweek: 10, HomeTeamID: 1, AwayTeamID: 2}},
		}},
		&stubGameweekRepository{gameweeks: seasonGameweeks(10)},
		cache.NewStore(time.Minute),
	)

	for i := 0; i < 3; i++ {
		if _, err := svc.Matrix(context.Background(), MatrixInput{Gameweeks: 4}); err != nil {
			t.Fatalf("Matrix error: %v", err)
		}
	}

	if teamReader.calls != 1 {
		t.Fatalf("team strengths must come from cache: calls=%d", teamReader.calls)
	}
}

func TestRecommendations_RanksRuns(t *testing.T) {
	t.Parallel()

	fixtures := map[int][]fixture.Fixture{}
	// Team 3 repeatedly faces the middling side while team 2 faces the
	// strongest; team 1 has a blank run and scores worst case.
	for gw := 10; gw < 14; gw++ {
		fixtures[gw] = []fixture.Fixture{
			{ID: gw * 10, Gameweek: gw, HomeTeamID: 2, AwayTeamID: 3},
		}
	}

	svc := NewScheduleService(
		&stubTeamReader{teams: strengthTeams()},
		&stubFixtureRepository{byGameweek: fixtures},
		&stubGameweekRepository{gameweeks: seasonGameweeks(10)},
		cache.NewStore(time.Minute),
	)

	rec, err := svc.Recommendations(context.Background(), team.FacetOverall, team.Overrides{}, false)
	if err != nil {
		t.Fatalf("Recommendations error: %v", err)
	}

	if rec.EasiestShort[0].TeamID != 3 {
		t.Fatalf("team with the gentlest run must rank easiest: %+v", rec.EasiestShort[0])
	}
	if rec.EasiestShort[0].Average != 3.0 {
		t.Fatalf("unexpected easiest average: got=%v want=3", rec.EasiestShort[0].Average)
	}
	// Blank-run team and the one facing the strongest side tie at the worst
	// case; the lower id leads.
	if rec.HardestShort[0].TeamID != 1 || rec.HardestShort[1].TeamID != 2 {
		t.Fatalf("unexpected hardest order: %+v", rec.HardestShort)
	}
}
