package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/fplstack/companion/internal/domain/comparison"
	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
)

// ComparisonService runs the head-to-head player view over season totals.
type ComparisonService struct {
	playerRepo player.Repository
	statsRepo  playerstats.Repository
}

func NewComparisonService(playerRepo player.Repository, statsRepo playerstats.Repository) *ComparisonService {
	return &ComparisonService{playerRepo: playerRepo, statsRepo: statsRepo}
}

// ComparedPlayer is one side of the head-to-head with identity attached.
type ComparedPlayer struct {
	ID       int
	WebName  string
	Position player.Position
}

// Comparison is the full head-to-head result.
type Comparison struct {
	PlayerOne ComparedPlayer
	PlayerTwo ComparedPlayer
	PerNinety bool
	Lines     []comparison.Line
}

// Compare loads both players and their season totals, then computes the
// visible stat lines.
func (s *ComparisonService) Compare(ctx context.Context, p1ID, p2ID int, perNinety bool) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "ComparisonService.Compare")
	defer span.End()

	if p1ID <= 0 || p2ID <= 0 {
		return Comparison{}, fmt.Errorf("%w: two player ids are required", ErrInvalidInput)
	}
	if p1ID == p2ID {
		return Comparison{}, fmt.Errorf("%w: players must differ", ErrInvalidInput)
	}

	ids := []int{p1ID, p2ID}

	var (
		players []player.Player
		totals  []playerstats.SeasonTotals
	)
	loaders := pool.New().WithContext(ctx).WithCancelOnError()
	loaders.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListByIDs(ctx, ids)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = rows
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListSeasonTotals(ctx, ids)
		if err != nil {
			return fmt.Errorf("list season totals: %w", err)
		}
		totals = rows
		return nil
	})
	if err := loaders.Wait(); err != nil {
		return Comparison{}, err
	}

	byID := make(map[int]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	totalsByID := make(map[int]playerstats.SeasonTotals, len(totals))
	for _, t := range totals {
		totalsByID[t.PlayerID] = t
	}

	p1, ok := byID[p1ID]
	if !ok {
		return Comparison{}, fmt.Errorf("%w: player=%d", ErrNotFound, p1ID)
	}
	p2, ok := byID[p2ID]
	if !ok {
		return Comparison{}, fmt.Errorf("%w: player=%d", ErrNotFound, p2ID)
	}

	e1 := entrant(p1, totalsByID[p1ID])
	e2 := entrant(p2, totalsByID[p2ID])

	return Comparison{
		PlayerOne: ComparedPlayer{ID: p1.ID, WebName: p1.WebName, Position: p1.Position},
		PlayerTwo: ComparedPlayer{ID: p2.ID, WebName: p2.WebName, Position: p2.Position},
		PerNinety: perNinety,
		Lines:     comparison.Compare(e1, e2, perNinety),
	}, nil
}

func entrant(p player.Player, t playerstats.SeasonTotals) comparison.Entrant {
	return comparison.Entrant{
		Position: p.Position,
		Minutes:  t.Minutes,
		Values: map[string]float64{
			"total_points":            float64(t.TotalPoints),
			"minutes":                 float64(t.Minutes),
			"goals_scored":            float64(t.Goals),
			"assists":                 float64(t.Assists),
			"expected_goals":          t.ExpectedGoals,
			"expected_assists":        t.ExpectedAssists,
			"clean_sheets":            float64(t.CleanSheets),
			"expected_goals_conceded": t.ExpectedGoalsConceded,
			"defensive_contribution":  float64(t.DefensiveContributions),
			"saves":                   float64(t.Saves),
			"bonus":                   float64(t.Bonus),
			"bps":                     float64(t.BPS),
			"yellow_cards":            float64(t.YellowCards),
			"red_cards":               float64(t.RedCards),
			"price":                   float64(p.PriceTenths) / 10,
		},
	}
}
