package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/league"
	"github.com/fplstack/companion/internal/domain/standings"
)

const defaultOverlayWorkers = 4

// StandingsService projects live mini-league tables: stored standings rows
// overlaid with reconciled live totals for the managers being watched.
type StandingsService struct {
	leagueRepo    league.Repository
	standingsRepo standings.Repository
	fixtureRepo   fixture.Repository
	scoring       *LiveScoringService

	overlayWorkers int
}

func NewStandingsService(leagueRepo league.Repository, standingsRepo standings.Repository, fixtureRepo fixture.Repository, scoring *LiveScoringService) *StandingsService {
	return &StandingsService{
		leagueRepo:     leagueRepo,
		standingsRepo:  standingsRepo,
		fixtureRepo:    fixtureRepo,
		scoring:        scoring,
		overlayWorkers: defaultOverlayWorkers,
	}
}

// Table is a projected league table with per-column gilding.
type Table struct {
	Rows []standings.Row

	// GildGameweek and GildTotal carry the medal rank per row index, 0 for
	// plain cells.
	GildGameweek []int
	GildTotal    []int

	Settled bool
}

// LiveTable loads the stored standings for a league gameweek, recomputes live
// totals for the focus managers and re-ranks. Focus managers are the
// configured user plus any manager currently being inspected.
func (s *StandingsService) LiveTable(ctx context.Context, leagueID, gw int, focusManagerIDs []int) (Table, error) {
	ctx, span := startUsecaseSpan(ctx, "StandingsService.LiveTable")
	defer span.End()

	if leagueID <= 0 {
		return Table{}, fmt.Errorf("%w: league id is required", ErrNoLeagueConfigured)
	}
	if gw <= 0 {
		return Table{}, fmt.Errorf("%w: gameweek is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return Table{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return Table{}, fmt.Errorf("%w: league=%d", ErrNotFound, leagueID)
	}

	rows, err := s.standingsRepo.ListByLeagueAndGameweek(ctx, leagueID, gw)
	if err != nil {
		return Table{}, fmt.Errorf("list standings: %w", err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%w: standings league=%d gw=%d", ErrNotFound, leagueID, gw)
	}

	settled, err := s.gameweekSettled(ctx, gw)
	if err != nil {
		return Table{}, err
	}

	live, err := s.liveOverlays(ctx, gw, focusManagerIDs)
	if err != nil {
		return Table{}, err
	}

	projected := standings.Project(rows, live, settled)

	gwValues := make([]int, len(projected))
	totalValues := make([]int, len(projected))
	for i, row := range projected {
		gwValues[i] = row.GameweekPoints
		totalValues[i] = row.TotalPoints
	}

	return Table{
		Rows:         projected,
		GildGameweek: standings.Gild(gwValues),
		GildTotal:    standings.Gild(totalValues),
		Settled:      settled,
	}, nil
}

// liveOverlays reconciles each focus manager on a small worker pool; one
// manager failing does not lose the table, only its overlay.
func (s *StandingsService) liveOverlays(ctx context.Context, gw int, managerIDs []int) (map[int]standings.Live, error) {
	if len(managerIDs) == 0 {
		return nil, nil
	}

	workers := s.overlayWorkers
	if workers > len(managerIDs) {
		workers = len(managerIDs)
	}
	p, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer p.Release()

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		live = make(map[int]standings.Live, len(managerIDs))
	)
	for _, id := range managerIDs {
		if id <= 0 {
			continue
		}
		wg.Add(1)
		submit := func() {
			defer wg.Done()

			mg, err := s.scoring.ManagerGameweek(ctx, id, gw)
			if err != nil {
				return
			}
			gwPoints, seasonTotal := mg.Live()

			mu.Lock()
			live[id] = standings.Live{GameweekPoints: gwPoints, TotalPoints: seasonTotal}
			mu.Unlock()
		}
		if err := p.Submit(submit); err != nil {
			wg.Done()
			return nil, fmt.Errorf("submit overlay task: %w", err)
		}
	}
	wg.Wait()

	return live, nil
}

func (s *StandingsService) gameweekSettled(ctx context.Context, gw int) (bool, error) {
	fixtures, err := s.fixtureRepo.ListByGameweek(ctx, gw)
	if err != nil {
		return false, fmt.Errorf("list fixtures: %w", err)
	}
	for _, f := range fixtures {
		if !fixture.IsSettled(f) {
			return false, nil
		}
	}
	return len(fixtures) > 0, nil
}

// SortTable re-orders projected rows by a column, keeping gilding aligned.
func SortTable(t Table, col standings.Column, dir standings.Direction) Table {
	sorted := standings.Sort(t.Rows, col, dir)

	index := make(map[int]int, len(t.Rows))
	for i, row := range t.Rows {
		index[row.ManagerID] = i
	}

	out := Table{Rows: sorted, Settled: t.Settled}
	out.GildGameweek = make([]int, len(sorted))
	out.GildTotal = make([]int, len(sorted))
	for i, row := range sorted {
		if j, ok := index[row.ManagerID]; ok {
			if j < len(t.GildGameweek) {
				out.GildGameweek[i] = t.GildGameweek[j]
			}
			if j < len(t.GildTotal) {
				out.GildTotal[i] = t.GildTotal[j]
			}
		}
	}
	return out
}
