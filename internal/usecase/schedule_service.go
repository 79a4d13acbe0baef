package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/schedule"
	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/platform/cache"
)

// Static domain data moves once a gameweek at most; cache it generously.
const staticDomainTTL = 5 * time.Minute

// ScheduleService derives the fixture-difficulty matrix and the buy/sell
// recommendations from upcoming fixtures and normalized team strengths.
type ScheduleService struct {
	teamReader   team.StrengthReader
	fixtureRepo  fixture.Repository
	gameweekRepo gameweek.Repository
	store        *cache.Store
}

func NewScheduleService(teamReader team.StrengthReader, fixtureRepo fixture.Repository, gameweekRepo gameweek.Repository, store *cache.Store) *ScheduleService {
	return &ScheduleService{
		teamReader:   teamReader,
		fixtureRepo:  fixtureRepo,
		gameweekRepo: gameweekRepo,
		store:        store,
	}
}

// MatrixInput selects the window and difficulty rendering mode.
type MatrixInput struct {
	Gameweeks int
	Overrides team.Overrides
	Custom    bool
}

// Matrix builds the schedule matrix from the next gameweek onward.
func (s *ScheduleService) Matrix(ctx context.Context, in MatrixInput) (*schedule.Matrix, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.Matrix")
	defer span.End()

	window := in.Gameweeks
	if window <= 0 {
		window = schedule.LongWindow
	}

	next, err := s.nextGameweek(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.normalizedTeams(ctx)
	if err != nil {
		return nil, err
	}

	fixtures, err := s.windowFixtures(ctx, next.ID, window)
	if err != nil {
		return nil, err
	}

	return schedule.Build(fixtures, teams, in.Overrides, in.Custom), nil
}

// Recommendations ranks teams over the short and long windows for one
// difficulty facet.
func (s *ScheduleService) Recommendations(ctx context.Context, facet team.Facet, overrides team.Overrides, custom bool) (schedule.Recommendation, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.Recommendations")
	defer span.End()

	m, err := s.Matrix(ctx, MatrixInput{Gameweeks: schedule.LongWindow, Overrides: overrides, Custom: custom})
	if err != nil {
		return schedule.Recommendation{}, err
	}

	return schedule.Recommend(m, facet), nil
}

// NormalizedTeams exposes the cached strength projection for other services.
func (s *ScheduleService) NormalizedTeams(ctx context.Context) ([]team.Normalized, error) {
	ctx, span := startUsecaseSpan(ctx, "ScheduleService.NormalizedTeams")
	defer span.End()

	return s.normalizedTeams(ctx)
}

func (s *ScheduleService) normalizedTeams(ctx context.Context) ([]team.Normalized, error) {
	key := cache.Key("teams", "normalized")
	v, err := s.store.GetOrLoadTTL(ctx, key, staticDomainTTL, func(ctx context.Context) (any, error) {
		teams, err := s.teamReader.ListTeams(ctx)
		if err != nil {
			return nil, fmt.Errorf("list teams: %w", err)
		}
		return team.Normalize(teams), nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]team.Normalized), nil
}

func (s *ScheduleService) nextGameweek(ctx context.Context) (gameweek.Gameweek, error) {
	key := cache.Key("gameweeks", "all")
	v, err := s.store.GetOrLoadTTL(ctx, key, staticDomainTTL, func(ctx context.Context) (any, error) {
		gws, err := s.gameweekRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list gameweeks: %w", err)
		}
		return gws, nil
	})
	if err != nil {
		return gameweek.Gameweek{}, err
	}

	next, ok := gameweek.Next(v.([]gameweek.Gameweek))
	if !ok {
		return gameweek.Gameweek{}, fmt.Errorf("%w: next gameweek", ErrNotFound)
	}
	return next, nil
}

func (s *ScheduleService) windowFixtures(ctx context.Context, from, window int) ([]fixture.Fixture, error) {
	to := from + window
	if to > gameweek.Last+1 {
		to = gameweek.Last + 1
	}

	key := cache.Key("fixtures", "window", strconv.Itoa(from), strconv.Itoa(to))
	v, err := s.store.GetOrLoadTTL(ctx, key, staticDomainTTL, func(ctx context.Context) (any, error) {
		fixtures, err := s.fixtureRepo.ListByGameweekRange(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("list fixtures: %w", err)
		}
		return fixtures, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]fixture.Fixture), nil
}
