package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/platform/cache"
	"github.com/fplstack/companion/internal/platform/logging"
)

// Refetch cadence is adaptive: tight while any fixture is live, relaxed when
// the gameweek is dormant.
const (
	liveRefreshInterval = 25 * time.Second
	idleRefreshInterval = time.Minute
)

// liveDomains are the cache domains whose entries chase the scoreboard.
var liveDomains = []string{"live", "standings", "stats", "picks"}

// RefreshService drives the background refetch loop. It watches the current
// gameweek's fixtures and expires live-scoped cache entries on an interval
// that tightens while matches are being played.
type RefreshService struct {
	fixtureRepo  fixture.Repository
	gameweekRepo gameweek.Repository
	store        *cache.Store
	logger       *logging.Logger

	scheduler gocron.Scheduler

	mu       sync.Mutex
	job      gocron.Job
	interval time.Duration
	baseCtx  context.Context
}

func NewRefreshService(fixtureRepo fixture.Repository, gameweekRepo gameweek.Repository, store *cache.Store, logger *logging.Logger) (*RefreshService, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	return &RefreshService{
		fixtureRepo:  fixtureRepo,
		gameweekRepo: gameweekRepo,
		store:        store,
		logger:       logger,
		scheduler:    scheduler,
		interval:     idleRefreshInterval,
	}, nil
}

// Start schedules the refresh job and runs the scheduler in the background.
func (s *RefreshService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.baseCtx = ctx
	job, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.tick),
	)
	if err != nil {
		return fmt.Errorf("schedule refresh job: %w", err)
	}
	s.job = job

	s.scheduler.Start()
	return nil
}

// Stop shuts the scheduler down and waits for a running tick to finish.
func (s *RefreshService) Stop() error {
	return s.scheduler.Shutdown()
}

// tick expires the live cache domains and retunes the cadence to the
// scoreboard state.
func (s *RefreshService) tick() {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	live, err := s.anyFixtureLive(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh tick failed", "error", err)
		return
	}

	for _, domain := range liveDomains {
		s.store.DeletePrefix(ctx, cache.Key(domain))
	}

	s.retune(live)
}

func (s *RefreshService) retune(live bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	want := idleRefreshInterval
	if live {
		want = liveRefreshInterval
	}
	if want == s.interval || s.job == nil {
		return
	}

	updated, err := s.scheduler.Update(
		s.job.ID(),
		gocron.DurationJob(want),
		gocron.NewTask(s.tick),
	)
	if err != nil {
		s.logger.Warn("retune refresh cadence failed", "error", err)
		return
	}
	s.job = updated
	s.interval = want
}

func (s *RefreshService) anyFixtureLive(ctx context.Context) (bool, error) {
	gws, err := s.gameweekRepo.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list gameweeks: %w", err)
	}
	next, ok := gameweek.Next(gws)
	if !ok {
		return false, nil
	}

	// The scoring gameweek is the one before the next deadline.
	current := next.ID - 1
	if current < gameweek.First {
		return false, nil
	}

	fixtures, err := s.fixtureRepo.ListByGameweek(ctx, current)
	if err != nil {
		return false, fmt.Errorf("list fixtures: %w", err)
	}
	return fixture.AnyLive(fixtures), nil
}
