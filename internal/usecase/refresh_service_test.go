package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/platform/cache"
	"github.com/fplstack/companion/internal/platform/logging"
)

func newRefreshFixture(t *testing.T, fixtures map[int][]fixture.Fixture) (*RefreshService, *cache.Store) {
	t.Helper()

	store := cache.NewStore(time.Minute)
	service, err := NewRefreshService(
		&stubFixtureRepository{byGameweek: fixtures},
		&stubGameweekRepository{gameweeks: []gameweek.Gameweek{
			{ID: 3},
			{ID: 4, IsNext: true},
		}},
		store,
		logging.NewNop(),
	)
	if err != nil {
		t.Fatalf("new refresh service: %v", err)
	}
	t.Cleanup(func() {
		if err := service.Stop(); err != nil {
			t.Errorf("stop refresh service: %v", err)
		}
	})
	return service, store
}

func TestRefreshService_TickExpiresLiveDomains(t *testing.T) {
	service, store := newRefreshFixture(t, map[int][]fixture.Fixture{
		3: {{ID: 31, Gameweek: 3, Started: true}},
	})

	ctx := context.Background()
	store.Set(ctx, cache.Key("live", "501", "3"), "stale")
	store.Set(ctx, cache.Key("standings", "1001", "3"), "stale")
	store.Set(ctx, cache.Key("schedule", "overall"), "fresh")

	service.tick()

	if _, ok := store.Get(ctx, cache.Key("live", "501", "3")); ok {
		t.Fatal("expected live entry to be expired")
	}
	if _, ok := store.Get(ctx, cache.Key("standings", "1001", "3")); ok {
		t.Fatal("expected standings entry to be expired")
	}
	if _, ok := store.Get(ctx, cache.Key("schedule", "overall")); !ok {
		t.Fatal("expected schedule entry to survive")
	}
}

func TestRefreshService_CadenceFollowsScoreboard(t *testing.T) {
	t.Run("tightens while a match is live", func(t *testing.T) {
		service, _ := newRefreshFixture(t, map[int][]fixture.Fixture{
			3: {{ID: 31, Gameweek: 3, Started: true}},
		})

		live, err := service.anyFixtureLive(context.Background())
		if err != nil {
			t.Fatalf("any fixture live: %v", err)
		}
		if !live {
			t.Fatal("expected gameweek to be live")
		}
	})

	t.Run("relaxes when every match is final", func(t *testing.T) {
		service, _ := newRefreshFixture(t, map[int][]fixture.Fixture{
			3: {{ID: 31, Gameweek: 3, Started: true, Finished: true, FinishedProvisional: true, Minutes: 90}},
		})

		live, err := service.anyFixtureLive(context.Background())
		if err != nil {
			t.Fatalf("any fixture live: %v", err)
		}
		if live {
			t.Fatal("expected gameweek to be dormant")
		}
	})
}
