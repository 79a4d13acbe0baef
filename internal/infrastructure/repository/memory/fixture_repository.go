package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/fixture"
)

type FixtureRepository struct {
	mu         sync.RWMutex
	byGameweek map[int][]fixture.Fixture
	byID       map[int]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	byGameweek := make(map[int][]fixture.Fixture)
	byID := make(map[int]fixture.Fixture, len(fixtures))
	for _, item := range fixtures {
		byGameweek[item.Gameweek] = append(byGameweek[item.Gameweek], item)
		byID[item.ID] = item
	}

	return &FixtureRepository{byGameweek: byGameweek, byID: byID}
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, gw int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]fixture.Fixture(nil), r.byGameweek[gw]...), nil
}

func (r *FixtureRepository) ListByGameweekRange(_ context.Context, from, to int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []fixture.Fixture
	for gw := from; gw < to; gw++ {
		out = append(out, r.byGameweek[gw]...)
	}
	return out, nil
}

func (r *FixtureRepository) ListByIDs(_ context.Context, ids []int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
