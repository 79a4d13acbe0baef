package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	leagues map[int]league.MiniLeague
}

func NewLeagueRepository(leagues ...league.MiniLeague) *LeagueRepository {
	byID := make(map[int]league.MiniLeague, len(leagues))
	for _, item := range leagues {
		byID[item.ID] = item
	}

	return &LeagueRepository{leagues: byID}
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID int) (league.MiniLeague, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.leagues[leagueID]
	return item, ok, nil
}
