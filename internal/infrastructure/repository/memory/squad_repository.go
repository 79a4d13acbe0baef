package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/squad"
)

type SquadRepository struct {
	mu    sync.RWMutex
	picks map[int]map[int][]squad.Pick
}

func NewSquadRepository(picks map[int]map[int][]squad.Pick) *SquadRepository {
	return &SquadRepository{picks: picks}
}

func (r *SquadRepository) ListPicks(_ context.Context, managerID, gw int) ([]squad.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]squad.Pick(nil), r.picks[managerID][gw]...), nil
}
