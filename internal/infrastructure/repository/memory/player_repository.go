package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/player"
)

type PlayerRepository struct {
	mu   sync.RWMutex
	byID map[int]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byID := make(map[int]player.Player, len(players))
	for _, item := range players {
		byID[item.ID] = item
	}

	return &PlayerRepository{byID: byID}
}

func (r *PlayerRepository) ListByIDs(_ context.Context, ids []int) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
