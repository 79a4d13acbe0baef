package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/gameweek"
)

type GameweekRepository struct {
	mu        sync.RWMutex
	gameweeks []gameweek.Gameweek
}

func NewGameweekRepository(gameweeks []gameweek.Gameweek) *GameweekRepository {
	return &GameweekRepository{gameweeks: append([]gameweek.Gameweek(nil), gameweeks...)}
}

func (r *GameweekRepository) List(_ context.Context) ([]gameweek.Gameweek, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]gameweek.Gameweek(nil), r.gameweeks...), nil
}
