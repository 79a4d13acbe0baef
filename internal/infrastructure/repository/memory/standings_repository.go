package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/standings"
)

type StandingsRepository struct {
	mu       sync.RWMutex
	leagueID int
	rows     []standings.Row
}

func NewStandingsRepository(leagueID int, rows []standings.Row) *StandingsRepository {
	return &StandingsRepository{leagueID: leagueID, rows: append([]standings.Row(nil), rows...)}
}

func (r *StandingsRepository) ListByLeagueAndGameweek(_ context.Context, leagueID, _ int) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if leagueID != r.leagueID {
		return nil, nil
	}
	return append([]standings.Row(nil), r.rows...), nil
}
