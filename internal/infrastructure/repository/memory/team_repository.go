package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/team"
)

type TeamRepository struct {
	mu    sync.RWMutex
	teams []team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	return &TeamRepository{teams: append([]team.Team(nil), teams...)}
}

func (r *TeamRepository) ListTeams(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teams...), nil
}
