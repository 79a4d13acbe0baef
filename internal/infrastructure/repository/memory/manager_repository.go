package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/manager"
)

type ManagerRepository struct {
	mu       sync.RWMutex
	byID     map[int]manager.Manager
	byLeague map[int][]manager.Manager
	history  map[int][]manager.GameweekHistory
}

func NewManagerRepository(managers []manager.Manager, history []manager.GameweekHistory) *ManagerRepository {
	byID := make(map[int]manager.Manager, len(managers))
	byLeague := make(map[int][]manager.Manager)
	for _, item := range managers {
		byID[item.ID] = item
		byLeague[item.LeagueID] = append(byLeague[item.LeagueID], item)
	}

	byManager := make(map[int][]manager.GameweekHistory)
	for _, row := range history {
		byManager[row.ManagerID] = append(byManager[row.ManagerID], row)
	}

	return &ManagerRepository{byID: byID, byLeague: byLeague, history: byManager}
}

func (r *ManagerRepository) GetByID(_ context.Context, managerID int) (manager.Manager, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[managerID]
	return item, ok, nil
}

func (r *ManagerRepository) ListByLeague(_ context.Context, leagueID int) ([]manager.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]manager.Manager(nil), r.byLeague[leagueID]...), nil
}

func (r *ManagerRepository) ListHistory(_ context.Context, managerID int) ([]manager.GameweekHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]manager.GameweekHistory(nil), r.history[managerID]...), nil
}

func (r *ManagerRepository) GetHistoryRow(_ context.Context, managerID, gw int) (manager.GameweekHistory, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, row := range r.history[managerID] {
		if row.Gameweek == gw {
			return row, true, nil
		}
	}
	return manager.GameweekHistory{}, false, nil
}
