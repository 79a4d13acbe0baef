// Package cache wraps repositories with read-through caching. Keys follow the
// cache.Key domain scheme so configuration changes can invalidate whole
// domains by prefix.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/standings"
	"github.com/fplstack/companion/internal/domain/transfers"
	basecache "github.com/fplstack/companion/internal/platform/cache"
)

type StandingsRepository struct {
	next  standings.Repository
	cache *basecache.Store
	ttl   time.Duration
}

func NewStandingsRepository(next standings.Repository, cache *basecache.Store, ttl time.Duration) *StandingsRepository {
	return &StandingsRepository{next: next, cache: cache, ttl: ttl}
}

func (r *StandingsRepository) ListByLeagueAndGameweek(ctx context.Context, leagueID, gw int) ([]standings.Row, error) {
	key := basecache.Key("standings", strconv.Itoa(leagueID), strconv.Itoa(gw))
	v, err := r.cache.GetOrLoadTTL(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeagueAndGameweek(ctx, leagueID, gw)
		if err != nil {
			return nil, err
		}
		return append([]standings.Row(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]standings.Row)
	return append([]standings.Row(nil), items...), nil
}

type ManagerRepository struct {
	next  manager.Repository
	cache *basecache.Store
}

func NewManagerRepository(next manager.Repository, cache *basecache.Store) *ManagerRepository {
	return &ManagerRepository{next: next, cache: cache}
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	key := basecache.Key("manager", "id", strconv.Itoa(managerID))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, managerID)
		if err != nil {
			return nil, err
		}
		return cachedManagerByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return manager.Manager{}, false, err
	}

	cached, _ := v.(cachedManagerByID)
	return cached.value, cached.exists, nil
}

func (r *ManagerRepository) ListByLeague(ctx context.Context, leagueID int) ([]manager.Manager, error) {
	key := basecache.Key("manager", "league", strconv.Itoa(leagueID))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]manager.Manager(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]manager.Manager)
	return append([]manager.Manager(nil), items...), nil
}

func (r *ManagerRepository) ListHistory(ctx context.Context, managerID int) ([]manager.GameweekHistory, error) {
	key := basecache.Key("manager", "history", strconv.Itoa(managerID))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListHistory(ctx, managerID)
		if err != nil {
			return nil, err
		}
		return append([]manager.GameweekHistory(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]manager.GameweekHistory)
	return append([]manager.GameweekHistory(nil), items...), nil
}

func (r *ManagerRepository) GetHistoryRow(ctx context.Context, managerID, gw int) (manager.GameweekHistory, bool, error) {
	key := basecache.Key("manager", "history", strconv.Itoa(managerID), strconv.Itoa(gw))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetHistoryRow(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return cachedHistoryRow{value: item, exists: exists}, nil
	})
	if err != nil {
		return manager.GameweekHistory{}, false, err
	}

	cached, _ := v.(cachedHistoryRow)
	return cached.value, cached.exists, nil
}

type cachedManagerByID struct {
	value  manager.Manager
	exists bool
}

type cachedHistoryRow struct {
	value  manager.GameweekHistory
	exists bool
}

type SquadRepository struct {
	next  squad.Repository
	cache *basecache.Store
	ttl   time.Duration
}

func NewSquadRepository(next squad.Repository, cache *basecache.Store, ttl time.Duration) *SquadRepository {
	return &SquadRepository{next: next, cache: cache, ttl: ttl}
}

func (r *SquadRepository) ListPicks(ctx context.Context, managerID, gw int) ([]squad.Pick, error) {
	key := basecache.Key("picks", strconv.Itoa(managerID), strconv.Itoa(gw))
	v, err := r.cache.GetOrLoadTTL(ctx, key, r.ttl, func(ctx context.Context) (any, error) {
		items, err := r.next.ListPicks(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return append([]squad.Pick(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]squad.Pick)
	return append([]squad.Pick(nil), items...), nil
}

type TransferRepository struct {
	next  transfers.Repository
	cache *basecache.Store
}

func NewTransferRepository(next transfers.Repository, cache *basecache.Store) *TransferRepository {
	return &TransferRepository{next: next, cache: cache}
}

func (r *TransferRepository) ListByManagerAndGameweek(ctx context.Context, managerID, gw int) ([]transfers.Transfer, error) {
	key := basecache.Key("transfers", strconv.Itoa(managerID), strconv.Itoa(gw))
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByManagerAndGameweek(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
		return append([]transfers.Transfer(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]transfers.Transfer)
	return append([]transfers.Transfer(nil), items...), nil
}
