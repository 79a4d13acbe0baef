package memory

import (
	"context"
	"sync"
	"time"

	"github.com/fplstack/companion/internal/domain/userconfig"
)

// UserConfigStore is an in-memory remote-config backend for dev mode.
type UserConfigStore struct {
	mu      sync.RWMutex
	records map[string]userconfig.Record
}

func NewUserConfigStore() *UserConfigStore {
	return &UserConfigStore{records: make(map[string]userconfig.Record)}
}

func (s *UserConfigStore) Get(_ context.Context, userID string) (userconfig.Record, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[userID]
	if !ok {
		return userconfig.Record{}, false, nil
	}
	record.Configuration = record.Configuration.Clone()
	return record, true, nil
}

func (s *UserConfigStore) Upsert(_ context.Context, userID string, cfg userconfig.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[userID] = userconfig.Record{
		UserID:        userID,
		Configuration: cfg.Clone(),
		UpdatedAt:     time.Now().UTC(),
	}
	return nil
}

func (s *UserConfigStore) Delete(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, userID)
	return nil
}
