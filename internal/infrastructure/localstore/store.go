// Package localstore persists the anonymous user's configuration as a single
// JSON blob on disk. It backs the config service before sign-in and is the
// migration source when an account is first linked.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/fplstack/companion/internal/domain/userconfig"
)

type blob struct {
	Configuration userconfig.Configuration `json:"configuration"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// Store reads and writes one configuration file. The userID argument of the
// Store interface is ignored; the local blob belongs to whoever holds the
// device.
type Store struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Get(_ context.Context, _ string) (userconfig.Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return userconfig.Record{}, false, nil
		}
		return userconfig.Record{}, false, fmt.Errorf("read config file: %w", err)
	}

	var b blob
	if err := sonic.Unmarshal(raw, &b); err != nil {
		return userconfig.Record{}, false, fmt.Errorf("decode config file: %w", err)
	}

	return userconfig.Record{
		Configuration: b.Configuration,
		UpdatedAt:     b.UpdatedAt,
	}, true, nil
}

func (s *Store) Upsert(_ context.Context, _ string, cfg userconfig.Configuration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := sonic.Marshal(blob{Configuration: cfg, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	// Write-then-rename so a crash mid-write never truncates the blob.
	tmp, err := os.CreateTemp(dir, ".config-*")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config file: %w", err)
	}
	return nil
}

func (s *Store) Delete(_ context.Context, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove config file: %w", err)
	}
	return nil
}
