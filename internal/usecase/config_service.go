package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/domain/userconfig"
	"github.com/fplstack/companion/internal/platform/cache"
	"github.com/fplstack/companion/internal/platform/logging"
)

// AuthState is the configuration store's session state.
type AuthState string

const (
	StateLoading       AuthState = "loading"
	StateAnonymous     AuthState = "anonymous"
	StateAuthenticated AuthState = "authenticated"
)

// scopedDomains are the cache domains keyed by league or manager id; they all
// go stale the moment either id changes.
var scopedDomains = []string{"standings", "manager", "picks", "transfers", "impacts", "live"}

// ConfigService owns the process-wide user configuration: loading it from the
// right backend, persisting edits, migrating a local blob to the remote row on
// first sign-in and invalidating derived caches when the watched league or
// manager changes.
type ConfigService struct {
	local  userconfig.Store
	remote userconfig.Store
	store  *cache.Store
	logger *logging.Logger

	validate *validator.Validate
	defaults userconfig.Configuration

	mu       sync.RWMutex
	state    AuthState
	userID   string
	cfg      userconfig.Configuration
	migrated bool
}

func NewConfigService(local, remote userconfig.Store, store *cache.Store, defaults userconfig.Configuration, logger *logging.Logger) *ConfigService {
	return &ConfigService{
		local:    local,
		remote:   remote,
		store:    store,
		logger:   logger,
		validate: validator.New(),
		defaults: defaults,
		state:    StateLoading,
	}
}

// Load initializes the anonymous configuration: local blob when present, the
// environment defaults otherwise.
func (s *ConfigService) Load(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.Load")
	defer span.End()

	rec, ok, err := s.local.Get(ctx, "")
	if err != nil {
		return fmt.Errorf("load local configuration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ok {
		s.cfg = rec.Configuration.Clone()
	} else {
		s.cfg = s.defaults.Clone()
	}
	s.state = StateAnonymous
	return nil
}

// SignIn switches to the remote backend. A remote row wins outright; when
// there is none and the local blob carries anything, it migrates up exactly
// once per session. Migration failure is logged and the flag reset so the
// next sign-in retries.
func (s *ConfigService) SignIn(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.SignIn")
	defer span.End()

	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrUnauthorized)
	}

	rec, ok, err := s.remote.Get(ctx, userID)
	if err != nil {
		return fmt.Errorf("load remote configuration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.cfg
	s.userID = userID
	s.state = StateAuthenticated

	switch {
	case ok:
		s.cfg = rec.Configuration.Clone()
	case !s.cfg.Empty() && !s.migrated:
		s.migrated = true
		if err := s.remote.Upsert(ctx, userID, s.cfg); err != nil {
			s.migrated = false
			s.logger.WarnContext(ctx, "configuration migration failed", "error", err)
		}
	}

	s.invalidateScopedLocked(ctx, previous)
	return nil
}

// SignOut drops back to an anonymous, empty configuration and clears the
// local blob.
func (s *ConfigService) SignOut(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.SignOut")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.local.Delete(ctx, ""); err != nil {
		return fmt.Errorf("clear local configuration: %w", err)
	}

	previous := s.cfg
	s.userID = ""
	s.state = StateAnonymous
	s.cfg = userconfig.Configuration{}
	s.migrated = false

	s.invalidateScopedLocked(ctx, previous)
	return nil
}

// Current returns a copy of the active configuration and the session state.
func (s *ConfigService) Current() (userconfig.Configuration, AuthState) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone(), s.state
}

// SetLeague changes the watched mini-league and invalidates everything keyed
// by it.
func (s *ConfigService) SetLeague(ctx context.Context, leagueID int) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.SetLeague")
	defer span.End()

	if leagueID < 0 {
		return fmt.Errorf("%w: league id must not be negative", ErrInvalidInput)
	}
	return s.update(ctx, func(cfg *userconfig.Configuration) {
		cfg.LeagueID = leagueID
	})
}

// SetManager changes the configured manager and invalidates everything keyed
// by it.
func (s *ConfigService) SetManager(ctx context.Context, managerID int) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.SetManager")
	defer span.End()

	if managerID < 0 {
		return fmt.Errorf("%w: manager id must not be negative", ErrInvalidInput)
	}
	return s.update(ctx, func(cfg *userconfig.Configuration) {
		cfg.ManagerID = managerID
	})
}

// SetOverride writes one sparse difficulty override; a nil value clears it.
func (s *ConfigService) SetOverride(ctx context.Context, facet team.Facet, teamID int, value *int) error {
	ctx, span := startUsecaseSpan(ctx, "ConfigService.SetOverride")
	defer span.End()

	if teamID <= 0 {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if value != nil && (*value < 1 || *value > 5) {
		return fmt.Errorf("%w: override must be between 1 and 5", ErrInvalidInput)
	}

	return s.update(ctx, func(cfg *userconfig.Configuration) {
		var m *map[int]int
		switch facet {
		case team.FacetAttack:
			m = &cfg.TeamAttackOverrides
		case team.FacetDefence:
			m = &cfg.TeamDefenceOverrides
		default:
			m = &cfg.TeamStrengthOverrides
		}

		if value == nil {
			delete(*m, teamID)
			return
		}
		if *m == nil {
			*m = make(map[int]int)
		}
		(*m)[teamID] = *value
	})
}

// update applies a mutation, validates, persists to the active backend and
// invalidates scoped caches when the league or manager id moved.
func (s *ConfigService) update(ctx context.Context, mutate func(*userconfig.Configuration)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.cfg
	next := s.cfg.Clone()
	mutate(&next)

	if err := s.validate.Struct(next); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.persistLocked(ctx, next); err != nil {
		return err
	}

	s.cfg = next
	s.invalidateScopedLocked(ctx, previous)
	return nil
}

func (s *ConfigService) persistLocked(ctx context.Context, cfg userconfig.Configuration) error {
	if s.state == StateAuthenticated {
		if err := s.remote.Upsert(ctx, s.userID, cfg); err != nil {
			return fmt.Errorf("persist remote configuration: %w", err)
		}
		return nil
	}
	if err := s.local.Upsert(ctx, "", cfg); err != nil {
		return fmt.Errorf("persist local configuration: %w", err)
	}
	return nil
}

func (s *ConfigService) invalidateScopedLocked(ctx context.Context, previous userconfig.Configuration) {
	if previous.LeagueID == s.cfg.LeagueID && previous.ManagerID == s.cfg.ManagerID {
		return
	}
	for _, domain := range scopedDomains {
		s.store.DeletePrefix(ctx, cache.Key(domain))
	}
}
