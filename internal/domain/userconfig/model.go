package userconfig

import (
	"context"
	"time"

	"github.com/fplstack/companion/internal/domain/team"
)

// Configuration is the per-user dashboard setup: which league and manager to
// follow plus sparse difficulty overrides keyed by team id. It round-trips as
// one blob through whichever backend is active.
type Configuration struct {
	LeagueID  int `json:"leagueId" validate:"min=0"`
	ManagerID int `json:"managerId" validate:"min=0"`

	TeamStrengthOverrides map[int]int `json:"teamStrengthOverrides,omitempty" validate:"omitempty,dive,min=1,max=5"`
	TeamAttackOverrides   map[int]int `json:"teamAttackOverrides,omitempty" validate:"omitempty,dive,min=1,max=5"`
	TeamDefenceOverrides  map[int]int `json:"teamDefenceOverrides,omitempty" validate:"omitempty,dive,min=1,max=5"`
}

// Empty reports whether the configuration carries nothing worth persisting.
func (c Configuration) Empty() bool {
	return c.LeagueID == 0 && c.ManagerID == 0 &&
		len(c.TeamStrengthOverrides) == 0 &&
		len(c.TeamAttackOverrides) == 0 &&
		len(c.TeamDefenceOverrides) == 0
}

// Custom reports whether any override is set, which switches difficulty
// rendering into custom mode.
func (c Configuration) Custom() bool {
	return len(c.TeamStrengthOverrides) > 0 ||
		len(c.TeamAttackOverrides) > 0 ||
		len(c.TeamDefenceOverrides) > 0
}

// Overrides adapts the blob to the strength model's override set.
func (c Configuration) Overrides() team.Overrides {
	return team.Overrides{
		Strength: c.TeamStrengthOverrides,
		Attack:   c.TeamAttackOverrides,
		Defence:  c.TeamDefenceOverrides,
	}
}

// Clone deep-copies the configuration so callers can mutate override maps
// without aliasing the stored blob.
func (c Configuration) Clone() Configuration {
	out := c
	out.TeamStrengthOverrides = cloneMap(c.TeamStrengthOverrides)
	out.TeamAttackOverrides = cloneMap(c.TeamAttackOverrides)
	out.TeamDefenceOverrides = cloneMap(c.TeamDefenceOverrides)
	return out
}

func cloneMap(m map[int]int) map[int]int {
	if m == nil {
		return nil
	}
	out := make(map[int]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Record is a stored configuration row.
type Record struct {
	UserID        string
	Configuration Configuration
	UpdatedAt     time.Time
}

// Store is a configuration backend. Remote implementations key by the
// authenticated user id; the local blob ignores it.
type Store interface {
	Get(ctx context.Context, userID string) (Record, bool, error)
	Upsert(ctx context.Context, userID string, cfg Configuration) error
	Delete(ctx context.Context, userID string) error
}
