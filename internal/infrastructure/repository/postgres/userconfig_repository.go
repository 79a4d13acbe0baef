package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/fplstack/companion/internal/domain/userconfig"
	qb "github.com/fplstack/companion/internal/platform/querybuilder"
)

type userConfigRowModel struct {
	UserID    string    `db:"user_id"`
	Config    []byte    `db:"config"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserConfigRepository persists per-user configuration blobs. The blob is
// stored as jsonb so the schema survives configuration field additions.
type UserConfigRepository struct {
	db *sqlx.DB
}

func NewUserConfigRepository(db *sqlx.DB) *UserConfigRepository {
	return &UserConfigRepository{db: db}
}

func (r *UserConfigRepository) Get(ctx context.Context, userID string) (userconfig.Record, bool, error) {
	query, args, err := qb.Select("user_id", "config", "updated_at").From("user_configurations").
		Where(qb.Eq("user_id", userID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return userconfig.Record{}, false, fmt.Errorf("build select user config query: %w", err)
	}

	var row userConfigRowModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return userconfig.Record{}, false, nil
		}
		return userconfig.Record{}, false, fmt.Errorf("get user config: %w", err)
	}

	var cfg userconfig.Configuration
	if err := sonic.Unmarshal(row.Config, &cfg); err != nil {
		return userconfig.Record{}, false, fmt.Errorf("decode user config blob: %w", err)
	}

	return userconfig.Record{
		UserID:        row.UserID,
		Configuration: cfg,
		UpdatedAt:     row.UpdatedAt,
	}, true, nil
}

func (r *UserConfigRepository) Upsert(ctx context.Context, userID string, cfg userconfig.Configuration) error {
	blob, err := sonic.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode user config blob: %w", err)
	}

	row := userConfigRowModel{
		UserID:    userID,
		Config:    blob,
		UpdatedAt: time.Now().UTC(),
	}
	query, args, err := qb.InsertModel("user_configurations", row,
		"ON CONFLICT (user_id) DO UPDATE SET config = EXCLUDED.config, updated_at = EXCLUDED.updated_at")
	if err != nil {
		return fmt.Errorf("build upsert user config query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert user config: %w", err)
	}
	return nil
}

func (r *UserConfigRepository) Delete(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM user_configurations WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("delete user config: %w", err)
	}
	return nil
}
