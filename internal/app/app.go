package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/valyala/fasthttp"

	"github.com/fplstack/companion/internal/config"
	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/league"
	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/standings"
	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/domain/transfers"
	"github.com/fplstack/companion/internal/domain/userconfig"
	"github.com/fplstack/companion/internal/infrastructure/account/session"
	"github.com/fplstack/companion/internal/infrastructure/localstore"
	"github.com/fplstack/companion/internal/infrastructure/postgrest"
	cacherepo "github.com/fplstack/companion/internal/infrastructure/repository/cache"
	"github.com/fplstack/companion/internal/infrastructure/repository/memory"
	"github.com/fplstack/companion/internal/infrastructure/repository/postgres"
	"github.com/fplstack/companion/internal/interfaces/httpapi"
	"github.com/fplstack/companion/internal/platform/cache"
	"github.com/fplstack/companion/internal/platform/logging"
	"github.com/fplstack/companion/internal/platform/resilience"
	"github.com/fplstack/companion/internal/usecase"
)

// App owns the composed service graph and its lifecycle: the HTTP server, the
// background refresh loop and the database handle when postgres is active.
type App struct {
	Server *http.Server

	refresh        *usecase.RefreshService
	refreshEnabled bool
	db             *sqlx.DB
	logger         *logging.Logger
}

type repositories struct {
	teamReader team.StrengthReader
	fixtures   fixture.Repository
	gameweeks  gameweek.Repository
	players    player.Repository
	stats      playerstats.Repository
	squads     squad.Repository
	managers   manager.Repository
	leagues    league.Repository
	standings  standings.Repository
	transfers  transfers.Repository
	remoteCfg  userconfig.Store
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	// Services coordinate through the store even when the repository
	// decorators are off: configuration changes invalidate by prefix and the
	// refresh loop expires live domains.
	store := cache.NewStore(cfg.CacheTTL)

	var db *sqlx.DB
	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageMemory:
		repos = newMemoryRepositories()
	default:
		var err error
		db, err = openDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		repos = newPostgresRepositories(db)
	}

	if cfg.StrengthAPIEnabled {
		repos.teamReader = postgrest.NewTeamReader(postgrest.ClientConfig{
			HTTPClient: &fasthttp.Client{},
			BaseURL:    cfg.StrengthAPIBaseURL,
			APIKey:     cfg.StrengthAPIKey,
			Timeout:    cfg.StrengthAPITimeout,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StrengthAPICircuitEnabled,
				FailureThreshold: cfg.StrengthAPICircuitFailureCount,
				OpenTimeout:      cfg.StrengthAPICircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StrengthAPICircuitHalfOpenMaxReq,
			},
		})
	}

	if cfg.CacheEnabled {
		repos.standings = cacherepo.NewStandingsRepository(repos.standings, store, cfg.CacheTTL)
		repos.managers = cacherepo.NewManagerRepository(repos.managers, store)
		repos.squads = cacherepo.NewSquadRepository(repos.squads, store, cfg.CacheTTL)
		repos.transfers = cacherepo.NewTransferRepository(repos.transfers, store)
	}

	scoring := usecase.NewLiveScoringService(repos.squads, repos.stats, repos.players, repos.managers)

	configService := usecase.NewConfigService(
		localstore.New(cfg.LocalConfigPath),
		repos.remoteCfg,
		store,
		userconfig.Configuration{LeagueID: cfg.DefaultLeagueID, ManagerID: cfg.DefaultManager},
		logger,
	)
	if err := configService.Load(ctx); err != nil {
		closeDB(db, logger)
		return nil, fmt.Errorf("load user configuration: %w", err)
	}

	refresh, err := usecase.NewRefreshService(repos.fixtures, repos.gameweeks, store, logger)
	if err != nil {
		closeDB(db, logger)
		return nil, err
	}

	verifier := session.NewClient(
		&http.Client{Timeout: cfg.SessionTimeout},
		cfg.SessionBaseURL,
		cfg.SessionIntrospectPath,
		logger,
	)

	handler := httpapi.NewHandler(
		usecase.NewScheduleService(repos.teamReader, repos.fixtures, repos.gameweeks, store),
		usecase.NewStandingsService(repos.leagues, repos.standings, repos.fixtures, scoring),
		scoring,
		usecase.NewTransferService(repos.transfers, repos.squads, repos.stats, repos.players),
		usecase.NewComparisonService(repos.players, repos.stats),
		configService,
		repos.gameweeks,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return &App{
		Server:         server,
		refresh:        refresh,
		refreshEnabled: cfg.RefreshEnabled,
		db:             db,
		logger:         logger,
	}, nil
}

// Start launches the background refresh loop. The HTTP server is started by
// the caller so it controls the listen error path.
func (a *App) Start(ctx context.Context) error {
	if !a.refreshEnabled {
		a.logger.Info("refresh loop disabled", "reason", "REFRESH_ENABLED=false")
		return nil
	}
	return a.refresh.Start(ctx)
}

func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error

	if a.refreshEnabled {
		if err := a.refresh.Stop(); err != nil {
			firstErr = fmt.Errorf("stop refresh loop: %w", err)
		}
	}

	if err := a.Server.Shutdown(ctx); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("shutdown http server: %w", err)
	}

	closeDB(a.db, a.logger)
	return firstErr
}

func newMemoryRepositories() repositories {
	return repositories{
		teamReader: memory.NewTeamRepository(memory.SeedTeams()),
		fixtures:   memory.NewFixtureRepository(memory.SeedFixtures()),
		gameweeks:  memory.NewGameweekRepository(memory.SeedGameweeks()),
		players:    memory.NewPlayerRepository(memory.SeedPlayers()),
		stats:      memory.NewPlayerStatsRepository(memory.SeedStats()),
		squads:     memory.NewSquadRepository(memory.SeedPicks()),
		managers:   memory.NewManagerRepository(memory.SeedManagers(), memory.SeedHistory()),
		leagues:    memory.NewLeagueRepository(memory.SeedLeague()),
		standings:  memory.NewStandingsRepository(memory.SeedLeagueID, memory.SeedStandings()),
		transfers:  memory.NewTransferRepository(memory.SeedTransfers()),
		remoteCfg:  memory.NewUserConfigStore(),
	}
}

func newPostgresRepositories(db *sqlx.DB) repositories {
	return repositories{
		teamReader: postgres.NewTeamRepository(db),
		fixtures:   postgres.NewFixtureRepository(db),
		gameweeks:  postgres.NewGameweekRepository(db),
		players:    postgres.NewPlayerRepository(db),
		stats:      postgres.NewPlayerStatsRepository(db),
		squads:     postgres.NewSquadRepository(db),
		managers:   postgres.NewManagerRepository(db),
		leagues:    postgres.NewLeagueRepository(db),
		standings:  postgres.NewStandingsRepository(db),
		transfers:  postgres.NewTransferRepository(db),
		remoteCfg:  postgres.NewUserConfigRepository(db),
	}
}

func closeDB(db *sqlx.DB, logger *logging.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Warn("close database", "error", err)
	}
}
