package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/platform/logging"
	"github.com/fplstack/companion/internal/usecase"
)

type Handler struct {
	scheduleService   *usecase.ScheduleService
	standingsService  *usecase.StandingsService
	scoringService    *usecase.LiveScoringService
	transferService   *usecase.TransferService
	comparisonService *usecase.ComparisonService
	configService     *usecase.ConfigService
	gameweekRepo      gameweek.Repository
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	scheduleService *usecase.ScheduleService,
	standingsService *usecase.StandingsService,
	scoringService *usecase.LiveScoringService,
	transferService *usecase.TransferService,
	comparisonService *usecase.ComparisonService,
	configService *usecase.ConfigService,
	gameweekRepo gameweek.Repository,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scheduleService:   scheduleService,
		standingsService:  standingsService,
		scoringService:    scoringService,
		transferService:   transferService,
		comparisonService: comparisonService,
		configService:     configService,
		gameweekRepo:      gameweekRepo,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// currentGameweek resolves the scoring round requests default to: the one
// before the upcoming deadline, clamped to the season bounds.
func (h *Handler) currentGameweek(ctx context.Context) (int, error) {
	gameweeks, err := h.gameweekRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list gameweeks: %w", err)
	}

	next, ok := gameweek.Next(gameweeks)
	if !ok {
		return gameweek.Last, nil
	}
	if next.ID <= gameweek.First {
		return gameweek.First, nil
	}
	return next.ID - 1, nil
}

func pathInt(r *http.Request, key string) (int, error) {
	raw := r.PathValue(key)
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}

func queryInt(r *http.Request, key string) (int, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, false, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, true, nil
}

func queryBool(r *http.Request, key string) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", usecase.ErrInvalidInput, key, raw)
	}
	return value, nil
}

func queryFacet(r *http.Request, key string) (team.Facet, error) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(key)))
	switch raw {
	case "", string(team.FacetOverall):
		return team.FacetOverall, nil
	case string(team.FacetAttack):
		return team.FacetAttack, nil
	case string(team.FacetDefence):
		return team.FacetDefence, nil
	default:
		return "", fmt.Errorf("%w: unknown facet %q", usecase.ErrInvalidInput, raw)
	}
}
