package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/domain/userconfig"
	"github.com/fplstack/companion/internal/usecase"
)

type configDTO struct {
	LeagueID  int `json:"leagueId"`
	ManagerID int `json:"managerId"`

	TeamStrengthOverrides map[int]int `json:"teamStrengthOverrides,omitempty"`
	TeamAttackOverrides   map[int]int `json:"teamAttackOverrides,omitempty"`
	TeamDefenceOverrides  map[int]int `json:"teamDefenceOverrides,omitempty"`

	AuthState string `json:"authState"`
}

func configToDTO(cfg userconfig.Configuration, state usecase.AuthState) configDTO {
	return configDTO{
		LeagueID:              cfg.LeagueID,
		ManagerID:             cfg.ManagerID,
		TeamStrengthOverrides: cfg.TeamStrengthOverrides,
		TeamAttackOverrides:   cfg.TeamAttackOverrides,
		TeamDefenceOverrides:  cfg.TeamDefenceOverrides,
		AuthState:             string(state),
	}
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetConfig")
	defer span.End()

	cfg, state := h.configService.Current()
	writeSuccess(ctx, w, http.StatusOK, configToDTO(cfg, state))
}

type updateConfigRequest struct {
	LeagueID  *int `json:"leagueId" validate:"omitempty,min=0"`
	ManagerID *int `json:"managerId" validate:"omitempty,min=0"`
}

func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateConfig")
	defer span.End()

	var req updateConfigRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if req.LeagueID == nil && req.ManagerID == nil {
		writeError(ctx, w, fmt.Errorf("%w: nothing to update", usecase.ErrInvalidInput))
		return
	}

	if req.LeagueID != nil {
		if err := h.configService.SetLeague(ctx, *req.LeagueID); err != nil {
			h.logger.WarnContext(ctx, "set league failed", "league_id", *req.LeagueID, "error", err)
			writeError(ctx, w, err)
			return
		}
	}
	if req.ManagerID != nil {
		if err := h.configService.SetManager(ctx, *req.ManagerID); err != nil {
			h.logger.WarnContext(ctx, "set manager failed", "manager_id", *req.ManagerID, "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	cfg, state := h.configService.Current()
	writeSuccess(ctx, w, http.StatusOK, configToDTO(cfg, state))
}

type updateOverrideRequest struct {
	Facet  string `json:"facet" validate:"omitempty,oneof=overall attack defence"`
	TeamID int    `json:"teamId" validate:"required,min=1"`
	// Value clears the override when null.
	Value *int `json:"value" validate:"omitempty,min=1,max=5"`
}

func (h *Handler) UpdateConfigOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateConfigOverride")
	defer span.End()

	var req updateOverrideRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	facet := team.Facet(req.Facet)
	if req.Facet == "" {
		facet = team.FacetOverall
	}

	if err := h.configService.SetOverride(ctx, facet, req.TeamID, req.Value); err != nil {
		h.logger.WarnContext(ctx, "set override failed", "facet", facet, "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	cfg, state := h.configService.Current()
	writeSuccess(ctx, w, http.StatusOK, configToDTO(cfg, state))
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignIn")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	if err := h.configService.SignIn(ctx, principal.UserID); err != nil {
		h.logger.WarnContext(ctx, "sign in failed", "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	cfg, state := h.configService.Current()
	writeSuccess(ctx, w, http.StatusOK, configToDTO(cfg, state))
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SignOut")
	defer span.End()

	if err := h.configService.SignOut(ctx); err != nil {
		h.logger.WarnContext(ctx, "sign out failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	cfg, state := h.configService.Current()
	writeSuccess(ctx, w, http.StatusOK, configToDTO(cfg, state))
}
