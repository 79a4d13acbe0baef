package httpapi

import (
	"net/http"

	"github.com/fplstack/companion/internal/domain/schedule"
	"github.com/fplstack/companion/internal/usecase"
)

type scheduleOpponentDTO struct {
	TeamID    int    `json:"teamId"`
	ShortName string `json:"shortName"`
	IsHome    bool   `json:"isHome"`

	Difficulty        *int `json:"difficulty,omitempty"`
	AttackDifficulty  *int `json:"attackDifficulty,omitempty"`
	DefenceDifficulty *int `json:"defenceDifficulty,omitempty"`
}

type scheduleRowDTO struct {
	TeamID    int    `json:"teamId"`
	ShortName string `json:"shortName"`
	FullName  string `json:"fullName"`

	// Fixtures is aligned with the matrix gameweek list; an empty inner slice
	// is a blank gameweek, two or more entries a double.
	Fixtures [][]scheduleOpponentDTO `json:"fixtures"`
}

type scheduleMatrixDTO struct {
	Gameweeks []int            `json:"gameweeks"`
	Rows      []scheduleRowDTO `json:"rows"`
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	window, _, err := queryInt(r, "gameweeks")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cfg, _ := h.configService.Current()
	matrix, err := h.scheduleService.Matrix(ctx, usecase.MatrixInput{
		Gameweeks: window,
		Overrides: cfg.Overrides(),
		Custom:    cfg.Custom(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "build schedule matrix failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	teams, err := h.scheduleService.NormalizedTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "load teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	names := make(map[int][2]string, len(teams))
	for _, t := range teams {
		names[t.ID] = [2]string{t.ShortName, t.FullName}
	}

	gameweeks := matrix.Gameweeks()
	rows := make([]scheduleRowDTO, 0, len(matrix.TeamIDs()))
	for _, teamID := range matrix.TeamIDs() {
		row := scheduleRowDTO{
			TeamID:    teamID,
			ShortName: names[teamID][0],
			FullName:  names[teamID][1],
			Fixtures:  make([][]scheduleOpponentDTO, 0, len(gameweeks)),
		}
		for _, gw := range gameweeks {
			opponents := matrix.Opponents(teamID, gw)
			cell := make([]scheduleOpponentDTO, 0, len(opponents))
			for _, opp := range opponents {
				cell = append(cell, scheduleOpponentDTO{
					TeamID:            opp.TeamID,
					ShortName:         opp.ShortName,
					IsHome:            opp.IsHome,
					Difficulty:        opp.Difficulty,
					AttackDifficulty:  opp.AttackDifficulty,
					DefenceDifficulty: opp.DefenceDifficulty,
				})
			}
			row.Fixtures = append(row.Fixtures, cell)
		}
		rows = append(rows, row)
	}

	writeSuccess(ctx, w, http.StatusOK, scheduleMatrixDTO{
		Gameweeks: gameweeks,
		Rows:      rows,
	})
}

type teamRunDTO struct {
	TeamID     int     `json:"teamId"`
	ShortName  string  `json:"shortName"`
	Average    float64 `json:"average"`
	SampleSize int     `json:"sampleSize"`
}

type recommendationDTO struct {
	Facet        string       `json:"facet"`
	EasiestShort []teamRunDTO `json:"easiestShort"`
	EasiestLong  []teamRunDTO `json:"easiestLong"`
	HardestShort []teamRunDTO `json:"hardestShort"`
	HardestLong  []teamRunDTO `json:"hardestLong"`
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRecommendations")
	defer span.End()

	facet, err := queryFacet(r, "facet")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cfg, _ := h.configService.Current()
	rec, err := h.scheduleService.Recommendations(ctx, facet, cfg.Overrides(), cfg.Custom())
	if err != nil {
		h.logger.WarnContext(ctx, "build recommendations failed", "facet", facet, "error", err)
		writeError(ctx, w, err)
		return
	}

	teams, err := h.scheduleService.NormalizedTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "load teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	shortNames := make(map[int]string, len(teams))
	for _, t := range teams {
		shortNames[t.ID] = t.ShortName
	}

	toDTO := func(runs []schedule.TeamRun) []teamRunDTO {
		out := make([]teamRunDTO, 0, len(runs))
		for _, run := range runs {
			out = append(out, teamRunDTO{
				TeamID:     run.TeamID,
				ShortName:  shortNames[run.TeamID],
				Average:    run.Average,
				SampleSize: run.SampleSize,
			})
		}
		return out
	}

	writeSuccess(ctx, w, http.StatusOK, recommendationDTO{
		Facet:        string(facet),
		EasiestShort: toDTO(rec.EasiestShort),
		EasiestLong:  toDTO(rec.EasiestLong),
		HardestShort: toDTO(rec.HardestShort),
		HardestLong:  toDTO(rec.HardestLong),
	})
}
