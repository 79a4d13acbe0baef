package httpapi

import (
	"net/http"
)

type contributionDTO struct {
	PlayerID      int    `json:"playerId"`
	WebName       string `json:"webName"`
	TeamID        int    `json:"teamId"`
	Position      int    `json:"position"`
	IsCaptain     bool   `json:"isCaptain,omitempty"`
	IsViceCaptain bool   `json:"isViceCaptain,omitempty"`

	DisplayPoints     int  `json:"displayPoints"`
	Multiplier        int  `json:"multiplier"`
	ContributedPoints int  `json:"contributedPoints"`
	Settled           bool `json:"settled"`
	DidNotPlay        bool `json:"didNotPlay,omitempty"`
	WasAutoSubbedOut  bool `json:"wasAutoSubbedOut,omitempty"`
	WasAutoSubbedIn   bool `json:"wasAutoSubbedIn,omitempty"`
}

type gameweekTotalsDTO struct {
	RawPoints         int `json:"rawPoints"`
	TransferCost      int `json:"transferCost"`
	GameweekPoints    int `json:"gameweekPoints"`
	SeasonTotal       int `json:"seasonTotal"`
	FreeTransfersUsed int `json:"freeTransfersUsed"`
}

type managerLiveDTO struct {
	ManagerID int `json:"managerId"`
	Gameweek  int `json:"gameweek"`

	ActiveChip string `json:"activeChip,omitempty"`
	ChipToken  string `json:"chipToken,omitempty"`

	Contributions []contributionDTO `json:"contributions"`
	Totals        gameweekTotalsDTO `json:"totals"`

	PlayersLeft       int  `json:"playersLeft"`
	ViceActing        bool `json:"viceActing,omitempty"`
	SubsApplied       bool `json:"subsApplied"`
	NextFreeTransfers int  `json:"nextFreeTransfers"`
}

func (h *Handler) GetManagerLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerLive")
	defer span.End()

	managerID, err := pathInt(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gw, ok, err := queryInt(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		gw, err = h.currentGameweek(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "resolve current gameweek failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.scoringService.ManagerGameweek(ctx, managerID, gw)
	if err != nil {
		h.logger.WarnContext(ctx, "manager gameweek failed", "manager_id", managerID, "gw", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	contributions := make([]contributionDTO, 0, len(result.Contributions))
	for _, c := range result.Contributions {
		contributions = append(contributions, contributionDTO{
			PlayerID:          c.PlayerID,
			WebName:           c.WebName,
			TeamID:            c.TeamID,
			Position:          c.Position,
			IsCaptain:         c.IsCaptain,
			IsViceCaptain:     c.IsViceCaptain,
			DisplayPoints:     c.DisplayPoints,
			Multiplier:        c.Multiplier,
			ContributedPoints: c.ContributedPoints,
			Settled:           c.Settled,
			DidNotPlay:        c.DidNotPlay,
			WasAutoSubbedOut:  c.WasAutoSubbedOut,
			WasAutoSubbedIn:   c.WasAutoSubbedIn,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, managerLiveDTO{
		ManagerID:  result.ManagerID,
		Gameweek:   result.Gameweek,
		ActiveChip: string(result.ActiveChip),
		ChipToken:  result.ChipToken,
		Contributions: contributions,
		Totals: gameweekTotalsDTO{
			RawPoints:         result.Totals.RawPoints,
			TransferCost:      result.Totals.TransferCost,
			GameweekPoints:    result.Totals.GameweekPoints,
			SeasonTotal:       result.Totals.SeasonTotal,
			FreeTransfersUsed: result.Totals.FreeTransfersUsed,
		},
		PlayersLeft:       result.PlayersLeft,
		ViceActing:        result.ViceActing,
		SubsApplied:       result.SubsApplied,
		NextFreeTransfers: result.NextFreeTransfers,
	})
}

type transferImpactDTO struct {
	PlayerOutID   int    `json:"playerOutId,omitempty"`
	PlayerOutName string `json:"playerOutName,omitempty"`
	PlayerInID    int    `json:"playerInId,omitempty"`
	PlayerInName  string `json:"playerInName,omitempty"`
	PointImpact   int    `json:"pointImpact"`
	Derived       bool   `json:"derived,omitempty"`
}

type managerTransfersDTO struct {
	ManagerID int                 `json:"managerId"`
	Gameweek  int                 `json:"gameweek"`
	Impacts   []transferImpactDTO `json:"impacts"`
}

func (h *Handler) GetManagerTransfers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetManagerTransfers")
	defer span.End()

	managerID, err := pathInt(r, "managerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	gw, ok, err := queryInt(r, "gw")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		gw, err = h.currentGameweek(ctx)
		if err != nil {
			h.logger.WarnContext(ctx, "resolve current gameweek failed", "error", err)
			writeError(ctx, w, err)
			return
		}
	}

	impacts, err := h.transferService.Impacts(ctx, managerID, gw)
	if err != nil {
		h.logger.WarnContext(ctx, "transfer impacts failed", "manager_id", managerID, "gw", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]transferImpactDTO, 0, len(impacts))
	for _, impact := range impacts {
		items = append(items, transferImpactDTO{
			PlayerOutID:   impact.PlayerOutID,
			PlayerOutName: impact.PlayerOutName,
			PlayerInID:    impact.PlayerInID,
			PlayerInName:  impact.PlayerInName,
			PointImpact:   impact.PointImpact,
			Derived:       impact.Derived,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, managerTransfersDTO{
		ManagerID: managerID,
		Gameweek:  gw,
		Impacts:   items,
	})
}
