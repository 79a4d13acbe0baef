package httpapi

import (
	"net/http"
)

type standingsRowDTO struct {
	ManagerID   int    `json:"managerId"`
	ManagerName string `json:"managerName"`
	TeamName    string `json:"teamName"`

	Rank       int  `json:"rank"`
	RankChange *int `json:"rankChange,omitempty"`

	TotalPoints    int `json:"totalPoints"`
	GameweekPoints int `json:"gameweekPoints"`
	PlayersLeft    int `json:"playersLeft"`

	CaptainName string `json:"captainName,omitempty"`
	ViceName    string `json:"viceName,omitempty"`
	ActiveChip  string `json:"activeChip,omitempty"`

	// MedalGameweek and MedalTotal are 1..3 for gilded cells, 0 otherwise.
	MedalGameweek int `json:"medalGameweek,omitempty"`
	MedalTotal    int `json:"medalTotal,omitempty"`
}

type standingsTableDTO struct {
	LeagueID int               `json:"leagueId"`
	Gameweek int               `json:"gameweek"`
	Settled  bool              `json:"settled"`
	Rows     []standingsRowDTO `json:"rows"`
}

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	cfg, _ := h.configService.Current()

	leagueID, ok, err := queryInt(r, "league")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		leagueID = cfg.LeagueID
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

	focus := make([]int, 0, 2)
	if cfg.ManagerID > 0 {
		focus = append(focus, cfg.ManagerID)
	}
	if focusID, ok, err := queryInt(r, "focus"); err != nil {
		writeError(ctx, w, err)
		return
	} else if ok && focusID > 0 && focusID != cfg.ManagerID {
		focus = append(focus, focusID)
	}

	table, err := h.standingsService.LiveTable(ctx, leagueID, gw, focus)
	if err != nil {
		h.logger.WarnContext(ctx, "live table failed", "league_id", leagueID, "gw", gw, "error", err)
		writeError(ctx, w, err)
		return
	}

	rows := make([]standingsRowDTO, 0, len(table.Rows))
	for i, row := range table.Rows {
		rows = append(rows, standingsRowDTO{
			ManagerID:      row.ManagerID,
			ManagerName:    row.ManagerName,
			TeamName:       row.TeamName,
			Rank:           row.Rank,
			RankChange:     row.RankChange,
			TotalPoints:    row.TotalPoints,
			GameweekPoints: row.GameweekPoints,
			PlayersLeft:    row.PlayersLeft,
			CaptainName:    row.CaptainName,
			ViceName:       row.ViceName,
			ActiveChip:     row.ActiveChip,
			MedalGameweek:  table.GildGameweek[i],
			MedalTotal:     table.GildTotal[i],
		})
	}

	writeSuccess(ctx, w, http.StatusOK, standingsTableDTO{
		LeagueID: leagueID,
		Gameweek: gw,
		Settled:  table.Settled,
		Rows:     rows,
	})
}
