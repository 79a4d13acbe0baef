package httpapi

import (
	"fmt"
	"net/http"

	"github.com/fplstack/companion/internal/usecase"
)

type comparedPlayerDTO struct {
	ID       int    `json:"id"`
	WebName  string `json:"webName"`
	Position string `json:"position"`
}

type comparisonLineDTO struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	P1Value float64 `json:"p1Value"`
	P2Value float64 `json:"p2Value"`
	Leader  string  `json:"leader"`
}

type comparisonDTO struct {
	PlayerOne comparedPlayerDTO   `json:"playerOne"`
	PlayerTwo comparedPlayerDTO   `json:"playerTwo"`
	PerNinety bool                `json:"perNinety"`
	Lines     []comparisonLineDTO `json:"lines"`
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	p1ID, ok, err := queryInt(r, "p1")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: p1 is required", usecase.ErrInvalidInput))
		return
	}

	p2ID, ok, err := queryInt(r, "p2")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: p2 is required", usecase.ErrInvalidInput))
		return
	}

	perNinety, err := queryBool(r, "perNinety")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.comparisonService.Compare(ctx, p1ID, p2ID, perNinety)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "p1", p1ID, "p2", p2ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	lines := make([]comparisonLineDTO, 0, len(result.Lines))
	for _, line := range result.Lines {
		lines = append(lines, comparisonLineDTO{
			Key:     line.Stat.Key,
			Label:   line.Stat.Label,
			P1Value: line.P1Value,
			P2Value: line.P2Value,
			Leader:  string(line.Leader),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, comparisonDTO{
		PlayerOne: comparedPlayerDTO{
			ID:       result.PlayerOne.ID,
			WebName:  result.PlayerOne.WebName,
			Position: result.PlayerOne.Position.String(),
		},
		PlayerTwo: comparedPlayerDTO{
			ID:       result.PlayerTwo.ID,
			WebName:  result.PlayerTwo.WebName,
			Position: result.PlayerTwo.Position.String(),
		},
		PerNinety: result.PerNinety,
		Lines:     lines,
	})
}
