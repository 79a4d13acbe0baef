package usecase

import (
	"context"
	"fmt"

	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/transfers"
)

// TransferService explains a manager's gameweek transfers: who came in, who
// went out and the point swing each move produced.
type TransferService struct {
	transferRepo transfers.Repository
	squadRepo    squad.Repository
	statsRepo    playerstats.Repository
	playerRepo   player.Repository
}

func NewTransferService(transferRepo transfers.Repository, squadRepo squad.Repository, statsRepo playerstats.Repository, playerRepo player.Repository) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		squadRepo:    squadRepo,
		statsRepo:    statsRepo,
		playerRepo:   playerRepo,
	}
}

// TransferImpact is one resolved transfer pairing with names attached. An
// empty name means the counterpart is missing from the pairing.
type TransferImpact struct {
	PlayerOutID   int
	PlayerOutName string
	PlayerInID    int
	PlayerInName  string
	PointImpact   int

	// Derived marks pairs reconstructed from squad diffs rather than the
	// transfer log.
	Derived bool
}

// Impacts lists the transfer impacts for one manager gameweek. The transfer
// log is authoritative; when it has no rows the pairs are derived by diffing
// this gameweek's squad against the previous one.
func (s *TransferService) Impacts(ctx context.Context, managerID, gw int) ([]TransferImpact, error) {
	ctx, span := startUsecaseSpan(ctx, "TransferService.Impacts")
	defer span.End()

	if managerID <= 0 {
		return nil, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}
	if gw <= 0 {
		return nil, fmt.Errorf("%w: gameweek is required", ErrInvalidInput)
	}

	logged, err := s.transferRepo.ListByManagerAndGameweek(ctx, managerID, gw)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}

	var impacts []transfers.Impact
	derived := false
	if len(logged) > 0 {
		impacts = make([]transfers.Impact, 0, len(logged))
		for _, row := range logged {
			impacts = append(impacts, transfers.Impact{
				PlayerOutID: row.PlayerOutID,
				PlayerInID:  row.PlayerInID,
			})
		}
	} else {
		derived = true
		impacts, err = s.deriveFromPicks(ctx, managerID, gw)
		if err != nil {
			return nil, err
		}
	}
	if len(impacts) == 0 {
		return nil, nil
	}

	points, err := s.displayPoints(ctx, impacts, gw)
	if err != nil {
		return nil, err
	}

	ids := pairedPlayerIDs(impacts)
	players, err := s.playerRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	names := make(map[int]string, len(players))
	for _, p := range players {
		names[p.ID] = p.WebName
	}

	out := make([]TransferImpact, 0, len(impacts))
	for _, im := range impacts {
		out = append(out, TransferImpact{
			PlayerOutID:   im.PlayerOutID,
			PlayerOutName: names[im.PlayerOutID],
			PlayerInID:    im.PlayerInID,
			PlayerInName:  names[im.PlayerInID],
			PointImpact:   points[im.PlayerInID] - points[im.PlayerOutID],
			Derived:       derived,
		})
	}
	return out, nil
}

func (s *TransferService) deriveFromPicks(ctx context.Context, managerID, gw int) ([]transfers.Impact, error) {
	if gw == 1 {
		return nil, nil
	}

	current, err := s.squadRepo.ListPicks(ctx, managerID, gw)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	previous, err := s.squadRepo.ListPicks(ctx, managerID, gw-1)
	if err != nil {
		return nil, fmt.Errorf("list previous picks: %w", err)
	}
	if len(current) == 0 || len(previous) == 0 {
		return nil, nil
	}

	// Derive wants the point map up front; resolve it over the union of both
	// squads since any member can appear in a pair.
	ids := make([]int, 0, len(current)+len(previous))
	for _, p := range current {
		ids = append(ids, p.PlayerID)
	}
	for _, p := range previous {
		ids = append(ids, p.PlayerID)
	}
	points, err := s.pointsByPlayer(ctx, ids, gw)
	if err != nil {
		return nil, err
	}

	return transfers.Derive(previous, current, points), nil
}

func (s *TransferService) displayPoints(ctx context.Context, impacts []transfers.Impact, gw int) (map[int]int, error) {
	return s.pointsByPlayer(ctx, pairedPlayerIDs(impacts), gw)
}

// pairedPlayerIDs collects the real player ids from a pair list; a zero id
// marks an absent counterpart and has nothing to look up.
func pairedPlayerIDs(impacts []transfers.Impact) []int {
	ids := make([]int, 0, len(impacts)*2)
	for _, im := range impacts {
		if im.PlayerOutID > 0 {
			ids = append(ids, im.PlayerOutID)
		}
		if im.PlayerInID > 0 {
			ids = append(ids, im.PlayerInID)
		}
	}
	return ids
}

func (s *TransferService) pointsByPlayer(ctx context.Context, playerIDs []int, gw int) (map[int]int, error) {
	rows, err := s.statsRepo.ListByPlayersAndGameweek(ctx, playerIDs, gw)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	points := make(map[int]int, len(rows))
	for _, row := range rows {
		points[row.PlayerID] += row.DisplayPoints()
	}
	return points, nil
}
