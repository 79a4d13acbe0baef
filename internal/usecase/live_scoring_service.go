package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
)

// LiveScoringService resolves a manager's gameweek end to end: picks, live
// stats, auto-subs, captaincy fallthrough and the reconciled point totals.
type LiveScoringService struct {
	squadRepo   squad.Repository
	statsRepo   playerstats.Repository
	playerRepo  player.Repository
	managerRepo manager.Repository
}

func NewLiveScoringService(squadRepo squad.Repository, statsRepo playerstats.Repository, playerRepo player.Repository, managerRepo manager.Repository) *LiveScoringService {
	return &LiveScoringService{
		squadRepo:   squadRepo,
		statsRepo:   statsRepo,
		playerRepo:  playerRepo,
		managerRepo: managerRepo,
	}
}

// PlayerContribution is one squad slot with identity attached.
type PlayerContribution struct {
	squad.Contribution

	WebName string
	TeamID  int
	Settled bool
}

// ManagerGameweek is the full live picture for one manager and gameweek.
type ManagerGameweek struct {
	ManagerID int
	Gameweek  int

	ActiveChip squad.Chip
	ChipToken  string

	Contributions []PlayerContribution
	Totals        squad.GameweekTotals

	// PlayersLeft counts counted players whose fixture has not settled.
	PlayersLeft int
	ViceActing  bool
	SubsApplied bool

	// NextFreeTransfers is the free-transfer budget at the upcoming deadline.
	NextFreeTransfers int
}

// ManagerGameweek loads and reconciles one manager gameweek.
func (s *LiveScoringService) ManagerGameweek(ctx context.Context, managerID, gw int) (ManagerGameweek, error) {
	ctx, span := startUsecaseSpan(ctx, "LiveScoringService.ManagerGameweek")
	defer span.End()

	if managerID <= 0 {
		return ManagerGameweek{}, fmt.Errorf("%w: manager id is required", ErrInvalidInput)
	}
	if gw <= 0 {
		return ManagerGameweek{}, fmt.Errorf("%w: gameweek is required", ErrInvalidInput)
	}

	picks, err := s.squadRepo.ListPicks(ctx, managerID, gw)
	if err != nil {
		return ManagerGameweek{}, fmt.Errorf("list picks: %w", err)
	}
	if len(picks) == 0 {
		return ManagerGameweek{}, fmt.Errorf("%w: picks manager=%d gw=%d", ErrNotFound, managerID, gw)
	}

	playerIDs := make([]int, 0, len(picks))
	for _, p := range picks {
		playerIDs = append(playerIDs, p.PlayerID)
	}

	var (
		statRows    []playerstats.GameweekStats
		players     []player.Player
		history     manager.GameweekHistory
		prevHistory manager.GameweekHistory
	)

	loaders := pool.New().WithContext(ctx).WithCancelOnError()
	loaders.Go(func(ctx context.Context) error {
		rows, err := s.statsRepo.ListByPlayersAndGameweek(ctx, playerIDs, gw)
		if err != nil {
			return fmt.Errorf("list player stats: %w", err)
		}
		statRows = rows
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		rows, err := s.playerRepo.ListByIDs(ctx, playerIDs)
		if err != nil {
			return fmt.Errorf("list players: %w", err)
		}
		players = rows
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		row, ok, err := s.managerRepo.GetHistoryRow(ctx, managerID, gw)
		if err != nil {
			return fmt.Errorf("get history row: %w", err)
		}
		if ok {
			history = row
		}
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		if gw == 1 {
			return nil
		}
		row, ok, err := s.managerRepo.GetHistoryRow(ctx, managerID, gw-1)
		if err != nil {
			return fmt.Errorf("get previous history row: %w", err)
		}
		if ok {
			prevHistory = row
		}
		return nil
	})
	if err := loaders.Wait(); err != nil {
		return ManagerGameweek{}, err
	}

	stats := make(map[int]playerstats.GameweekStats, len(statRows))
	for _, row := range statRows {
		// A double gameweek yields one row per fixture; fold them into one
		// line per player.
		if existing, ok := stats[row.PlayerID]; ok {
			row = mergeStats(existing, row)
		}
		stats[row.PlayerID] = row
	}

	result := squad.Resolve(picks, stats, history.ActiveChip)
	totals := squad.Reconcile(result, history.TransferCost, history.TransfersMade, history.ActiveChip, prevHistory.TotalPoints)

	byID := make(map[int]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	out := ManagerGameweek{
		ManagerID:         managerID,
		Gameweek:          gw,
		ActiveChip:        history.ActiveChip,
		ChipToken:         manager.ChipToken(history.ActiveChip, gw),
		Totals:            totals,
		ViceActing:        result.ViceActing,
		SubsApplied:       result.SubsApplied,
		NextFreeTransfers: squad.FreeTransfersAvailable(gw+1, history.TransfersMade),
	}

	for _, c := range result.Contributions {
		settled := false
		if row, ok := stats[c.PlayerID]; ok {
			settled = row.MatchSettled()
		}
		if counted(c, history.ActiveChip) && !settled {
			out.PlayersLeft++
		}
		out.Contributions = append(out.Contributions, PlayerContribution{
			Contribution: c,
			WebName:      byID[c.PlayerID].WebName,
			TeamID:       byID[c.PlayerID].TeamID,
			Settled:      settled,
		})
	}

	return out, nil
}

// Live is the projector-facing slice of a reconciled gameweek.
func (m ManagerGameweek) Live() (gwPoints, seasonTotal int) {
	return m.Totals.GameweekPoints, m.Totals.SeasonTotal
}

func counted(c squad.Contribution, chip squad.Chip) bool {
	if chip == squad.ChipBenchBoost {
		return true
	}
	return (c.IsStarter() && !c.WasAutoSubbedOut) || c.WasAutoSubbedIn
}

func mergeStats(a, b playerstats.GameweekStats) playerstats.GameweekStats {
	out := a
	out.Minutes += b.Minutes
	out.Goals += b.Goals
	out.Assists += b.Assists
	out.CleanSheets += b.CleanSheets
	out.Saves += b.Saves
	out.BPS += b.BPS
	out.Bonus += b.Bonus
	// A confirmed fixture's bonus already sits inside its total points, so
	// only provisional rows carry their estimate into the fold.
	out.ProvisionalBonus = pendingBonus(a) + pendingBonus(b)
	out.TotalPoints += b.TotalPoints
	out.ExpectedGoals += b.ExpectedGoals
	out.ExpectedAssists += b.ExpectedAssists
	out.ExpectedGoalsConceded += b.ExpectedGoalsConceded
	out.YellowCards += b.YellowCards
	out.RedCards += b.RedCards
	out.DefensiveContributions += b.DefensiveContributions
	out.MatchPlayed = a.MatchPlayed || b.MatchPlayed
	out.MatchFinished = a.MatchFinished && b.MatchFinished
	out.MatchFinishedProvisional = (a.MatchFinished || a.MatchFinishedProvisional) && (b.MatchFinished || b.MatchFinishedProvisional)
	if a.BonusStatus == playerstats.BonusProvisional || b.BonusStatus == playerstats.BonusProvisional {
		out.BonusStatus = playerstats.BonusProvisional
	}
	return out
}

func pendingBonus(s playerstats.GameweekStats) int {
	if s.BonusStatus == playerstats.BonusConfirmed {
		return 0
	}
	return s.ProvisionalBonus
}
