package squad

// GameweekTotals is the authoritative reconciliation of a manager's gameweek.
type GameweekTotals struct {
	RawPoints      int
	TransferCost   int
	GameweekPoints int
	SeasonTotal    int
	// FreeTransfersUsed is what the header displays next to the hit: under a
	// wildcard or free hit every transfer was free.
	FreeTransfersUsed int
}

// Reconcile folds the resolved contributions and the manager's transfer
// activity into gameweek and season totals. A wildcard or free hit zeroes the
// hit, as does the backend writing transferCost = 0 for a 3+ transfer week.
func Reconcile(result Result, transferCost, transfersMade int, chip Chip, previousSeasonTotal int) GameweekTotals {
	cost := transferCost
	free := transfersMade - costToTransfers(transferCost)
	if free < 0 {
		free = 0
	}

	if chip == ChipWildcard || chip == ChipFreeHit || (transfersMade >= 3 && transferCost == 0) {
		cost = 0
		free = transfersMade
	}

	return GameweekTotals{
		RawPoints:         result.RawPoints,
		TransferCost:      cost,
		GameweekPoints:    result.RawPoints - cost,
		SeasonTotal:       previousSeasonTotal + (result.RawPoints - cost),
		FreeTransfersUsed: free,
	}
}

// FreeTransfersAvailable is the allowance for the upcoming deadline: one in
// gameweek 1, two when the previous gameweek made no transfers, otherwise
// one. Carrying more than one banked transfer is not modelled.
func FreeTransfersAvailable(upcomingGameweek, previousTransfersMade int) int {
	if upcomingGameweek <= 1 {
		return 1
	}
	if previousTransfersMade == 0 {
		return 2
	}
	return 1
}

// Each point hit buys one extra transfer at four points.
func costToTransfers(transferCost int) int {
	if transferCost <= 0 {
		return 0
	}
	return transferCost / 4
}
