package squad

import "testing"

func TestReconcile_TransferHit(t *testing.T) {
	t.Parallel()

	totals := Reconcile(Result{RawPoints: 62}, 4, 2, ChipNone, 100)
	if totals.GameweekPoints != 58 {
		t.Fatalf("hit must be deducted: got %d want 58", totals.GameweekPoints)
	}
	if totals.SeasonTotal != 158 {
		t.Fatalf("season total must accumulate the net score: got %d", totals.SeasonTotal)
	}
}

func TestReconcile_FreeHitZeroesHit(t *testing.T) {
	t.Parallel()

	totals := Reconcile(Result{RawPoints: 62}, 4, 8, ChipFreeHit, 0)
	if totals.GameweekPoints != 62 {
		t.Fatalf("free hit must make every transfer free: got %d", totals.GameweekPoints)
	}
	if totals.FreeTransfersUsed != 8 {
		t.Fatalf("every transfer counts as free under the chip: got %d", totals.FreeTransfersUsed)
	}
}

func TestReconcile_WildcardZeroesHit(t *testing.T) {
	t.Parallel()

	totals := Reconcile(Result{RawPoints: 40}, 12, 6, ChipWildcard, 500)
	if totals.TransferCost != 0 || totals.GameweekPoints != 40 || totals.SeasonTotal != 540 {
		t.Fatalf("wildcard must zero the hit: %+v", totals)
	}
}

func TestReconcile_ManyFreeTransfersWithoutChip(t *testing.T) {
	t.Parallel()

	// The backend writes cost 0 for a rolled-transfer week; display treats
	// them all as free.
	totals := Reconcile(Result{RawPoints: 50}, 0, 4, ChipNone, 0)
	if totals.GameweekPoints != 50 || totals.FreeTransfersUsed != 4 {
		t.Fatalf("rolled transfers must display as free: %+v", totals)
	}
}

func TestFreeTransfersAvailable(t *testing.T) {
	t.Parallel()

	if got := FreeTransfersAvailable(1, 0); got != 1 {
		t.Fatalf("gameweek 1 allowance must be 1, got %d", got)
	}
	if got := FreeTransfersAvailable(10, 0); got != 2 {
		t.Fatalf("an idle previous gameweek banks a transfer, got %d", got)
	}
	if got := FreeTransfersAvailable(10, 2); got != 1 {
		t.Fatalf("an active previous gameweek resets to 1, got %d", got)
	}
}
