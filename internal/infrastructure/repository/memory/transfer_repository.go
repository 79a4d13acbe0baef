package memory

import (
	"context"
	"sync"

	"github.com/fplstack/companion/internal/domain/transfers"
)

type TransferRepository struct {
	mu   sync.RWMutex
	rows []transfers.Transfer
}

func NewTransferRepository(rows []transfers.Transfer) *TransferRepository {
	return &TransferRepository{rows: append([]transfers.Transfer(nil), rows...)}
}

func (r *TransferRepository) ListByManagerAndGameweek(_ context.Context, managerID, gw int) ([]transfers.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []transfers.Transfer
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.Gameweek == gw {
			out = append(out, row)
		}
	}
	return out, nil
}
