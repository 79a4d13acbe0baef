package transfers

import (
	"context"
	"time"
)

// Transfer is one row from the canonical transfer log.
type Transfer struct {
	ID               int
	ManagerID        int
	Gameweek         int
	PlayerInID       int
	PlayerOutID      int
	PlayerInCostTen  int
	PlayerOutCostTen int
	MadeAt           time.Time
}

type Repository interface {
	ListByManagerAndGameweek(ctx context.Context, managerID, gameweek int) ([]Transfer, error)
}
