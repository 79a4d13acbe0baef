package fixture

import "context"

type Repository interface {
	ListByGameweek(ctx context.Context, gameweek int) ([]Fixture, error)
	// ListByGameweekRange returns fixtures for gameweeks in [from, to).
	ListByGameweekRange(ctx context.Context, from, to int) ([]Fixture, error)
	ListByIDs(ctx context.Context, ids []int) ([]Fixture, error)
}
