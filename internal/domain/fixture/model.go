package fixture

import "time"

// Fixture represents one scheduled match with the raw lifecycle flags the
// backend maintains.
type Fixture struct {
	ID                  int
	Gameweek            int
	HomeTeamID          int
	AwayTeamID          int
	HomeScore           *int
	AwayScore           *int
	KickoffAt           time.Time
	Started             bool
	Finished            bool
	FinishedProvisional bool
	Minutes             int
}
