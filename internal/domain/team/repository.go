package team

import "context"

// StrengthReader loads the season-static team set with its calculated
// strength vectors. Implementations fall back to a reduced column set and
// nil facets when the view has drifted.
type StrengthReader interface {
	ListTeams(ctx context.Context) ([]Team, error)
}
