package postgres

import (
	"database/sql"
	"time"

	"github.com/fplstack/companion/internal/domain/fixture"
)

type fixtureRowModel struct {
	ID                  int           `db:"id"`
	Gameweek            int           `db:"gameweek"`
	HomeTeamID          int           `db:"home_team_id"`
	AwayTeamID          int           `db:"away_team_id"`
	HomeScore           sql.NullInt64 `db:"home_score"`
	AwayScore           sql.NullInt64 `db:"away_score"`
	KickoffAt           time.Time     `db:"kickoff_at"`
	Started             bool          `db:"started"`
	Finished            bool          `db:"finished"`
	FinishedProvisional bool          `db:"finished_provisional"`
	Minutes             int           `db:"minutes"`
}

func (m fixtureRowModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:                  m.ID,
		Gameweek:            m.Gameweek,
		HomeTeamID:          m.HomeTeamID,
		AwayTeamID:          m.AwayTeamID,
		HomeScore:           nullIntToPtr(m.HomeScore),
		AwayScore:           nullIntToPtr(m.AwayScore),
		KickoffAt:           m.KickoffAt,
		Started:             m.Started,
		Finished:            m.Finished,
		FinishedProvisional: m.FinishedProvisional,
		Minutes:             m.Minutes,
	}
}
