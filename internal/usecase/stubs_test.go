package usecase

import (
	"context"
	"fmt"

	"github.com/fplstack/companion/internal/domain/fixture"
	"github.com/fplstack/companion/internal/domain/gameweek"
	"github.com/fplstack/companion/internal/domain/league"
	"github.com/fplstack/companion/internal/domain/manager"
	"github.com/fplstack/companion/internal/domain/player"
	"github.com/fplstack/companion/internal/domain/playerstats"
	"github.com/fplstack/companion/internal/domain/squad"
	"github.com/fplstack/companion/internal/domain/standings"
	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/domain/transfers"
	"github.com/fplstack/companion/internal/domain/userconfig"
)

type stubTeamReader struct {
	teams []team.Team
	calls int
}

func (s *stubTeamReader) ListTeams(context.Context) ([]team.Team, error) {
	s.calls++
	return s.teams, nil
}

type stubFixtureRepository struct {
	byGameweek map[int][]fixture.Fixture
}

func (s *stubFixtureRepository) ListByGameweek(_ context.Context, gw int) ([]fixture.Fixture, error) {
	return s.byGameweek[gw], nil
}

func (s *stubFixtureRepository) ListByGameweekRange(_ context.Context, from, to int) ([]fixture.Fixture, error) {
	var out []fixture.Fixture
	for gw := from; gw < to; gw++ {
		out = append(out, s.byGameweek[gw]...)
	}
	return out, nil
}

func (s *stubFixtureRepository) ListByIDs(_ context.Context, ids []int) ([]fixture.Fixture, error) {
	want := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []fixture.Fixture
	for _, fixtures := range s.byGameweek {
		for _, f := range fixtures {
			if _, ok := want[f.ID]; ok {
				out = append(out, f)
			}
		}
	}
	return out, nil
}

type stubGameweekRepository struct {
	gameweeks []gameweek.Gameweek
}

func (s *stubGameweekRepository) List(context.Context) ([]gameweek.Gameweek, error) {
	return s.gameweeks, nil
}

type stubSquadRepository struct {
	picks map[string][]squad.Pick
}

func picksKey(managerID, gw int) string {
	return fmt.Sprintf("%d/%d", managerID, gw)
}

func (s *stubSquadRepository) ListPicks(_ context.Context, managerID, gw int) ([]squad.Pick, error) {
	return s.picks[picksKey(managerID, gw)], nil
}

type stubStatsRepository struct {
	rows   map[int][]playerstats.GameweekStats
	totals []playerstats.SeasonTotals
}

func (s *stubStatsRepository) ListByPlayersAndGameweek(_ context.Context, playerIDs []int, gw int) ([]playerstats.GameweekStats, error) {
	want := make(map[int]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		want[id] = struct{}{}
	}
	var out []playerstats.GameweekStats
	for _, row := range s.rows[gw] {
		if _, ok := want[row.PlayerID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubStatsRepository) ListSeasonTotals(_ context.Context, playerIDs []int) ([]playerstats.SeasonTotals, error) {
	want := make(map[int]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		want[id] = struct{}{}
	}
	var out []playerstats.SeasonTotals
	for _, row := range s.totals {
		if _, ok := want[row.PlayerID]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

type stubPlayerRepository struct {
	players map[int]player.Player
}

func (s *stubPlayerRepository) ListByIDs(_ context.Context, ids []int) ([]player.Player, error) {
	seen := make(map[int]struct{}, len(ids))
	var out []player.Player
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := s.players[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubManagerRepository struct {
	managers map[int]manager.Manager
	history  map[string]manager.GameweekHistory
}

func historyKey(managerID, gw int) string {
	return fmt.Sprintf("%d/%d", managerID, gw)
}

func (s *stubManagerRepository) GetByID(_ context.Context, managerID int) (manager.Manager, bool, error) {
	m, ok := s.managers[managerID]
	return m, ok, nil
}

func (s *stubManagerRepository) ListByLeague(_ context.Context, leagueID int) ([]manager.Manager, error) {
	var out []manager.Manager
	for _, m := range s.managers {
		if m.LeagueID == leagueID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *stubManagerRepository) ListHistory(_ context.Context, managerID int) ([]manager.GameweekHistory, error) {
	var out []manager.GameweekHistory
	for gw := gameweek.First; gw <= gameweek.Last; gw++ {
		if row, ok := s.history[historyKey(managerID, gw)]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubManagerRepository) GetHistoryRow(_ context.Context, managerID, gw int) (manager.GameweekHistory, bool, error) {
	row, ok := s.history[historyKey(managerID, gw)]
	return row, ok, nil
}

type stubLeagueRepository struct {
	byID map[int]league.MiniLeague
}

func (s *stubLeagueRepository) GetByID(_ context.Context, leagueID int) (league.MiniLeague, bool, error) {
	l, ok := s.byID[leagueID]
	return l, ok, nil
}

type stubStandingsRepository struct {
	rows map[int][]standings.Row
}

func (s *stubStandingsRepository) ListByLeagueAndGameweek(_ context.Context, leagueID, _ int) ([]standings.Row, error) {
	return s.rows[leagueID], nil
}

type stubTransferRepository struct {
	rows map[string][]transfers.Transfer
}

func (s *stubTransferRepository) ListByManagerAndGameweek(_ context.Context, managerID, gw int) ([]transfers.Transfer, error) {
	return s.rows[fmt.Sprintf("%d/%d", managerID, gw)], nil
}

type stubConfigStore struct {
	records  map[string]userconfig.Record
	upserts  int
	deletes  int
	failNext error
}

func (s *stubConfigStore) Get(_ context.Context, userID string) (userconfig.Record, bool, error) {
	rec, ok := s.records[userID]
	return rec, ok, nil
}

func (s *stubConfigStore) Upsert(_ context.Context, userID string, cfg userconfig.Configuration) error {
	if s.failNext != nil {
		err := s.failNext
		s.failNext = nil
		return err
	}
	if s.records == nil {
		s.records = make(map[string]userconfig.Record)
	}
	s.upserts++
	s.records[userID] = userconfig.Record{UserID: userID, Configuration: cfg.Clone()}
	return nil
}

func (s *stubConfigStore) Delete(_ context.Context, userID string) error {
	s.deletes++
	delete(s.records, userID)
	return nil
}
