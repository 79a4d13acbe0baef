package memory

import (
	"time"

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
)

// Seeded ids used across the demo dataset.
const (
	SeedLeagueID = 1001

	SeedManagerAlice = 501
	SeedManagerBola  = 502
	SeedManagerCarol = 503

	SeedCurrentGameweek = 3
)

func SeedLeague() league.MiniLeague {
	return league.MiniLeague{ID: SeedLeagueID, Name: "Kickabout Collective", Closed: true}
}

func SeedTeams() []team.Team {
	return []team.Team{
		strengthTeam(1, "ARS", "Arsenal", 4, 1350, 1330, 1380, 1340, 1330, 1310),
		strengthTeam(2, "LIV", "Liverpool", 4, 1340, 1320, 1360, 1330, 1320, 1300),
		strengthTeam(3, "MCI", "Man City", 4, 1330, 1320, 1370, 1350, 1290, 1280),
		strengthTeam(4, "CHE", "Chelsea", 3, 1250, 1220, 1260, 1230, 1240, 1210),
		strengthTeam(5, "NEW", "Newcastle", 3, 1210, 1180, 1220, 1190, 1200, 1170),
		strengthTeam(6, "BRE", "Brentford", 2, 1100, 1080, 1110, 1090, 1090, 1070),
	}
}

func strengthTeam(id int, short, full string, scalar, oh, oa, ah, aa, dh, da int) team.Team {
	return team.Team{
		ID:                  id,
		ShortName:           short,
		FullName:            full,
		Strength:            scalar,
		StrengthOverallHome: &oh,
		StrengthOverallAway: &oa,
		StrengthAttackHome:  &ah,
		StrengthAttackAway:  &aa,
		StrengthDefenceHome: &dh,
		StrengthDefenceAway: &da,
	}
}

func SeedGameweeks() []gameweek.Gameweek {
	out := make([]gameweek.Gameweek, 0, gameweek.Last)
	for id := gameweek.First; id <= gameweek.Last; id++ {
		out = append(out, gameweek.Gameweek{ID: id, IsNext: id == SeedCurrentGameweek+1})
	}
	return out
}

func SeedFixtures() []fixture.Fixture {
	kickoff := time.Date(2026, 8, 15, 14, 0, 0, 0, time.UTC)

	out := make([]fixture.Fixture, 0, 3*gameweek.Last)
	id := 1
	// Rotate a three-pair schedule over the six seeded teams for the whole
	// season. Gameweeks up to the seeded current one are finished.
	for gw := gameweek.First; gw <= gameweek.Last; gw++ {
		pairs := [3][2]int{
			{1 + (gw % 6), 1 + ((gw + 2) % 6)},
			{1 + ((gw + 1) % 6), 1 + ((gw + 4) % 6)},
			{1 + ((gw + 3) % 6), 1 + ((gw + 5) % 6)},
		}
		for _, p := range pairs {
			if p[0] == p[1] {
				continue
			}
			f := fixture.Fixture{
				ID:         id,
				Gameweek:   gw,
				HomeTeamID: p[0],
				AwayTeamID: p[1],
				KickoffAt:  kickoff.AddDate(0, 0, 7*(gw-1)),
			}
			if gw <= SeedCurrentGameweek {
				home, away := (id%3)+1, id%2
				f.Started = true
				f.Finished = true
				f.FinishedProvisional = true
				f.Minutes = 90
				f.HomeScore = &home
				f.AwayScore = &away
			}
			out = append(out, f)
			id++
		}
	}
	return out
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 101, WebName: "Raya", TeamID: 1, Position: player.PositionGoalkeeper, PriceTenths: 55},
		{ID: 102, WebName: "Alisson", TeamID: 2, Position: player.PositionGoalkeeper, PriceTenths: 56},
		{ID: 103, WebName: "Saliba", TeamID: 1, Position: player.PositionDefender, PriceTenths: 60},
		{ID: 104, WebName: "Gabriel", TeamID: 1, Position: player.PositionDefender, PriceTenths: 62},
		{ID: 105, WebName: "Van Dijk", TeamID: 2, Position: player.PositionDefender, PriceTenths: 63},
		{ID: 106, WebName: "Gvardiol", TeamID: 3, Position: player.PositionDefender, PriceTenths: 61},
		{ID: 107, WebName: "Colwill", TeamID: 4, Position: player.PositionDefender, PriceTenths: 50},
		{ID: 108, WebName: "Saka", TeamID: 1, Position: player.PositionMidfielder, PriceTenths: 105},
		{ID: 109, WebName: "Salah", TeamID: 2, Position: player.PositionMidfielder, PriceTenths: 132},
		{ID: 110, WebName: "Foden", TeamID: 3, Position: player.PositionMidfielder, PriceTenths: 95},
		{ID: 111, WebName: "Palmer", TeamID: 4, Position: player.PositionMidfielder, PriceTenths: 108},
		{ID: 112, WebName: "Gordon", TeamID: 5, Position: player.PositionMidfielder, PriceTenths: 76},
		{ID: 113, WebName: "Haaland", TeamID: 3, Position: player.PositionForward, PriceTenths: 148},
		{ID: 114, WebName: "Isak", TeamID: 5, Position: player.PositionForward, PriceTenths: 94},
		{ID: 115, WebName: "Wissa", TeamID: 6, Position: player.PositionForward, PriceTenths: 62},
		{ID: 116, WebName: "Watkins", TeamID: 6, Position: player.PositionForward, PriceTenths: 89},
	}
}

func SeedManagers() []manager.Manager {
	return []manager.Manager{
		{ID: SeedManagerAlice, FirstName: "Alice", LastName: "Nakamura", TeamName: "Nakamura Ninjas", LeagueID: SeedLeagueID, LeagueRank: 1},
		{ID: SeedManagerBola, FirstName: "Bola", LastName: "Adeyemi", TeamName: "Adeyemi All Stars", LeagueID: SeedLeagueID, LeagueRank: 2},
		{ID: SeedManagerCarol, FirstName: "Carol", LastName: "Svendsen", TeamName: "Svendsen XI", LeagueID: SeedLeagueID, LeagueRank: 3},
	}
}

func SeedHistory() []manager.GameweekHistory {
	out := make([]manager.GameweekHistory, 0, 3*SeedCurrentGameweek)
	for _, m := range SeedManagers() {
		total := 0
		for gw := gameweek.First; gw <= SeedCurrentGameweek; gw++ {
			points := 40 + 3*gw + m.ID%7
			total += points
			out = append(out, manager.GameweekHistory{
				ManagerID:      m.ID,
				Gameweek:       gw,
				GameweekPoints: points,
				TotalPoints:    total,
				GameweekRank:   900000 + 1000*m.ID,
				OverallRank:    500000 + 1000*m.ID,
				BankTenths:     5,
				ValueTenths:    1000 + gw,
				TransfersMade:  gw % 2,
				TransferCost:   0,
				PointsOnBench:  6,
			})
		}
	}
	return out
}

// SeedPicks builds a legal 15-slot squad per seeded manager for every played
// gameweek. Captaincy differs per manager so live tables diverge.
func SeedPicks() map[int]map[int][]squad.Pick {
	players := SeedPlayers()
	byID := make(map[int]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	squads := map[int][]int{
		SeedManagerAlice: {101, 103, 104, 105, 108, 109, 110, 111, 113, 114, 115, 102, 106, 112, 116},
		SeedManagerBola:  {102, 104, 105, 106, 108, 109, 111, 112, 113, 115, 116, 101, 103, 110, 114},
		SeedManagerCarol: {101, 103, 105, 106, 107, 108, 110, 112, 113, 114, 116, 102, 104, 109, 111},
	}
	captains := map[int]int{
		SeedManagerAlice: 113,
		SeedManagerBola:  109,
		SeedManagerCarol: 108,
	}
	vices := map[int]int{
		SeedManagerAlice: 109,
		SeedManagerBola:  113,
		SeedManagerCarol: 113,
	}

	out := make(map[int]map[int][]squad.Pick, len(squads))
	for managerID, ids := range squads {
		perGw := make(map[int][]squad.Pick, SeedCurrentGameweek+1)
		for gw := gameweek.First; gw <= SeedCurrentGameweek+1; gw++ {
			picks := make([]squad.Pick, 0, len(ids))
			for slot, playerID := range ids {
				picks = append(picks, squad.Pick{
					PlayerID:       playerID,
					Position:       slot + 1,
					IsCaptain:      playerID == captains[managerID],
					IsViceCaptain:  playerID == vices[managerID],
					PlayerPosition: byID[playerID].Position,
				})
			}
			perGw[gw] = picks
		}
		out[managerID] = perGw
	}
	return out
}

func SeedStats() []playerstats.GameweekStats {
	players := SeedPlayers()

	out := make([]playerstats.GameweekStats, 0, len(players)*SeedCurrentGameweek)
	for gw := gameweek.First; gw <= SeedCurrentGameweek; gw++ {
		for i, p := range players {
			goals := 0
			if p.Position == player.PositionForward && (i+gw)%2 == 0 {
				goals = 1
			}
			saves := 0
			if p.Position == player.PositionGoalkeeper {
				saves = 3
			}
			out = append(out, playerstats.GameweekStats{
				PlayerID:      p.ID,
				FixtureID:     gw*100 + i,
				Gameweek:      gw,
				Minutes:       90,
				Goals:         goals,
				Assists:       (i + gw) % 3 / 2,
				Saves:         saves,
				BPS:           12 + i,
				Bonus:         i % 4 % 3,
				BonusStatus:   playerstats.BonusConfirmed,
				TotalPoints:   2 + 4*goals + (i+gw)%5,
				MatchPlayed:   true,
				MatchFinished: true,
			})
		}
	}
	return out
}

func SeedStandings() []standings.Row {
	rows := []standings.Row{
		{ManagerID: SeedManagerAlice, ManagerName: "Alice Nakamura", TeamName: "Nakamura Ninjas", Rank: 1, TotalPoints: 156, GameweekPoints: 52, CaptainName: "Haaland", ViceName: "Salah"},
		{ManagerID: SeedManagerBola, ManagerName: "Bola Adeyemi", TeamName: "Adeyemi All Stars", Rank: 2, TotalPoints: 149, GameweekPoints: 47, CaptainName: "Salah", ViceName: "Haaland"},
		{ManagerID: SeedManagerCarol, ManagerName: "Carol Svendsen", TeamName: "Svendsen XI", Rank: 3, TotalPoints: 140, GameweekPoints: 44, CaptainName: "Saka", ViceName: "Haaland"},
	}
	for i := range rows {
		change := 0
		rows[i].RankChange = &change
	}
	return rows
}

func SeedTransfers() []transfers.Transfer {
	return []transfers.Transfer{
		{
			ID:               1,
			ManagerID:        SeedManagerAlice,
			Gameweek:         SeedCurrentGameweek,
			PlayerInID:       114,
			PlayerOutID:      116,
			PlayerInCostTen:  94,
			PlayerOutCostTen: 89,
			MadeAt:           time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC),
		},
	}
}
