package postgrest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/fplstack/companion/internal/platform/logging"
)

func newReader(baseURL string) *TeamReader {
	return NewTeamReader(ClientConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Logger:  logging.NewNop(),
	})
}

func TestListTeamsFullColumns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, strengthViewPath) {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("apikey"); got != "test-key" {
			t.Errorf("apikey header: got=%q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":1,"short_name":"ARS","name":"Arsenal","strength":4,
			 "strength_overall_home":1350,"strength_overall_away":1330,
			 "strength_attack_home":1380,"strength_attack_away":1340,
			 "strength_defence_home":1330,"strength_defence_away":1310},
			{"id":6,"short_name":"BRE","name":"Brentford","strength":2,
			 "strength_overall_home":1100,"strength_overall_away":1080,
			 "strength_attack_home":1110,"strength_attack_away":1090,
			 "strength_defence_home":1090,"strength_defence_away":1070}
		]`))
	}))
	defer srv.Close()

	teams, err := newReader(srv.URL).ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("teams: got=%d want=2", len(teams))
	}
	if teams[0].ShortName != "ARS" || teams[0].StrengthOverallHome == nil {
		t.Fatalf("unexpected first team: %+v", teams[0])
	}
	if got := *teams[1].StrengthAttackAway; got != 1090 {
		t.Fatalf("attack away: got=%d want=1090", got)
	}
}

func TestListTeamsReducedFallback(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, strengthViewPath) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"42703","message":"column v_team_calculated_strength.strength_overall_home does not exist"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"short_name":"ARS","name":"Arsenal","strength":4}]`))
	}))
	defer srv.Close()

	teams, err := newReader(srv.URL).ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 1 {
		t.Fatalf("teams: got=%d want=1", len(teams))
	}
	if teams[0].StrengthOverallHome != nil || teams[0].StrengthDefenceAway != nil {
		t.Fatalf("expected nil facets after fallback, got %+v", teams[0])
	}
	if teams[0].Strength != 4 {
		t.Fatalf("strength: got=%d want=4", teams[0].Strength)
	}
}

func TestListTeamsRetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":3,"short_name":"MCI","name":"Man City","strength":4}]`))
	}))
	defer srv.Close()

	teams, err := newReader(srv.URL).ListTeams(context.Background())
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("calls: got=%d want=2", got)
	}
	if len(teams) != 1 || teams[0].ID != 3 {
		t.Fatalf("unexpected teams: %+v", teams)
	}
}
