package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "web_name").
		From("players").
		Where(Eq("team_id", 3), IsNull("deleted_at")).
		OrderBy("id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, web_name FROM players WHERE team_id = $1 AND deleted_at IS NULL ORDER BY id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RangeAndIn(t *testing.T) {
	query, args, err := Select("*").
		From("fixtures").
		Where(
			Gte("gameweek", 3),
			Lt("gameweek", 7),
			In("home_team_id", []any{1, 2}),
		).
		OrderBy("gameweek", "id").
		ToSQL()
	if err != nil {
		t.Fatalf("build range query: %v", err)
	}

	wantQuery := "SELECT * FROM fixtures WHERE gameweek >= $1 AND gameweek < $2 AND home_team_id IN ($3, $4) ORDER BY gameweek, id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("manager_transfers").
		Columns("manager_id", "gameweek").
		Values(501, 3).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO manager_transfers (manager_id, gameweek) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 501 || args[1] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		UserID string `db:"user_id"`
		Config []byte `db:"config"`
		Hidden string `db:"-"`
	}

	query, args, err := InsertModel("user_configurations", row{UserID: "u1", Config: []byte("{}")},
		"ON CONFLICT (user_id) DO UPDATE SET config = EXCLUDED.config")
	if err != nil {
		t.Fatalf("build insert from model: %v", err)
	}

	wantQuery := "INSERT INTO user_configurations (user_id, config) VALUES ($1, $2) ON CONFLICT (user_id) DO UPDATE SET config = EXCLUDED.config"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "u1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatal("expected error for non-struct model")
	}
}
