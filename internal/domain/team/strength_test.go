package team

import "testing"

func intPtr(v int) *int { return &v }

func rawTeams(values ...int) []Team {
	out := make([]Team, 0, len(values))
	for i, v := range values {
		value := v
		out = append(out, Team{
			ID:                  i + 1,
			Strength:            3,
			StrengthOverallHome: &value,
			StrengthOverallAway: &value,
			StrengthAttackHome:  &value,
			StrengthAttackAway:  &value,
			StrengthDefenceHome: &value,
			StrengthDefenceAway: &value,
		})
	}
	return out
}

func TestNormalize_MinMaxScaling(t *testing.T) {
	t.Parallel()

	normalized := Normalize(rawTeams(1100, 1200, 1300, 1400, 1500))

	wants := []int{1, 2, 3, 4, 5}
	for i, want := range wants {
		got := normalized[i].OverallHome
		if got == nil || *got != want {
			t.Fatalf("team %d overall home: got=%v want=%d", i+1, got, want)
		}
	}

	// Population extremes always land on the scale ends.
	if *normalized[0].AttackAway != 1 || *normalized[4].AttackAway != 5 {
		t.Fatalf("extremes must map to 1 and 5, got %d and %d",
			*normalized[0].AttackAway, *normalized[4].AttackAway)
	}
}

func TestNormalize_DegeneratePopulation(t *testing.T) {
	t.Parallel()

	normalized := Normalize(rawTeams(1200, 1200, 1200))
	for _, n := range normalized {
		if n.OverallHome != nil || n.AttackAway != nil {
			t.Fatalf("degenerate population must yield nil categories, got %+v", n)
		}
	}
}

func TestNormalize_MissingRawValue(t *testing.T) {
	t.Parallel()

	teams := rawTeams(1100, 1300, 1500)
	teams[1].StrengthOverallHome = nil
	normalized := Normalize(teams)

	if normalized[1].OverallHome != nil {
		t.Fatalf("missing raw value must yield nil category, got %d", *normalized[1].OverallHome)
	}
	if normalized[0].OverallHome == nil || *normalized[0].OverallHome != 1 {
		t.Fatal("remaining population must still be scaled")
	}
	if normalized[2].OverallHome == nil || *normalized[2].OverallHome != 5 {
		t.Fatal("remaining population must still be scaled")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	t.Parallel()

	teams := rawTeams(1100, 1500)
	teams[0].StrengthAttackHome = intPtr(1100) // category 1
	teams[0].StrengthAttackAway = intPtr(1500) // category 5
	teams[1].StrengthAttackAway = intPtr(1100)
	normalized := Normalize(teams)

	if normalized[0].AttackDefault == nil || *normalized[0].AttackDefault != 3 {
		t.Fatalf("attack default must be the rounded mean, got %v", normalized[0].AttackDefault)
	}

	if normalized[0].Overall != 3 {
		t.Fatalf("overall must clamp the scalar strength, got %d", normalized[0].Overall)
	}
}

func TestCategory_OverrideLayer(t *testing.T) {
	t.Parallel()

	normalized := Normalize(rawTeams(1100, 1300, 1500))
	target := normalized[2] // base category 5 everywhere

	overrides := Overrides{Strength: map[int]int{target.ID: 2}}

	if got := target.Category(FacetOverall, true, overrides, true); got == nil || *got != 2 {
		t.Fatalf("custom mode must apply the override, got %v", got)
	}
	if got := target.Category(FacetOverall, true, overrides, false); got == nil || *got != 5 {
		t.Fatalf("default mode must ignore the override, got %v", got)
	}
	if got := target.Category(FacetAttack, true, overrides, true); got == nil || *got != 5 {
		t.Fatalf("override is keyed by facet, attack must stay computed, got %v", got)
	}
}

func TestCategory_VenueConditioning(t *testing.T) {
	t.Parallel()

	teams := rawTeams(1100, 1500)
	teams[0].StrengthDefenceAway = intPtr(1500)
	teams[1].StrengthDefenceHome = intPtr(1500)
	teams[1].StrengthDefenceAway = intPtr(1100)
	normalized := Normalize(teams)

	home := normalized[1].Category(FacetDefence, true, Overrides{}, false)
	away := normalized[1].Category(FacetDefence, false, Overrides{}, false)
	if home == nil || away == nil || *home != 5 || *away != 1 {
		t.Fatalf("venue must pick the matching facet: home=%v away=%v", home, away)
	}
}
