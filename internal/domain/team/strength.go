package team

import "math"

// The game publishes raw per-team strength vectors on an arbitrary scale
// (roughly 1000-1400). Normalization projects each facet's population onto
// the familiar 1-5 difficulty scale used across the dashboard colour code.

type Facet string

const (
	FacetOverall Facet = "overall"
	FacetAttack  Facet = "attack"
	FacetDefence Facet = "defence"
)

// Normalized carries a team's derived 1-5 categories per facet and venue.
// A nil category means the raw value was missing or the population was
// degenerate (every team equal).
type Normalized struct {
	Team

	OverallHome *int
	OverallAway *int
	AttackHome  *int
	AttackAway  *int
	DefenceHome *int
	DefenceAway *int

	// Overall is the scalar strength clamped to 1..5.
	Overall int
	// AttackDefault and DefenceDefault are the rounded means of the facet's
	// home and away categories.
	AttackDefault  *int
	DefenceDefault *int
}

// Overrides are sparse user-supplied difficulty replacements, keyed by team
// id, one map per facet. They only apply in custom mode.
type Overrides struct {
	Strength map[int]int
	Attack   map[int]int
	Defence  map[int]int
}

func (o Overrides) forFacet(facet Facet) map[int]int {
	switch facet {
	case FacetAttack:
		return o.Attack
	case FacetDefence:
		return o.Defence
	default:
		return o.Strength
	}
}

// Normalize scales every raw strength facet across the given population.
func Normalize(teams []Team) []Normalized {
	overallHome := scale(teams, func(t Team) *int { return t.StrengthOverallHome })
	overallAway := scale(teams, func(t Team) *int { return t.StrengthOverallAway })
	attackHome := scale(teams, func(t Team) *int { return t.StrengthAttackHome })
	attackAway := scale(teams, func(t Team) *int { return t.StrengthAttackAway })
	defenceHome := scale(teams, func(t Team) *int { return t.StrengthDefenceHome })
	defenceAway := scale(teams, func(t Team) *int { return t.StrengthDefenceAway })

	out := make([]Normalized, 0, len(teams))
	for i, t := range teams {
		n := Normalized{
			Team:        t,
			OverallHome: overallHome[i],
			OverallAway: overallAway[i],
			AttackHome:  attackHome[i],
			AttackAway:  attackAway[i],
			DefenceHome: defenceHome[i],
			DefenceAway: defenceAway[i],
			Overall:     clampCategory(t.Strength),
		}
		n.AttackDefault = meanCategory(n.AttackHome, n.AttackAway)
		n.DefenceDefault = meanCategory(n.DefenceHome, n.DefenceAway)
		out = append(out, n)
	}

	return out
}

// Category returns the team's effective difficulty for a facet conditioned on
// the venue the team plays at. Overrides win over computed categories when
// custom mode is on.
func (n Normalized) Category(facet Facet, playsAtHome bool, overrides Overrides, custom bool) *int {
	if custom {
		if v, ok := overrides.forFacet(facet)[n.ID]; ok {
			v := clampCategory(v)
			return &v
		}
	}

	switch facet {
	case FacetAttack:
		if playsAtHome {
			return n.AttackHome
		}
		return n.AttackAway
	case FacetDefence:
		if playsAtHome {
			return n.DefenceHome
		}
		return n.DefenceAway
	default:
		if playsAtHome {
			return n.OverallHome
		}
		return n.OverallAway
	}
}

func scale(teams []Team, raw func(Team) *int) []*int {
	min, max := 0, 0
	seen := false
	for _, t := range teams {
		v := raw(t)
		if v == nil {
			continue
		}
		if !seen || *v < min {
			min = *v
		}
		if !seen || *v > max {
			max = *v
		}
		seen = true
	}

	out := make([]*int, len(teams))
	if !seen || max == min {
		return out
	}

	for i, t := range teams {
		v := raw(t)
		if v == nil {
			continue
		}
		category := clampCategory(int(math.Round(1 + 4*float64(*v-min)/float64(max-min))))
		out[i] = &category
	}

	return out
}

func meanCategory(a, b *int) *int {
	sum, count := 0, 0
	if a != nil {
		sum += *a
		count++
	}
	if b != nil {
		sum += *b
		count++
	}
	if count == 0 {
		return nil
	}
	mean := clampCategory(int(math.Round(float64(sum) / float64(count))))
	return &mean
}

func clampCategory(v int) int {
	if v < 1 {
		return 1
	}
	if v > 5 {
		return 5
	}
	return v
}
