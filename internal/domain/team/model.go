package team

// Team is season-static: identity, a coarse scalar strength and six raw
// strength vectors as published by the game.
type Team struct {
	ID        int
	ShortName string
	FullName  string
	Strength  int

	// Raw strength vectors. Nil when the strength view is missing the column
	// (schema drift) or the backend has not populated it.
	StrengthOverallHome *int
	StrengthOverallAway *int
	StrengthAttackHome  *int
	StrengthAttackAway  *int
	StrengthDefenceHome *int
	StrengthDefenceAway *int
}
