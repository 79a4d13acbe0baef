package gameweek

import "context"

// A season has 38 gameweeks; chip slots and reverse-fixture availability key
// off the half boundary.
const (
	First = 1
	Last  = 38

	firstHalfLast = 19
)

type Half string

const (
	FirstHalf  Half = "first"
	SecondHalf Half = "second"
)

// Gameweek is a scoring round. Exactly one gameweek is "next" at a time.
type Gameweek struct {
	ID     int
	IsNext bool
}

func (g Gameweek) Half() Half {
	return HalfOf(g.ID)
}

func HalfOf(id int) Half {
	if id <= firstHalfLast {
		return FirstHalf
	}
	return SecondHalf
}

// Next returns the upcoming gameweek from a season's list, false when the
// season is over.
func Next(gameweeks []Gameweek) (Gameweek, bool) {
	for _, gw := range gameweeks {
		if gw.IsNext {
			return gw, true
		}
	}
	return Gameweek{}, false
}

type Repository interface {
	List(ctx context.Context) ([]Gameweek, error)
}
