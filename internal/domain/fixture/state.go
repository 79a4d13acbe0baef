package fixture

// State is the four-state match lifecycle the rest of the service renders.
type State string

const (
	StateScheduled   State = "SCHEDULED"
	StateLive        State = "LIVE"
	StateProvisional State = "PROVISIONAL"
	StateFinal       State = "FINAL"
	// StateUnknown is a total-function fallback; it never occurs while the
	// backend keeps its flag invariants.
	StateUnknown State = "UNKNOWN"
)

// Classify maps the raw fixture flags onto a State. Rules are evaluated
// top-down:
//
//	started, finished, finished_provisional, minutes=90  -> FINAL
//	started, !finished, finished_provisional, minutes=90 -> PROVISIONAL
//	started, !finished, !finished_provisional            -> LIVE
//	!started, !finished, !finished_provisional, 0 min    -> SCHEDULED
func Classify(f Fixture) State {
	switch {
	case f.Started && f.Finished && f.FinishedProvisional && f.Minutes == 90:
		return StateFinal
	case f.Started && !f.Finished && f.FinishedProvisional && f.Minutes == 90:
		return StateProvisional
	case f.Started && !f.Finished && !f.FinishedProvisional:
		return StateLive
	case !f.Started && !f.Finished && !f.FinishedProvisional && f.Minutes == 0:
		return StateScheduled
	default:
		return StateUnknown
	}
}

// IsSettled reports whether the match has reached a point where auto-subs may
// be applied: nothing about its score can change short of a bonus
// confirmation.
func IsSettled(f Fixture) bool {
	state := Classify(f)
	return state == StateFinal || state == StateProvisional
}

// AnyLive reports whether a set of fixtures makes the gameweek "live" for
// refresh-cadence purposes. UNKNOWN fixtures are still rendered but never
// count towards liveness.
func AnyLive(fixtures []Fixture) bool {
	for _, f := range fixtures {
		switch Classify(f) {
		case StateLive, StateProvisional:
			return true
		}
	}
	return false
}
