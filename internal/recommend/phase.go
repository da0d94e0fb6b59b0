// Expanding-search phase machine.
//
// Valid phase graph:
//
//	STRICT ──► BUDGET_WIDENED ──► TOLERANCE_RELAXED ──► EXHAUSTED
//
// Each relaxation step loosens scoring parameters only — the hard filter
// gates (district, availability, rating floor) stay fixed, so the candidate
// pool of a later attempt is always a superset of an earlier one.
// EXHAUSTED is terminal.
package recommend

import "math"

// Phase names the state of the expanding search.
type Phase string

const (
	PhaseStrict           Phase = "STRICT"
	PhaseBudgetWidened    Phase = "BUDGET_WIDENED"
	PhaseToleranceRelaxed Phase = "TOLERANCE_RELAXED"
	PhaseExhausted        Phase = "EXHAUSTED"
)

// phaseSuccessor lists the phase entered when a scoring pass comes back
// empty and the attempt budget still allows another try.
var phaseSuccessor = map[Phase]Phase{
	PhaseStrict:           PhaseBudgetWidened,
	PhaseBudgetWidened:    PhaseToleranceRelaxed,
	PhaseToleranceRelaxed: PhaseExhausted,
}

// NextPhase returns the phase that follows p. Phases with no successor
// (EXHAUSTED itself) map to EXHAUSTED.
func NextPhase(p Phase) Phase {
	if next, ok := phaseSuccessor[p]; ok {
		return next
	}
	return PhaseExhausted
}

// IsTerminal reports whether p ends the search.
func IsTerminal(p Phase) bool { return p == PhaseExhausted }

// searchState carries the mutable scoring parameters across attempts of one
// search call. The original query is never modified.
type searchState struct {
	phase      Phase
	attempt    int
	expanded   bool
	currentMin float64
	currentMax float64
	tauHigh    float64
	width      float64 // original band width, floored at 1
}

// enter applies the relaxation that belongs to the phase being entered.
//
//	BUDGET_WIDENED:    widen the band by ±50% of the original width,
//	                   flooring the new minimum at 0
//	TOLERANCE_RELAXED: multiply tauHigh by 1.5 so over-budget listings
//	                   score higher than before
func (st *searchState) enter(next Phase, q Query) {
	switch next {
	case PhaseBudgetWidened:
		delta := 0.5 * st.width
		st.currentMin = math.Max(0, q.BudgetMin-delta)
		st.currentMax = q.BudgetMax + delta
		st.expanded = true
	case PhaseToleranceRelaxed:
		st.tauHigh *= 1.5
	}
	st.phase = next
}
