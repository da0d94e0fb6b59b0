package recommend

import (
	"math"
	"sort"

	"staymate/recommender-service/internal/model"
)

// ReasonNoResults is set on Meta.Reason when the search terminates EXHAUSTED.
const ReasonNoResults = "no_results"

// ScoredHotel pairs a catalog hotel with its relevance score for one query.
type ScoredHotel struct {
	Hotel model.Hotel
	Score float64
}

// Meta reports how a search concluded: how many attempts ran, whether any
// relaxation happened, and the effective scoring parameters at the time of
// success or final failure.
type Meta struct {
	Attempts   int     `json:"attempts"`
	Expanded   bool    `json:"expanded"`
	CurrentMin float64 `json:"current_min"`
	CurrentMax float64 `json:"current_max"`
	TauHigh    float64 `json:"tau_high"`
	Reason     string  `json:"reason,omitempty"`
}

// Outcome is the full result of one search call. Results holds at most topN
// entries ordered by score descending (catalog order breaks ties) and never
// contains a score of 0 or less.
type Outcome struct {
	Results []ScoredHotel
	Meta    Meta
}

// Search ranks the catalog against the query and returns the top-N matches.
//
// The strict attempt scores the hard-filtered candidates with the query's own
// budget band. When it yields nothing, the search relaxes through the phase
// graph — widen the band, then soften the over-budget penalty — re-scoring
// after each step, bounded by p.MaxRelaxations steps. Hard gates never relax,
// so exhaustion means no eligible hotel can score above zero under the most
// permissive parameters tried.
func Search(catalog []model.Hotel, q Query, topN int, p Params) Outcome {
	st := searchState{
		phase:      PhaseStrict,
		currentMin: q.BudgetMin,
		currentMax: q.BudgetMax,
		tauHigh:    p.TauHigh,
		width:      math.Max(1.0, q.BudgetMax-q.BudgetMin),
	}

	for {
		scored := scorePass(catalog, q, st, p)
		if len(scored) > 0 {
			sort.SliceStable(scored, func(i, j int) bool {
				return scored[i].Score > scored[j].Score
			})
			if len(scored) > topN {
				scored = scored[:topN]
			}
			return Outcome{
				Results: scored,
				Meta: Meta{
					Attempts:   st.attempt + 1,
					Expanded:   st.expanded,
					CurrentMin: st.currentMin,
					CurrentMax: st.currentMax,
					TauHigh:    st.tauHigh,
				},
			}
		}

		if st.attempt >= p.MaxRelaxations {
			break
		}
		next := NextPhase(st.phase)
		if IsTerminal(next) {
			// Relaxation schedule spent before the attempt ceiling:
			// another pass with unchanged parameters cannot succeed.
			break
		}
		st.enter(next, q)
		st.attempt++
	}

	st.phase = PhaseExhausted
	return Outcome{
		Results: []ScoredHotel{},
		Meta: Meta{
			Attempts:   st.attempt,
			Expanded:   st.expanded,
			CurrentMin: st.currentMin,
			CurrentMax: st.currentMax,
			TauHigh:    st.tauHigh,
			Reason:     ReasonNoResults,
		},
	}
}

// scorePass filters and scores the catalog under the state's effective
// parameters, keeping only strictly positive scores in catalog order.
func scorePass(catalog []model.Hotel, q Query, st searchState, p Params) []ScoredHotel {
	effective := q
	effective.BudgetMin = st.currentMin
	effective.BudgetMax = st.currentMax
	params := p
	params.TauHigh = st.tauHigh

	// Hard gates depend on the original query only; widening the budget
	// band changes scoring inputs, never eligibility.
	var scored []ScoredHotel
	for _, h := range HardFilter(catalog, q, p) {
		if s := Score(h, effective, params); s > 0 {
			scored = append(scored, ScoredHotel{Hotel: h, Score: s})
		}
	}
	return scored
}
