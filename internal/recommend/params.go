// Package recommend implements the matching and ranking core: hard
// eligibility filtering, price/rating fitness scoring, and the expanding
// search loop that relaxes scoring parameters when a strict query comes
// back empty.
//
// The package is pure: no I/O, no shared mutable state. Every call receives
// its catalog, query and parameters as inputs, so concurrent searches over
// the same snapshot are safe.
package recommend

// Purpose values recognised by the default weight and floor tables.
// The vocabulary is open at this boundary: unknown purposes fall back to
// DefaultWeight / DefaultFloor instead of erroring.
const (
	PurposeLeisure  = "leisure"
	PurposeFamily   = "family"
	PurposePremium  = "premium"
	PurposeBusiness = "business"
	PurposeBudget   = "budget"
	PurposeLongTerm = "long_term"
)

// Weight is a (price, rating) weight pair. Defined entries sum to 1.0.
type Weight struct {
	Price  float64
	Rating float64
}

// Params carries every tunable of the core. It is threaded through calls as
// a value — callers with different tuning cannot interfere with each other.
type Params struct {
	// Lambda controls how fast price fitness falls off inside the budget
	// band: 1.0 at the midpoint, 1-Lambda at either edge.
	Lambda float64

	// TauLow / TauHigh scale the linear penalty per currency unit below the
	// budget floor / above the ceiling.
	TauLow  float64
	TauHigh float64

	// MaxRelaxations bounds how many relaxation steps may follow the strict
	// attempt before the search gives up.
	MaxRelaxations int

	// Weights and Floors map purpose → scoring weights / minimum rating.
	Weights map[string]Weight
	Floors  map[string]float64

	// Fallbacks for purposes absent from the tables.
	DefaultWeight Weight
	DefaultFloor  float64
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		Lambda:         0.25,
		TauLow:         200000,
		TauHigh:        200000,
		MaxRelaxations: 2,
		Weights: map[string]Weight{
			PurposeLeisure:  {Price: 0.4, Rating: 0.6},
			PurposeFamily:   {Price: 0.4, Rating: 0.6},
			PurposePremium:  {Price: 0.4, Rating: 0.6},
			PurposeBusiness: {Price: 0.6, Rating: 0.4},
			PurposeBudget:   {Price: 0.7, Rating: 0.3},
			PurposeLongTerm: {Price: 0.7, Rating: 0.3},
		},
		Floors: map[string]float64{
			PurposeLeisure:  7.0,
			PurposeFamily:   7.0,
			PurposePremium:  7.5,
			PurposeBusiness: 7.0,
			PurposeBudget:   6.0,
			PurposeLongTerm: 6.0,
		},
		DefaultWeight: Weight{Price: 0.5, Rating: 0.5},
		DefaultFloor:  6.0,
	}
}

// WeightFor returns the scoring weights for a purpose, falling back to
// DefaultWeight for unknown purposes.
func (p Params) WeightFor(purpose string) Weight {
	if w, ok := p.Weights[purpose]; ok {
		return w
	}
	return p.DefaultWeight
}

// FloorFor returns the minimum acceptable rating for a purpose, falling back
// to DefaultFloor for unknown purposes.
func (p Params) FloorFor(purpose string) float64 {
	if f, ok := p.Floors[purpose]; ok {
		return f
	}
	return p.DefaultFloor
}
