package recommend

import (
	"time"

	"staymate/recommender-service/internal/model"
)

// dayFormat is the wire format for all stay and availability dates.
const dayFormat = "2006-01-02"

// Query is one traveler request against the catalog.
//
// The caller is expected to have validated BudgetMax >= BudgetMin and
// CheckOut >= CheckIn before handing the query to the core; the core does
// not crash on violations but makes no promises about the ranking.
type Query struct {
	District  string
	BudgetMin float64
	BudgetMax float64
	Purpose   string
	CheckIn   string // YYYY-MM-DD
	CheckOut  string // YYYY-MM-DD
}

// isAvailable reports whether the hotel's availability window fully covers
// the requested stay. Any date that fails to parse makes the hotel count as
// available: a data-quality problem must not remove an otherwise valid
// candidate (validation of query dates happens upstream).
func isAvailable(h model.Hotel, checkIn, checkOut string) bool {
	from, err := time.Parse(dayFormat, h.AvailableFrom)
	if err != nil {
		return true
	}
	to, err := time.Parse(dayFormat, h.AvailableTo)
	if err != nil {
		return true
	}
	ci, err := time.Parse(dayFormat, checkIn)
	if err != nil {
		return true
	}
	co, err := time.Parse(dayFormat, checkOut)
	if err != nil {
		return true
	}
	return !from.After(ci) && !to.Before(co)
}

// HardFilter returns the order-preserved subset of the catalog passing all
// three hard gates: exact district match, availability covering the stay,
// and rating at or above the purpose's floor.
//
// The gates are hard: they never loosen during search relaxation, which only
// touches scoring parameters.
func HardFilter(catalog []model.Hotel, q Query, p Params) []model.Hotel {
	floor := p.FloorFor(q.Purpose)
	eligible := make([]model.Hotel, 0, len(catalog))
	for _, h := range catalog {
		if h.District != q.District {
			continue
		}
		if !isAvailable(h, q.CheckIn, q.CheckOut) {
			continue
		}
		if h.Rating < floor {
			continue
		}
		eligible = append(eligible, h)
	}
	return eligible
}
