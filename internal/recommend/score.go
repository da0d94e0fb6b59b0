package recommend

import "staymate/recommender-service/internal/model"

// Score combines price and rating fitness into one [0,1] scalar using the
// purpose's weight pair. A score of exactly 0 marks a non-match: the search
// drops it from the ranked output instead of ranking it last.
func Score(h model.Hotel, q Query, p Params) float64 {
	w := p.WeightFor(q.Purpose)
	pf := PriceFit(h.Price, q.BudgetMin, q.BudgetMax, p)
	rf := RatingFit(h.Rating)
	return w.Price*pf + w.Rating*rf
}
