package recommend

import "math"

// clamp restricts x to [lo, hi].
func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// PriceFit maps a price into [0,1] relative to the budget band.
//
// Inside the band the fit peaks at 1.0 at the midpoint and falls linearly to
// 1-Lambda at either edge. Outside the band it decays linearly, scaled by
// TauLow below the floor and TauHigh above the ceiling, then clamps to 0.
func PriceFit(price, budgetMin, budgetMax float64, p Params) float64 {
	mid := (budgetMin + budgetMax) / 2.0
	width := math.Max(1.0, budgetMax-budgetMin)

	var val float64
	switch {
	case price >= budgetMin && price <= budgetMax:
		val = 1.0 - p.Lambda*(2.0*math.Abs(price-mid)/width)
	case price < budgetMin:
		val = 1.0 - (budgetMin-price)/p.TauLow
	default:
		val = 1.0 - (price-budgetMax)/p.TauHigh
	}
	return clamp(val, 0.0, 1.0)
}

// RatingFit normalises a 0–10 review score to [0,1].
// A missing rating (NaN) maps to 0 rather than an error.
func RatingFit(rating float64) float64 {
	if math.IsNaN(rating) {
		return 0.0
	}
	return clamp(rating/10.0, 0.0, 1.0)
}
