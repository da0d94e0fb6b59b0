package recommend_test

import (
	"math"
	"testing"

	"staymate/recommender-service/internal/recommend"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// ── PriceFit — inside the budget band ──────────────────────────────────────

func TestPriceFit_PeaksAtMidpoint(t *testing.T) {
	p := recommend.DefaultParams()
	got := recommend.PriceFit(1000, 900, 1100, p)
	if !almostEqual(got, 1.0) {
		t.Errorf("PriceFit(midpoint) = %v, want 1.0", got)
	}
}

func TestPriceFit_EdgesFallToOneMinusLambda(t *testing.T) {
	p := recommend.DefaultParams() // lambda 0.25
	want := 0.75
	for _, price := range []float64{900, 1100} {
		got := recommend.PriceFit(price, 900, 1100, p)
		if !almostEqual(got, want) {
			t.Errorf("PriceFit(%v) = %v, want %v", price, got, want)
		}
	}
}

func TestPriceFit_EdgeSymmetry(t *testing.T) {
	p := recommend.DefaultParams()
	low := recommend.PriceFit(900, 900, 1100, p)
	high := recommend.PriceFit(1100, 900, 1100, p)
	if !almostEqual(low, high) {
		t.Errorf("PriceFit at band edges differs: low=%v high=%v", low, high)
	}
}

func TestPriceFit_StrictlyDecreasingAwayFromMidpoint(t *testing.T) {
	p := recommend.DefaultParams()
	// Moving up from the midpoint.
	prev := recommend.PriceFit(1000, 900, 1100, p)
	for _, price := range []float64{1025, 1050, 1075, 1100} {
		cur := recommend.PriceFit(price, 900, 1100, p)
		if cur >= prev {
			t.Errorf("PriceFit(%v) = %v, want < %v (strictly decreasing above midpoint)", price, cur, prev)
		}
		prev = cur
	}
	// Moving down from the midpoint.
	prev = recommend.PriceFit(1000, 900, 1100, p)
	for _, price := range []float64{975, 950, 925, 900} {
		cur := recommend.PriceFit(price, 900, 1100, p)
		if cur >= prev {
			t.Errorf("PriceFit(%v) = %v, want < %v (strictly decreasing below midpoint)", price, cur, prev)
		}
		prev = cur
	}
}

// ── PriceFit — outside the budget band ─────────────────────────────────────

func TestPriceFit_BelowBandLinearPenalty(t *testing.T) {
	p := recommend.DefaultParams() // tauLow 200000
	got := recommend.PriceFit(1000, 2000, 2100, p)
	want := 1.0 - (2000.0-1000.0)/200000.0 // 0.995
	if !almostEqual(got, want) {
		t.Errorf("PriceFit(below band) = %v, want %v", got, want)
	}
}

func TestPriceFit_AboveBandLinearPenalty(t *testing.T) {
	p := recommend.DefaultParams()
	got := recommend.PriceFit(3000, 1000, 2000, p)
	want := 1.0 - (3000.0-2000.0)/200000.0
	if !almostEqual(got, want) {
		t.Errorf("PriceFit(above band) = %v, want %v", got, want)
	}
}

func TestPriceFit_ClampsToZero(t *testing.T) {
	p := recommend.DefaultParams()
	p.TauHigh = 100
	p.TauLow = 100
	if got := recommend.PriceFit(10000, 100, 200, p); got != 0 {
		t.Errorf("PriceFit(far above) = %v, want 0", got)
	}
	if got := recommend.PriceFit(0, 5000, 6000, p); got != 0 {
		t.Errorf("PriceFit(far below) = %v, want 0", got)
	}
}

func TestPriceFit_OutputRange(t *testing.T) {
	p := recommend.DefaultParams()
	for price := 0.0; price <= 3000000; price += 25000 {
		got := recommend.PriceFit(price, 800000, 1400000, p)
		if got < 0 || got > 1 {
			t.Fatalf("PriceFit(%v) = %v out of [0,1]", price, got)
		}
	}
}

// ── RatingFit ──────────────────────────────────────────────────────────────

func TestRatingFit(t *testing.T) {
	cases := []struct {
		rating float64
		want   float64
	}{
		{0, 0},
		{5, 0.5},
		{8, 0.8},
		{10, 1},
		{12, 1},  // clamped
		{-3, 0},  // clamped
	}
	for _, c := range cases {
		if got := recommend.RatingFit(c.rating); !almostEqual(got, c.want) {
			t.Errorf("RatingFit(%v) = %v, want %v", c.rating, got, c.want)
		}
	}
}

func TestRatingFit_MissingRatingIsZero(t *testing.T) {
	if got := recommend.RatingFit(math.NaN()); got != 0 {
		t.Errorf("RatingFit(NaN) = %v, want 0", got)
	}
}
