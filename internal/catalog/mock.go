package catalog

import (
	"fmt"
	"math/rand"

	"staymate/recommender-service/internal/model"
)

// District pools for the mock catalog: central districts carry higher-priced
// hotels, outskirts cheaper ones.
var (
	mockCenters = []string{"Quận 1", "Quận 3", "Bình Thạnh"}
	mockOuter   = []string{"Tân Phú", "Bình Tân", "Gò Vấp"}

	mockAmenities = []string{"wifi", "elevator", "parking", "breakfast", "pool", "gym"}
)

// MockHotels generates a deterministic catalog of n hotels from the given
// seed. Used for the mock data source and in tests — same seed, same catalog.
func MockHotels(n int, seed int64) []model.Hotel {
	rng := rand.New(rand.NewSource(seed))
	hotels := make([]model.Hotel, 0, n)
	for i := 1; i <= n; i++ {
		var district string
		var price float64
		if rng.Float64() < 0.45 {
			district = mockCenters[rng.Intn(len(mockCenters))]
			price = float64(800000 + rng.Intn(1200001))
		} else {
			district = mockOuter[rng.Intn(len(mockOuter))]
			price = float64(300000 + rng.Intn(500001))
		}
		rating := float64(50+rng.Intn(46)) / 10.0 // 5.0–9.5 in 0.1 steps

		amenities := make([]string, 0, 3)
		for _, idx := range rng.Perm(len(mockAmenities))[:1+rng.Intn(3)] {
			amenities = append(amenities, mockAmenities[idx])
		}

		hotels = append(hotels, model.Hotel{
			ID:            i,
			Name:          fmt.Sprintf("Hotel %d", i),
			District:      district,
			Price:         price,
			Rating:        rating,
			Capacity:      1 + rng.Intn(4),
			Amenities:     amenities,
			AvailableFrom: "2025-01-01",
			AvailableTo:   "2025-12-31",
		})
	}
	return hotels
}
