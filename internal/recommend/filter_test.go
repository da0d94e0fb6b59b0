package recommend_test

import (
	"testing"

	"staymate/recommender-service/internal/model"
	"staymate/recommender-service/internal/recommend"
)

func hotel(id int, district string, price, rating float64) model.Hotel {
	return model.Hotel{
		ID:            id,
		Name:          "Hotel",
		District:      district,
		Price:         price,
		Rating:        rating,
		AvailableFrom: "2025-01-01",
		AvailableTo:   "2025-12-31",
	}
}

func baseQuery() recommend.Query {
	return recommend.Query{
		District:  "Quận 1",
		BudgetMin: 900000,
		BudgetMax: 1400000,
		Purpose:   "business",
		CheckIn:   "2025-02-01",
		CheckOut:  "2025-02-03",
	}
}

func ids(hotels []model.Hotel) []int {
	out := make([]int, len(hotels))
	for i, h := range hotels {
		out[i] = h.ID
	}
	return out
}

// ── District gate ──────────────────────────────────────────────────────────

func TestHardFilter_DistrictExactMatch(t *testing.T) {
	catalog := []model.Hotel{
		hotel(1, "Quận 1", 1000000, 8.0),
		hotel(2, "Quận 3", 1000000, 8.0),
		hotel(3, "quận 1", 1000000, 8.0), // case differs — must not match
		hotel(4, "Quận 1 ", 1000000, 8.0), // trailing space — must not match
	}
	got := recommend.HardFilter(catalog, baseQuery(), recommend.DefaultParams())
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("HardFilter district gate kept %v, want [1]", ids(got))
	}
}

// ── Availability gate ──────────────────────────────────────────────────────

func TestHardFilter_AvailabilityContainment(t *testing.T) {
	q := baseQuery()
	cases := []struct {
		name     string
		from, to string
		want     bool
	}{
		{"covers stay", "2025-01-01", "2025-12-31", true},
		{"exact bounds", "2025-02-01", "2025-02-03", true},
		{"starts after check-in", "2025-02-02", "2025-12-31", false},
		{"ends before check-out", "2025-01-01", "2025-02-02", false},
		{"entirely before", "2024-01-01", "2024-12-31", false},
	}
	for _, c := range cases {
		h := hotel(1, q.District, 1000000, 8.0)
		h.AvailableFrom = c.from
		h.AvailableTo = c.to
		got := recommend.HardFilter([]model.Hotel{h}, q, recommend.DefaultParams())
		if (len(got) == 1) != c.want {
			t.Errorf("%s: availability [%s..%s] kept=%v, want %v", c.name, c.from, c.to, len(got) == 1, c.want)
		}
	}
}

func TestHardFilter_MalformedDatesFailOpen(t *testing.T) {
	q := baseQuery()
	cases := []struct {
		name     string
		from, to string
	}{
		{"empty bounds", "", ""},
		{"garbage from", "not-a-date", "2025-12-31"},
		{"garbage to", "2025-01-01", "31/12/2025"},
	}
	for _, c := range cases {
		h := hotel(1, q.District, 1000000, 8.0)
		h.AvailableFrom = c.from
		h.AvailableTo = c.to
		got := recommend.HardFilter([]model.Hotel{h}, q, recommend.DefaultParams())
		if len(got) != 1 {
			t.Errorf("%s: malformed availability must be treated as available, got rejected", c.name)
		}
	}
}

// ── Rating-floor gate ──────────────────────────────────────────────────────

func TestHardFilter_RatingFloorPerPurpose(t *testing.T) {
	cases := []struct {
		purpose string
		rating  float64
		want    bool
	}{
		{"leisure", 7.0, true},
		{"leisure", 6.9, false},
		{"family", 6.9, false},
		{"premium", 7.5, true},
		{"premium", 7.4, false},
		{"business", 7.0, true},
		{"business", 6.9, false},
		{"budget", 6.0, true},
		{"budget", 5.9, false},
		{"long_term", 6.0, true},
		{"glamping", 6.0, true},  // unknown purpose → floor 6.0
		{"glamping", 5.9, false},
	}
	for _, c := range cases {
		q := baseQuery()
		q.Purpose = c.purpose
		got := recommend.HardFilter([]model.Hotel{hotel(1, q.District, 1000000, c.rating)}, q, recommend.DefaultParams())
		if (len(got) == 1) != c.want {
			t.Errorf("purpose=%s rating=%v kept=%v, want %v", c.purpose, c.rating, len(got) == 1, c.want)
		}
	}
}

// ── Structure ──────────────────────────────────────────────────────────────

func TestHardFilter_PreservesCatalogOrder(t *testing.T) {
	q := baseQuery()
	catalog := []model.Hotel{
		hotel(3, q.District, 1000000, 9.0),
		hotel(1, q.District, 1000000, 7.5),
		hotel(7, "elsewhere", 1000000, 9.9),
		hotel(2, q.District, 1000000, 8.0),
	}
	got := recommend.HardFilter(catalog, q, recommend.DefaultParams())
	want := []int{3, 1, 2}
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("HardFilter kept %v, want %v", gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("HardFilter order %v, want %v", gotIDs, want)
		}
	}
}

func TestHardFilter_Idempotent(t *testing.T) {
	q := baseQuery()
	p := recommend.DefaultParams()
	catalog := []model.Hotel{
		hotel(1, q.District, 1000000, 8.0),
		hotel(2, "elsewhere", 1000000, 8.0),
		hotel(3, q.District, 1000000, 5.0),
	}
	once := recommend.HardFilter(catalog, q, p)
	twice := recommend.HardFilter(once, q, p)
	if len(once) != len(twice) {
		t.Fatalf("second filter pass changed the set: %v → %v", ids(once), ids(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("second filter pass reordered: %v → %v", ids(once), ids(twice))
		}
	}
}
