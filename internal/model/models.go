// Package model defines shared data structures for the recommender service.
package model

// Hotel is one rankable lodging option in the catalog.
//
// Availability bounds are kept as raw YYYY-MM-DD strings: supplier data is
// not always well-formed, and the availability check treats unparsable dates
// as "available" instead of dropping the hotel.
type Hotel struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	District      string   `json:"district"`
	Price         float64  `json:"price"`
	Rating        float64  `json:"rating"` // 0–10 review score
	Capacity      int      `json:"capacity,omitempty"`
	Amenities     []string `json:"amenities"`
	AvailableFrom string   `json:"availableFrom,omitempty"`
	AvailableTo   string   `json:"availableTo,omitempty"`
}

// SupplierListing is a normalised hotel record fetched from the supplier API.
// It is converted to a catalog row by the collector worker.
type SupplierListing struct {
	SourceID      string   `json:"sourceId"`
	Name          string   `json:"name"`
	District      string   `json:"district"`
	Price         float64  `json:"price"`
	Rating        float64  `json:"rating"`
	Capacity      int      `json:"capacity,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	AvailableFrom string   `json:"availableFrom,omitempty"`
	AvailableTo   string   `json:"availableTo,omitempty"`
}
