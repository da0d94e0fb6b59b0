// Package catalog holds the in-memory hotel catalog and its data sources.
//
// Searches must always see a consistent catalog while refreshes happen in
// the background, so the store swaps whole immutable snapshots instead of
// mutating entries in place.
package catalog

import (
	"sort"
	"sync/atomic"

	"staymate/recommender-service/internal/model"
)

// snapshot is one immutable catalog generation. Readers hold the slice they
// were handed; a concurrent Replace installs a new generation without
// touching it.
type snapshot struct {
	hotels  []model.Hotel
	byID    map[int]model.Hotel
	version int64
}

// Store is a swap-on-write holder for the current catalog snapshot.
// All methods are safe for concurrent use.
type Store struct {
	current atomic.Pointer[snapshot]
	version atomic.Int64
}

// NewStore returns an empty store at version 0.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&snapshot{byID: map[int]model.Hotel{}})
	return s
}

// Replace installs hotels as the new current snapshot and bumps the version.
// The slice is copied; callers may keep mutating their own.
func (s *Store) Replace(hotels []model.Hotel) {
	snap := &snapshot{
		hotels:  make([]model.Hotel, len(hotels)),
		byID:    make(map[int]model.Hotel, len(hotels)),
		version: s.version.Add(1),
	}
	copy(snap.hotels, hotels)
	for _, h := range snap.hotels {
		snap.byID[h.ID] = h
	}
	s.current.Store(snap)
}

// Hotels returns the current snapshot's hotels in catalog order.
// The returned slice must be treated as read-only.
func (s *Store) Hotels() []model.Hotel {
	return s.current.Load().hotels
}

// HotelByID looks a hotel up in the current snapshot.
func (s *Store) HotelByID(id int) (model.Hotel, bool) {
	h, ok := s.current.Load().byID[id]
	return h, ok
}

// Districts returns the sorted distinct district labels of the snapshot.
func (s *Store) Districts() []string {
	seen := map[string]bool{}
	for _, h := range s.Hotels() {
		seen[h.District] = true
	}
	districts := make([]string, 0, len(seen))
	for d := range seen {
		districts = append(districts, d)
	}
	sort.Strings(districts)
	return districts
}

// Version identifies the snapshot generation. It changes on every Replace,
// which makes it usable as a cache-key component: entries computed against
// an older catalog become unreachable after a refresh.
func (s *Store) Version() int64 {
	return s.current.Load().version
}

// Len reports how many hotels the current snapshot holds.
func (s *Store) Len() int {
	return len(s.Hotels())
}
