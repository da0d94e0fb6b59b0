package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"staymate/recommender-service/internal/model"
)

// Repository reads and writes the hotels table.
//
// Availability columns are TEXT on purpose: supplier feeds occasionally ship
// malformed dates, and the search core handles those fail-open instead of
// losing the row at ingest time.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository over the given pool.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// LoadHotels returns the full catalog ordered by id. Rows with a NULL rating
// come back as 0 so an unrated hotel scores a rating fitness of 0.
func (r *Repository) LoadHotels(ctx context.Context) ([]model.Hotel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, district, price, COALESCE(rating, 0), capacity,
		        COALESCE(amenities, '{}'), COALESCE(available_from, ''),
		        COALESCE(available_to, '')
		 FROM hotels
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query hotels: %w", err)
	}
	defer rows.Close()

	var hotels []model.Hotel
	for rows.Next() {
		var h model.Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.District, &h.Price, &h.Rating, &h.Capacity,
			&h.Amenities, &h.AvailableFrom, &h.AvailableTo,
		); err != nil {
			return nil, fmt.Errorf("scan hotel: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

// UpsertListing inserts or refreshes one supplier listing, keyed by its
// source id. Returns true when a new row was created.
func (r *Repository) UpsertListing(ctx context.Context, l model.SupplierListing) (bool, error) {
	var inserted bool
	err := r.pool.QueryRow(ctx,
		`INSERT INTO hotels (source_id, name, district, price, rating, capacity,
		                     amenities, available_from, available_to, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		 ON CONFLICT (source_id) DO UPDATE
		 SET name = EXCLUDED.name,
		     district = EXCLUDED.district,
		     price = EXCLUDED.price,
		     rating = EXCLUDED.rating,
		     capacity = EXCLUDED.capacity,
		     amenities = EXCLUDED.amenities,
		     available_from = EXCLUDED.available_from,
		     available_to = EXCLUDED.available_to,
		     updated_at = NOW()
		 RETURNING (xmax = 0)`,
		l.SourceID, l.Name, l.District, l.Price, l.Rating, l.Capacity,
		l.Amenities, l.AvailableFrom, l.AvailableTo,
	).Scan(&inserted)
	if err != nil {
		return false, fmt.Errorf("upsert hotel %q: %w", l.SourceID, err)
	}
	return inserted, nil
}
