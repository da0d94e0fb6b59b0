package collector

import (
	"context"
	"fmt"
	"log"
	"strings"

	"staymate/recommender-service/internal/catalog"
	"staymate/recommender-service/internal/model"
)

// Worker runs one full collection cycle: fetch every district from the
// supplier, drop unusable rows, and upsert the rest into the hotels table.
type Worker struct {
	repo    *catalog.Repository
	fetcher *Fetcher
}

// NewWorker constructs a Worker.
func NewWorker(repo *catalog.Repository, fetcher *Fetcher) *Worker {
	return &Worker{repo: repo, fetcher: fetcher}
}

// Run collects all districts. Per-district errors are logged and skipped so
// one bad supplier response cannot starve the rest of the catalog.
func (w *Worker) Run(ctx context.Context, districts []string) error {
	var totalInserted, totalUpdated, totalDropped int

	for _, district := range districts {
		inserted, updated, dropped, err := w.collectDistrict(ctx, district)
		if err != nil {
			log.Printf("[collector] Error collecting %q: %v — continuing", district, err)
			continue
		}
		totalInserted += inserted
		totalUpdated += updated
		totalDropped += dropped
	}

	log.Printf("[collector] Cycle done — inserted=%d updated=%d dropped=%d",
		totalInserted, totalUpdated, totalDropped)
	return nil
}

func (w *Worker) collectDistrict(ctx context.Context, district string) (inserted, updated, dropped int, err error) {
	listings, err := w.fetcher.Fetch(ctx, district)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("fetch: %w", err)
	}

	for _, raw := range listings {
		l, ok := Normalize(raw)
		if !ok {
			dropped++
			continue
		}
		created, err := w.repo.UpsertListing(ctx, l)
		if err != nil {
			log.Printf("[collector] Upsert error: %v", err)
			continue
		}
		if created {
			inserted++
		} else {
			updated++
		}
	}
	return inserted, updated, dropped, nil
}

// Normalize trims a raw supplier listing and reports whether it is usable.
// Rows with no source id, no name or a non-positive price are dropped —
// they can never be ranked. Malformed availability dates are kept as-is:
// the search treats them fail-open.
func Normalize(l model.SupplierListing) (model.SupplierListing, bool) {
	l.SourceID = strings.TrimSpace(l.SourceID)
	l.Name = strings.TrimSpace(l.Name)
	l.District = strings.TrimSpace(l.District)

	if l.SourceID == "" || l.Name == "" || l.District == "" {
		return l, false
	}
	if l.Price <= 0 {
		return l, false
	}
	if l.Rating < 0 {
		l.Rating = 0
	} else if l.Rating > 10 {
		l.Rating = 10
	}
	return l, true
}
