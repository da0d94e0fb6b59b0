// Package scheduler wires up the cron job that periodically refreshes the
// catalog: collect from the supplier, reload from Postgres, swap the
// in-memory snapshot.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"staymate/recommender-service/internal/catalog"
	"staymate/recommender-service/internal/collector"
)

// Scheduler wraps robfig/cron and manages the refresh loop.
type Scheduler struct {
	cron       *cron.Cron
	repo       *catalog.Repository
	store      *catalog.Store
	worker     *collector.Worker
	districts  []string
	exportPath string // optional JSON export target, empty disables
	spec       string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(repo *catalog.Repository, store *catalog.Store, worker *collector.Worker,
	districts []string, exportPath string, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithLogger(cron.DefaultLogger)),
		repo:       repo,
		store:      store,
		worker:     worker,
		districts:  districts,
		exportPath: exportPath,
		spec:       fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one refresh
// immediately so searches see a catalog without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// runRefresh executes one full refresh cycle. Searches keep serving the old
// snapshot until Replace installs the new one.
func (s *Scheduler) runRefresh(ctx context.Context) {
	log.Println("[scheduler] Refresh cycle started")

	districts := s.districts
	if len(districts) == 0 {
		districts = s.store.Districts()
	}
	if len(districts) > 0 {
		if err := s.worker.Run(ctx, districts); err != nil {
			log.Printf("[scheduler] Collector error: %v", err)
		}
	} else {
		log.Println("[scheduler] No districts configured or known — skipping collection")
	}

	hotels, err := s.repo.LoadHotels(ctx)
	if err != nil {
		log.Printf("[scheduler] LoadHotels error — keeping previous snapshot: %v", err)
		return
	}
	s.store.Replace(hotels)
	log.Printf("[scheduler] Snapshot replaced — %d hotels, version %d", len(hotels), s.store.Version())

	if s.exportPath != "" {
		if err := collector.ExportJSON(s.exportPath, hotels); err != nil {
			log.Printf("[scheduler] Export error: %v", err)
		} else {
			log.Printf("[scheduler] Catalog exported to %s", s.exportPath)
		}
	}

	log.Println("[scheduler] Refresh cycle complete")
}
