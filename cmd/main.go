// staymate-recommender-service
//
// Ranks the hotel catalog against traveler constraints and serves the top
// matches over a small REST API:
//   - POST /api/recommend — weighted price/rating ranking with an expanding
//     search that relaxes the budget band when strict filters find nothing
//   - GET /api/districts, GET /api/hotels/{id}, GET /api/ping, GET /health
//
// Catalog sources: a deterministic mock generator (DATA_SOURCE=mock) or
// Postgres kept fresh by a cron-driven supplier collector. Responses are
// cached in Redis when REDIS_URL is set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staymate/recommender-service/internal/catalog"
	"staymate/recommender-service/internal/collector"
	"staymate/recommender-service/internal/config"
	"staymate/recommender-service/internal/db"
	"staymate/recommender-service/internal/scheduler"
	"staymate/recommender-service/internal/search"

	"github.com/redis/go-redis/v9"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[recommender] Config error: %v", err)
	}

	params, err := config.LoadTuning(cfg.TuningPath)
	if err != nil {
		log.Fatalf("[recommender] Tuning error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Catalog ──────────────────────────────────────────────────────────────
	store := catalog.NewStore()

	var sched *scheduler.Scheduler
	switch cfg.DataSource {
	case config.SourceMock:
		hotels := catalog.MockHotels(cfg.MockCatalogSize, cfg.MockSeed)
		store.Replace(hotels)
		log.Printf("[recommender] Loaded %d mock hotels (seed %d)", len(hotels), cfg.MockSeed)

	case config.SourcePostgres:
		log.Println("[recommender] Connecting to PostgreSQL…")
		pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[recommender] PostgreSQL: %v", err)
		}
		defer pool.Close()
		log.Println("[recommender] PostgreSQL connected ✓")

		repo := catalog.NewRepository(pool)
		hotels, err := repo.LoadHotels(ctx)
		if err != nil {
			log.Fatalf("[recommender] Initial catalog load: %v", err)
		}
		store.Replace(hotels)
		log.Printf("[recommender] Loaded %d hotels from PostgreSQL", len(hotels))

		fetcher := collector.NewFetcher(cfg.SupplierBaseURL, cfg.SupplierAPIKey, cfg.SupplierCity)
		worker := collector.NewWorker(repo, fetcher)
		sched = scheduler.New(repo, store, worker, cfg.SupplierDistricts, cfg.ExportPath, cfg.RefreshIntervalHours)
		if err := sched.Start(ctx); err != nil {
			log.Fatalf("[recommender] Scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// ── Redis (optional cache) ───────────────────────────────────────────────
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		log.Println("[recommender] Connecting to Redis…")
		rdb, err = db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("[recommender] Redis: %v", err)
		}
		defer rdb.Close()
		log.Println("[recommender] Redis connected ✓")
	} else {
		log.Println("[recommender] REDIS_URL not set — search cache disabled")
	}

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	svc := search.NewService(store, rdb, params)
	h := search.NewHandler(svc, store)
	h.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      corsMiddleware(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[recommender] v%s listening on :%s (source=%s)", version, cfg.Port, cfg.DataSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[recommender] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[recommender] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[recommender] Shutdown error: %v", err)
	}
	log.Println("[recommender] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "recommender-service",
		"version": version,
	})
}

// corsMiddleware adds permissive CORS headers for the web frontend and
// answers preflight requests.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
