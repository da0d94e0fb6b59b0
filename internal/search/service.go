// Package search contains the HTTP-facing search layer: request validation,
// the cache-aside recommend service, and the route handlers. All ranking
// logic lives in the recommend package; this layer only feeds it catalog
// snapshots and caches its answers.
package search

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"math"
	"time"

	"github.com/redis/go-redis/v9"

	"staymate/recommender-service/internal/catalog"
	"staymate/recommender-service/internal/recommend"
)

const cacheTTL = 10 * time.Minute

// Request is the JSON body of POST /api/recommend.
type Request struct {
	District  string  `json:"district"`
	BudgetMin float64 `json:"budget_min"`
	BudgetMax float64 `json:"budget_max"`
	Purpose   string  `json:"purpose"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	TopN      int     `json:"topN"`
}

// HotelResult is one ranked hotel in the response.
type HotelResult struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	District  string   `json:"district"`
	Price     float64  `json:"price"`
	Rating    float64  `json:"rating"`
	Amenities []string `json:"amenities"`
	Score     float64  `json:"score"`
}

// Response is the JSON body returned by POST /api/recommend.
type Response struct {
	Results []HotelResult  `json:"results"`
	Meta    recommend.Meta `json:"meta"`
}

// Service runs recommendations against the current catalog snapshot, with an
// optional Redis cache in front.
type Service struct {
	store  *catalog.Store
	rdb    *redis.Client // nil disables caching
	params recommend.Params
}

// NewService returns a configured Service. Pass a nil Redis client to run
// without a cache.
func NewService(store *catalog.Store, rdb *redis.Client, params recommend.Params) *Service {
	return &Service{store: store, rdb: rdb, params: params}
}

// Recommend validates the request, then answers it cache-first. Cache keys
// include the catalog snapshot version, so a refresh makes every older entry
// unreachable without explicit invalidation.
func (s *Service) Recommend(ctx context.Context, req Request) (*Response, error) {
	req.normalize()
	if err := req.validate(); err != nil {
		return nil, err
	}

	key := s.cacheKey(req)
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var resp Response
			if err := json.Unmarshal(cached, &resp); err == nil {
				log.Printf("[search] Cache hit key=%s", key)
				return &resp, nil
			}
		}
	}

	outcome := recommend.Search(
		s.store.Hotels(),
		recommend.Query{
			District:  req.District,
			BudgetMin: req.BudgetMin,
			BudgetMax: req.BudgetMax,
			Purpose:   req.Purpose,
			CheckIn:   req.CheckIn,
			CheckOut:  req.CheckOut,
		},
		req.TopN,
		s.params,
	)

	resp := &Response{Results: make([]HotelResult, 0, len(outcome.Results)), Meta: outcome.Meta}
	for _, sh := range outcome.Results {
		resp.Results = append(resp.Results, HotelResult{
			ID:        sh.Hotel.ID,
			Name:      sh.Hotel.Name,
			District:  sh.Hotel.District,
			Price:     sh.Hotel.Price,
			Rating:    sh.Hotel.Rating,
			Amenities: sh.Hotel.Amenities,
			Score:     math.Round(sh.Score*10000) / 10000,
		})
	}

	if s.rdb != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
				slog.Warn("cache set failed", "key", key, "err", err)
			}
		}
	}

	return resp, nil
}

// cacheKey hashes the normalized request fields plus the snapshot version.
func (s *Service) cacheKey(req Request) string {
	payload := fmt.Sprintf("v%d|%s|%.2f|%.2f|%s|%s|%s|%d",
		s.store.Version(), req.District, req.BudgetMin, req.BudgetMax,
		req.Purpose, req.CheckIn, req.CheckOut, req.TopN)
	return fmt.Sprintf("recommend:%x", md5.Sum([]byte(payload)))
}
