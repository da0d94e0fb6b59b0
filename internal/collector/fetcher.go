// Package collector fetches hotel listings from the supplier API and keeps
// the hotels table up to date.
package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"staymate/recommender-service/internal/model"
)

const (
	fetchPageSize = 50
	fetchMaxPages = 4 // max 200 listings per district per cycle
	httpTimeout   = 15 * time.Second
)

// Fetcher pulls hotel listings from the supplier's JSON API.
// With no BaseURL or APIKey configured, Fetch returns (nil, nil) gracefully —
// the worker skips the cycle and logs a warning instead of failing.
type Fetcher struct {
	BaseURL string
	APIKey  string
	City    string
	client  *http.Client
}

// NewFetcher constructs a Fetcher with a shared HTTP client.
func NewFetcher(baseURL, apiKey, city string) *Fetcher {
	return &Fetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		City:    city,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

// supplierResponse mirrors the top-level supplier JSON response.
type supplierResponse struct {
	Results []supplierResult `json:"results"`
	Count   int              `json:"count"`
}

// supplierResult mirrors a single supplier listing.
type supplierResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	District      string   `json:"district"`
	PricePerNight float64  `json:"price_per_night"`
	ReviewScore   float64  `json:"review_score"`
	Capacity      int      `json:"capacity"`
	Amenities     []string `json:"amenities"`
	AvailableFrom string   `json:"available_from"`
	AvailableTo   string   `json:"available_to"`
}

// Fetch retrieves all listings for one district, paging until the supplier
// runs dry or fetchMaxPages is reached. Returns nil without error when the
// fetcher is not configured.
func (f *Fetcher) Fetch(ctx context.Context, district string) ([]model.SupplierListing, error) {
	if f.BaseURL == "" || f.APIKey == "" {
		log.Println("[fetcher] SUPPLIER_BASE_URL / SUPPLIER_API_KEY not set — skipping fetch")
		return nil, nil
	}

	var listings []model.SupplierListing
	for page := 1; page <= fetchMaxPages; page++ {
		batch, err := f.fetchPage(ctx, district, page)
		if err != nil {
			return listings, fmt.Errorf("page %d: %w", page, err)
		}
		if len(batch) == 0 {
			break
		}
		listings = append(listings, batch...)
		if len(batch) < fetchPageSize {
			break // last page
		}
	}
	return listings, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, district string, page int) ([]model.SupplierListing, error) {
	params := url.Values{}
	params.Set("api_key", f.APIKey)
	params.Set("city", f.City)
	params.Set("district", district)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(fetchPageSize))

	reqURL := f.BaseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http GET: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("supplier returned %d: %s", resp.StatusCode, string(body))
	}

	var apiResp supplierResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	listings := make([]model.SupplierListing, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		listings = append(listings, model.SupplierListing{
			SourceID:      r.ID,
			Name:          r.Name,
			District:      r.District,
			Price:         r.PricePerNight,
			Rating:        r.ReviewScore,
			Capacity:      r.Capacity,
			Amenities:     r.Amenities,
			AvailableFrom: r.AvailableFrom,
			AvailableTo:   r.AvailableTo,
		})
	}
	return listings, nil
}
