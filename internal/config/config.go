// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Data source selectors.
const (
	SourceMock     = "mock"
	SourcePostgres = "postgres"
)

// Config holds all runtime configuration for the recommender service.
type Config struct {
	Port       string
	DataSource string // "mock" | "postgres"

	DatabaseURL string // required for the postgres source
	RedisURL    string // optional — empty disables the search cache

	SupplierBaseURL   string
	SupplierAPIKey    string
	SupplierCity      string
	SupplierDistricts []string // districts to collect; empty falls back to the known catalog

	RefreshIntervalHours int    // how often the refresh cron fires
	ExportPath           string // optional JSON catalog export target
	TuningPath           string // optional YAML tuning overlay

	MockCatalogSize int
	MockSeed        int64
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	source := os.Getenv("DATA_SOURCE")
	if source == "" {
		source = SourceMock
	}
	if source != SourceMock && source != SourcePostgres {
		return nil, fmt.Errorf("DATA_SOURCE must be %q or %q, got %q", SourceMock, SourcePostgres, source)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if source == SourcePostgres && dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when DATA_SOURCE=%s", SourcePostgres)
	}

	interval := 6
	if s := os.Getenv("REFRESH_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("REFRESH_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		interval = v
	}

	mockSize := 120
	if s := os.Getenv("MOCK_CATALOG_SIZE"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("MOCK_CATALOG_SIZE must be a positive integer, got %q", s)
		}
		mockSize = v
	}

	mockSeed := int64(42)
	if s := os.Getenv("MOCK_SEED"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MOCK_SEED must be an integer, got %q", s)
		}
		mockSeed = v
	}

	var districts []string
	if s := os.Getenv("SUPPLIER_DISTRICTS"); s != "" {
		for _, d := range strings.Split(s, ",") {
			if d = strings.TrimSpace(d); d != "" {
				districts = append(districts, d)
			}
		}
	}

	city := os.Getenv("SUPPLIER_CITY")
	if city == "" {
		city = "Ho Chi Minh City"
	}

	port := os.Getenv("RECOMMENDER_PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:                 port,
		DataSource:           source,
		DatabaseURL:          dbURL,
		RedisURL:             os.Getenv("REDIS_URL"),
		SupplierBaseURL:      os.Getenv("SUPPLIER_BASE_URL"),
		SupplierAPIKey:       os.Getenv("SUPPLIER_API_KEY"),
		SupplierCity:         city,
		SupplierDistricts:    districts,
		RefreshIntervalHours: interval,
		ExportPath:           os.Getenv("EXPORT_PATH"),
		TuningPath:           os.Getenv("TUNING_PATH"),
		MockCatalogSize:      mockSize,
		MockSeed:             mockSeed,
	}, nil
}
