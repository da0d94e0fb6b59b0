package collector_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"staymate/recommender-service/internal/collector"
	"staymate/recommender-service/internal/model"
)

func TestExportJSON_RoundTrip(t *testing.T) {
	hotels := []model.Hotel{
		{ID: 1, Name: "A", District: "Quận 1", Price: 1000000, Rating: 8.0, Amenities: []string{"wifi"}},
		{ID: 2, Name: "B", District: "Gò Vấp", Price: 400000, Rating: 6.5},
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := collector.ExportJSON(path, hotels); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}

	var got struct {
		ExportedAt string        `json:"exportedAt"`
		Count      int           `json:"count"`
		Hotels     []model.Hotel `json:"hotels"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if got.Count != 2 || len(got.Hotels) != 2 {
		t.Errorf("count=%d hotels=%d, want 2/2", got.Count, len(got.Hotels))
	}
	if got.ExportedAt == "" {
		t.Error("exportedAt missing")
	}
	if got.Hotels[0].Name != "A" || got.Hotels[1].District != "Gò Vấp" {
		t.Errorf("hotels round-tripped wrong: %+v", got.Hotels)
	}
}

func TestExportJSON_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := collector.ExportJSON(path, nil); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind after export")
	}
}
