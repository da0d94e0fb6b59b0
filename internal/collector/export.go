package collector

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"staymate/recommender-service/internal/model"
)

// exportFile is the on-disk shape of a catalog export.
type exportFile struct {
	ExportedAt string        `json:"exportedAt"`
	Count      int           `json:"count"`
	Hotels     []model.Hotel `json:"hotels"`
}

// ExportJSON writes the catalog snapshot to path as indented JSON. The file
// is written atomically (temp file + rename) so a reader never observes a
// half-written export.
func ExportJSON(path string, hotels []model.Hotel) error {
	out := exportFile{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(hotels),
		Hotels:     hotels,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
