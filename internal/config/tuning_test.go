package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"staymate/recommender-service/internal/config"
	"staymate/recommender-service/internal/recommend"
)

func writeTuning(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}
	return path
}

func TestLoadTuning_EmptyPathReturnsDefaults(t *testing.T) {
	got, err := config.LoadTuning("")
	if err != nil {
		t.Fatalf("LoadTuning(\"\"): %v", err)
	}
	want := recommend.DefaultParams()
	if got.Lambda != want.Lambda || got.TauHigh != want.TauHigh || got.MaxRelaxations != want.MaxRelaxations {
		t.Errorf("defaults not returned: %+v", got)
	}
}

func TestLoadTuning_OverlaysFields(t *testing.T) {
	path := writeTuning(t, `
lambda: 0.4
tau_high: 150000
max_relaxations: 3
weights:
  business: {price: 0.8, rating: 0.2}
  workation: {price: 0.55, rating: 0.45}
floors:
  premium: 8.0
`)

	got, err := config.LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if got.Lambda != 0.4 {
		t.Errorf("lambda = %v, want 0.4", got.Lambda)
	}
	if got.TauHigh != 150000 {
		t.Errorf("tau_high = %v, want 150000", got.TauHigh)
	}
	if got.TauLow != 200000 {
		t.Errorf("tau_low = %v, want untouched default 200000", got.TauLow)
	}
	if got.MaxRelaxations != 3 {
		t.Errorf("max_relaxations = %v, want 3", got.MaxRelaxations)
	}
	if w := got.WeightFor("business"); w.Price != 0.8 || w.Rating != 0.2 {
		t.Errorf("business weights = %+v, want 0.8/0.2", w)
	}
	if w := got.WeightFor("workation"); w.Price != 0.55 {
		t.Errorf("new purpose weights = %+v, want 0.55/0.45", w)
	}
	if f := got.FloorFor("premium"); f != 8.0 {
		t.Errorf("premium floor = %v, want 8.0", f)
	}
	if f := got.FloorFor("leisure"); f != 7.0 {
		t.Errorf("leisure floor = %v, want untouched default 7.0", f)
	}
}

func TestLoadTuning_RejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"non-positive tau_high", "tau_high: 0"},
		{"negative tau_low", "tau_low: -5"},
		{"negative relaxations", "max_relaxations: -1"},
		{"invalid yaml", "weights: ["},
	}
	for _, c := range cases {
		path := writeTuning(t, c.content)
		if _, err := config.LoadTuning(path); err == nil {
			t.Errorf("%s: expected error, got nil", c.name)
		}
	}
}

func TestLoadTuning_MissingFileErrors(t *testing.T) {
	if _, err := config.LoadTuning(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing tuning file")
	}
}
