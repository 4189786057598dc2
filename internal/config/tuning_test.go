package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTuningConfig(t *testing.T) {
	cfg := DefaultTuningConfig()

	if cfg.RangeMin == nil || *cfg.RangeMin != 0.5 {
		t.Errorf("Expected RangeMin 0.5, got %v", cfg.RangeMin)
	}
	if cfg.RangeMax == nil || *cfg.RangeMax != 120.0 {
		t.Errorf("Expected RangeMax 120, got %v", cfg.RangeMax)
	}
	if cfg.MedianColumns == nil || *cfg.MedianColumns != 1800 {
		t.Errorf("Expected MedianColumns 1800, got %v", cfg.MedianColumns)
	}
	if cfg.MedianDepth == nil || *cfg.MedianDepth != 5 {
		t.Errorf("Expected MedianDepth 5, got %v", cfg.MedianDepth)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEmptyTuningConfigGetters(t *testing.T) {
	cfg := EmptyTuningConfig()

	if got := cfg.GetRangeMin(); got != 0.5 {
		t.Errorf("GetRangeMin() = %f, want 0.5", got)
	}
	if got := cfg.GetRangeMax(); got != 120.0 {
		t.Errorf("GetRangeMax() = %f, want 120", got)
	}
	if got := cfg.GetMedianColumns(); got != 1800 {
		t.Errorf("GetMedianColumns() = %d, want 1800", got)
	}
	if got := cfg.GetMedianDepth(); got != 5 {
		t.Errorf("GetMedianDepth() = %d, want 5", got)
	}
}

func TestLoadTuningConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.json")

	testJSON := `{
  "range_min": 2.0,
  "range_max": 4.0,
  "median_columns": 5,
  "median_depth": 4
}`
	if err := os.WriteFile(configPath, []byte(testJSON), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadTuningConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GetRangeMin() != 2.0 || cfg.GetRangeMax() != 4.0 {
		t.Errorf("range = [%f, %f], want [2, 4]", cfg.GetRangeMin(), cfg.GetRangeMax())
	}
	if cfg.GetMedianColumns() != 5 {
		t.Errorf("GetMedianColumns() = %d, want 5", cfg.GetMedianColumns())
	}
	if cfg.GetMedianDepth() != 4 {
		t.Errorf("GetMedianDepth() = %d, want 4", cfg.GetMedianDepth())
	}
}

func TestLoadTuningConfig_Partial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "partial.json")

	if err := os.WriteFile(configPath, []byte(`{"median_depth": 9}`), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadTuningConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.RangeMin != nil {
		t.Errorf("RangeMin should be unset, got %v", *cfg.RangeMin)
	}
	if cfg.GetRangeMin() != 0.5 {
		t.Errorf("GetRangeMin() should fall back to default, got %f", cfg.GetRangeMin())
	}
	if cfg.GetMedianDepth() != 9 {
		t.Errorf("GetMedianDepth() = %d, want 9", cfg.GetMedianDepth())
	}
}

func TestLoadTuningConfig_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		file     string
		contents string
		wantErr  string
	}{
		{"wrong extension", "config.yaml", `{}`, ".json extension"},
		{"invalid json", "bad.json", `{not json`, "failed to parse"},
		{"inverted range", "inverted.json", `{"range_min": 4, "range_max": 2}`, "must not exceed"},
		{"zero columns", "cols.json", `{"median_columns": 0}`, "median_columns must be positive"},
		{"negative depth", "depth.json", `{"median_depth": -3}`, "median_depth must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.file)
			if err := os.WriteFile(path, []byte(tt.contents), 0644); err != nil {
				t.Fatalf("Failed to write test config: %v", err)
			}
			_, err := LoadTuningConfig(path)
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadTuningConfig_MissingFile(t *testing.T) {
	_, err := LoadTuningConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadTuningConfig_TooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "large.json")
	big := make([]byte, 1024*1024+1)
	for i := range big {
		big[i] = ' '
	}
	if err := os.WriteFile(path, big, 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	_, err := LoadTuningConfig(path)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("expected too large error, got %v", err)
	}
}

func TestMustLoadDefaultConfig(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	if cfg == nil {
		t.Fatal("MustLoadDefaultConfig returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults file should validate: %v", err)
	}
	if cfg.GetRangeMin() > cfg.GetRangeMax() {
		t.Errorf("defaults file has inverted range [%f, %f]", cfg.GetRangeMin(), cfg.GetRangeMax())
	}
}
