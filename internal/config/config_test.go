package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, Default())
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("spawn:\n  probability: 0.5\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Spawn.Probability != 0.5 {
		t.Errorf("Probability = %v, expected 0.5", cfg.Spawn.Probability)
	}
	if cfg.World.CellSize != Default().World.CellSize {
		t.Errorf("CellSize = %v, expected default", cfg.World.CellSize)
	}
	if cfg.Spawn.MaxCoins != 3 {
		t.Errorf("MaxCoins = %d, expected default 3", cfg.Spawn.MaxCoins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero cell size", func(c *Config) { c.World.CellSize = 0 }, "cell_size"},
		{"negative radius", func(c *Config) { c.World.NeighborhoodRadius = -1 }, "neighborhood_radius"},
		{"probability above one", func(c *Config) { c.Spawn.Probability = 1.5 }, "probability"},
		{"no coins", func(c *Config) { c.Spawn.MinCoins = 0 }, "min_coins"},
		{"inverted range", func(c *Config) { c.Spawn.MaxCoins = 0 }, "max_coins"},
		{"nameless kind", func(c *Config) { c.Kinds[0].Name = "" }, "name"},
		{"negative history", func(c *Config) { c.History.Limit = -2 }, "history.limit"},
		{"nan cell size", func(c *Config) { c.World.CellSize = math.NaN() }, "cell_size"},
		{"infinite cell size", func(c *Config) { c.World.CellSize = math.Inf(1) }, "cell_size"},
		{"nan probability", func(c *Config) { c.Spawn.Probability = math.NaN() }, "probability"},
		{"nan origin", func(c *Config) { c.World.Origin.Lat = math.NaN() }, "origin"},
		{"infinite weight", func(c *Config) { c.Kinds[0].Weight = math.Inf(1) }, "weight"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %q", err, tc.field)
			}
		})
	}
}

func TestParseRejectsNaN(t *testing.T) {
	for _, doc := range []string{
		"spawn: {probability: .nan}\n",
		"world: {cell_size: .nan}\n",
		"world: {cell_size: .inf}\n",
	} {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("Parse(%q) should fail", doc)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("world:\n  visibility_radius: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadWithSource(path)
	if err != nil {
		t.Fatalf("LoadWithSource() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected custom", src)
	}
	if cfg.World.VisibilityRadius != 3 {
		t.Errorf("VisibilityRadius = %d, expected 3", cfg.World.VisibilityRadius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("spawn:\n  probability: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of an invalid custom file should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Error("marshalled default did not parse back to default")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DensityPreset
		expected float64
	}{
		{DensitySparse, 0.05},
		{DensityNormal, 0.1},
		{DensityDense, 0.25},
	}

	for _, tc := range tests {
		cfg := Default()
		if err := ApplyPreset(&cfg, tc.preset); err != nil {
			t.Fatalf("ApplyPreset(%s) failed: %v", tc.preset, err)
		}
		if cfg.Spawn.Probability != tc.expected {
			t.Errorf("ApplyPreset(%s) probability = %v, expected %v", tc.preset, cfg.Spawn.Probability, tc.expected)
		}
	}

	cfg := Default()
	if err := ApplyPreset(&cfg, ""); err != nil || cfg.Spawn.Probability != 0.1 {
		t.Error("empty preset should leave config unchanged")
	}
	if err := ApplyPreset(&cfg, "crowded"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestExpandHome(t *testing.T) {
	got, err := ExpandHome("/abs/path.db")
	if err != nil || got != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", got, err)
	}
	got, err = ExpandHome("~/x.db")
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	if strings.HasPrefix(got, "~") {
		t.Errorf("ExpandHome did not expand: %q", got)
	}
}
