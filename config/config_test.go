package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != Default().Width || len(cfg.Cubes) != 3 {
		t.Fatalf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cubeloop.json")
	data := `{"width": 80, "height": 24, "cubes": [{"half": 8, "offset": 0}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Width != 80 || cfg.Height != 24 {
		t.Fatalf("grid = %dx%d, want 80x24", cfg.Width, cfg.Height)
	}
	if len(cfg.Cubes) != 1 || cfg.Cubes[0].Half != 8 {
		t.Fatalf("cubes = %+v, want one cube of half-extent 8", cfg.Cubes)
	}
	// Untouched keys keep their defaults.
	if cfg.CameraDistance != 100 || cfg.Background != "." {
		t.Fatalf("defaults lost on partial file: %+v", cfg)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"multi-rune background", func(c *Config) { c.Background = "ab" }},
		{"wide background", func(c *Config) { c.Background = "界" }},
		{"empty background", func(c *Config) { c.Background = "" }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
		{"zero step", func(c *Config) { c.SampleStep = 0 }},
		{"negative delay", func(c *Config) { c.FrameDelayUS = -1 }},
		{"camera inside cube", func(c *Config) { c.CameraDistance = 10 }},
		{"flat cube", func(c *Config) { c.Cubes[0].Half = 0 }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}
}

func TestBackgroundRune(t *testing.T) {
	cfg := Default()
	if cfg.BackgroundRune() != '.' {
		t.Fatalf("BackgroundRune = %q, want '.'", cfg.BackgroundRune())
	}
}
