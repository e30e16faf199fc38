package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "  \n\t"},
		{"empty object", "{}"},
		{"garbage", "not json at all"},
		{"truncated", `{"duration_sec":`},
		{"wrong type", `{"duration_sec": "ten"}`},
		{"null field", `{"duration_sec": null}`},
	}
	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			params := Load(strings.NewReader(test.input))
			if params.DurationSec != DefaultDurationSec {
				t.Errorf("expected duration %v, got %v", float64(DefaultDurationSec), params.DurationSec)
			}
		})
	}
}

func TestLoadExplicitDuration(t *testing.T) {
	testCases := []struct {
		input string
		want  float64
	}{
		{`{"duration_sec": 0}`, 0},
		{`{"duration_sec": 1}`, 1},
		{`{"duration_sec": 2.5}`, 2.5},
		{`{"duration_sec": 600}`, 600},
		{`{"duration_sec": 3, "extra": true}`, 3},
	}
	for _, test := range testCases {
		t.Run(test.input, func(t *testing.T) {
			params := Load(strings.NewReader(test.input))
			if params.DurationSec != test.want {
				t.Errorf("expected duration %v, got %v", test.want, params.DurationSec)
			}
		})
	}
}

func TestDefaultFontConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(EnvFontPath, "")
		t.Setenv(EnvFontSize, "")
		cfg := DefaultFontConfigFromEnv()
		if cfg.Path != DefaultFontPath {
			t.Errorf("expected path %q, got %q", DefaultFontPath, cfg.Path)
		}
		if cfg.Size != DefaultFontSize {
			t.Errorf("expected size %v, got %v", float64(DefaultFontSize), cfg.Size)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv(EnvFontPath, "/tmp/other.ttf")
		t.Setenv(EnvFontSize, "14.5")
		cfg := DefaultFontConfigFromEnv()
		if cfg.Path != "/tmp/other.ttf" {
			t.Errorf("expected path %q, got %q", "/tmp/other.ttf", cfg.Path)
		}
		if cfg.Size != 14.5 {
			t.Errorf("expected size 14.5, got %v", cfg.Size)
		}
	})

	t.Run("bad size falls back", func(t *testing.T) {
		t.Setenv(EnvFontPath, "")
		t.Setenv(EnvFontSize, "huge")
		if cfg := DefaultFontConfigFromEnv(); cfg.Size != DefaultFontSize {
			t.Errorf("expected size %v, got %v", float64(DefaultFontSize), cfg.Size)
		}
	})

	t.Run("non-positive size falls back", func(t *testing.T) {
		t.Setenv(EnvFontPath, "")
		t.Setenv(EnvFontSize, "-4")
		if cfg := DefaultFontConfigFromEnv(); cfg.Size != DefaultFontSize {
			t.Errorf("expected size %v, got %v", float64(DefaultFontSize), cfg.Size)
		}
	})
}
