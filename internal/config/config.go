package config

import (
	"encoding/json"
	"io"
	"os"
	"strconv"
)

const (
	EnvFontPath  = "CLOCKCAST_FONT"
	EnvFontSize  = "CLOCKCAST_FONT_SIZE"
	EnvStderrLog = "CLOCKCAST_STDERR_LOG"
)

const (
	DefaultDurationSec = 10
	DefaultFontPath    = "/usr/share/fonts/truetype/freefont/FreeSans.ttf"
	DefaultFontSize    = 28
)

// Params are the run parameters read once from stdin at startup.
// They are immutable for the lifetime of the process.
type Params struct {
	DurationSec float64 `json:"duration_sec"`
}

// Load reads r to the end and decodes a parameter object. There is no
// error path: empty or malformed input is treated exactly like "{}" and
// every missing field takes its default.
func Load(r io.Reader) Params {
	params := Params{DurationSec: DefaultDurationSec}

	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return params
	}

	var decoded struct {
		DurationSec *float64 `json:"duration_sec"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return params
	}
	if decoded.DurationSec != nil {
		params.DurationSec = *decoded.DurationSec
	}
	return params
}

// FontConfig selects the preferred glyph source. The loader falls back to
// a built-in face when the preferred asset is unusable, so these are hints
// rather than hard requirements.
type FontConfig struct {
	Path string
	Size float64 // points
}

// DefaultFontConfigFromEnv returns the font configuration, with optional
// overrides via CLOCKCAST_FONT and CLOCKCAST_FONT_SIZE. Unparsable
// overrides fall back to the defaults silently, matching the posture of
// Load.
func DefaultFontConfigFromEnv() FontConfig {
	cfg := FontConfig{Path: DefaultFontPath, Size: DefaultFontSize}
	if path := os.Getenv(EnvFontPath); path != "" {
		cfg.Path = path
	}
	if raw := os.Getenv(EnvFontSize); raw != "" {
		if size, err := strconv.ParseFloat(raw, 64); err == nil && size > 0 {
			cfg.Size = size
		}
	}
	return cfg
}
