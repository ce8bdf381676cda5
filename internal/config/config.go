package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/segment-canvas-mcp/internal/canvas"
	"github.com/ironsheep/segment-canvas-mcp/internal/detection"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "SEGMENT_MCP_LOG_LEVEL"
	EnvCanvasWidth  = "SEGMENT_MCP_CANVAS_WIDTH"
	EnvCanvasHeight = "SEGMENT_MCP_CANVAS_HEIGHT"
	EnvMatchPolicy  = "SEGMENT_MCP_MATCH_POLICY"
	EnvDumpWindows  = "SEGMENT_MCP_DUMP_WINDOWS"
)

// Log levels.
const (
	LevelInfo  = "info"
	LevelDebug = "debug"
)

// Config holds runtime configuration for the server.
type Config struct {
	LogLevel     string `json:"log_level"`
	CanvasWidth  int    `json:"canvas_width"`
	CanvasHeight int    `json:"canvas_height"`

	// MatchPolicy is the name of a detection.MatchPolicy.
	MatchPolicy string `json:"match_policy"`

	// DumpWindows adds every non-empty window to the debug scan report.
	DumpWindows bool `json:"dump_windows"`
}

// Default returns a Config populated with standard defaults.
func Default() *Config {
	return &Config{
		LogLevel:     LevelInfo,
		CanvasWidth:  canvas.DefaultWidth,
		CanvasHeight: canvas.DefaultHeight,
		MatchPolicy:  detection.FirstMatch.String(),
		DumpWindows:  false,
	}
}

// Load builds a Config from defaults overridden by the variables getenv
// returns. Empty variables keep their defaults. Malformed values are errors.
func Load(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvCanvasWidth)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvCanvasWidth, v, err)
		}
		cfg.CanvasWidth = n
	}
	if v := strings.TrimSpace(getenv(EnvCanvasHeight)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvCanvasHeight, v, err)
		}
		cfg.CanvasHeight = n
	}
	if v := strings.TrimSpace(getenv(EnvMatchPolicy)); v != "" {
		cfg.MatchPolicy = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv(EnvDumpWindows)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvDumpWindows, v, err)
		}
		cfg.DumpWindows = b
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv loads the configuration from the process environment.
func FromEnv() (*Config, error) {
	return Load(os.Getenv)
}

// Validate clamps sizes to usable values and rejects unknown names.
//
// A canvas smaller than 3x3 has no interior pixel to scan, so such sizes fall
// back to the defaults.
func (c *Config) Validate() error {
	if c.CanvasWidth < 3 {
		c.CanvasWidth = canvas.DefaultWidth
	}
	if c.CanvasHeight < 3 {
		c.CanvasHeight = canvas.DefaultHeight
	}

	switch c.LogLevel {
	case LevelInfo, LevelDebug:
	case "":
		c.LogLevel = LevelInfo
	default:
		return fmt.Errorf("invalid log level %q: want %q or %q", c.LogLevel, LevelInfo, LevelDebug)
	}

	if _, err := detection.ParsePolicy(c.MatchPolicy); err != nil {
		return err
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return c.LogLevel == LevelDebug
}

// Policy returns the configured match policy. It falls back to
// detection.FirstMatch when the name does not parse.
func (c *Config) Policy() detection.MatchPolicy {
	p, err := detection.ParsePolicy(c.MatchPolicy)
	if err != nil {
		return detection.FirstMatch
	}
	return p
}
