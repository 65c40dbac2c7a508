package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidEnvironment = errors.New("config: environment must be production or development")
	ErrInvalidExporter    = errors.New("config: unknown metrics exporter")
)

// Environment selects production or development behavior. Debug payload
// extraction and fatal misconfiguration errors are development-only.
type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
)

// PerformanceFlags toggle the resolution-time optimizations. They are
// configuration, not state: set once, read on every call.
type PerformanceFlags struct {
	// EnableStylesCaching turns on theme-scoped caching of resolved style
	// objects and rendered class names.
	EnableStylesCaching bool `json:"enable_styles_caching"`

	// EnableBooleanVariablesCaching extends caching to calls that supply
	// variables, provided every variable value is boolean. Requires
	// EnableStylesCaching.
	EnableBooleanVariablesCaching bool `json:"enable_boolean_variables_caching"`

	// EnableSanitizeCSSPlugin is forwarded to the class-name renderer.
	EnableSanitizeCSSPlugin bool `json:"enable_sanitize_css_plugin"`
}

// TelemetrySettings configure the metrics provider.
type TelemetrySettings struct {
	Enabled     bool   `json:"enabled"`
	ServiceName string `json:"service_name"`
	Exporter    string `json:"exporter"` // otlp|prometheus|stdout|none
}

// Config is the immutable configuration snapshot.
type Config struct {
	Environment Environment       `json:"environment"`
	Debug       bool              `json:"debug"`
	Flags       PerformanceFlags  `json:"flags"`
	Telemetry   TelemetrySettings `json:"telemetry"`
}

// Default returns the default configuration: production, no debug, all
// optimizations off, telemetry disabled.
func Default() Config {
	return Config{
		Environment: Production,
		Telemetry: TelemetrySettings{
			ServiceName: "styleops",
			Exporter:    "none",
		},
	}
}

// DebugEnabled reports whether debug payload extraction should run: only
// outside production and only with the debug flag set.
func (c Config) DebugEnabled() bool {
	return c.Environment != Production && c.Debug
}

var validExporters = map[string]bool{
	"otlp":       true,
	"prometheus": true,
	"stdout":     true,
	"none":       true,
	"":           true,
}

// Validate checks the snapshot for contradictions that have no sensible
// runtime interpretation.
func (c Config) Validate() error {
	switch c.Environment {
	case Production, Development:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}
	if !validExporters[c.Telemetry.Exporter] {
		return fmt.Errorf("%w: %q", ErrInvalidExporter, c.Telemetry.Exporter)
	}
	return nil
}

// Load builds the snapshot with the following precedence (highest wins):
// 1. Defaults
// 2. HuJSON config file at path (skipped when path is empty or missing)
// 3. Environment variables from env (STYLEOPS_ENV, STYLEOPS_DEBUG,
//    STYLEOPS_STYLES_CACHING, STYLEOPS_BOOLEAN_VARIABLES_CACHING,
//    STYLEOPS_SANITIZE_CSS, STYLEOPS_TELEMETRY, STYLEOPS_TELEMETRY_EXPORTER)
//
// env is typically os.Environ; passing it explicitly keeps loading
// deterministic under test.
func Load(path string, env []string) (Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, loaded, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = fileCfg
		}
	}

	applyEnv(&cfg, env)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile reads and parses a HuJSON config file. A missing file is not an
// error; the loaded result reports whether anything was read.
func loadFile(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("config: read %s: %w", path, err)
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("config: parse %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, true, nil
}

func applyEnv(cfg *Config, env []string) {
	for _, e := range env {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		switch key {
		case "STYLEOPS_ENV":
			cfg.Environment = Environment(value)
		case "STYLEOPS_DEBUG":
			cfg.Debug = parseBool(value, cfg.Debug)
		case "STYLEOPS_STYLES_CACHING":
			cfg.Flags.EnableStylesCaching = parseBool(value, cfg.Flags.EnableStylesCaching)
		case "STYLEOPS_BOOLEAN_VARIABLES_CACHING":
			cfg.Flags.EnableBooleanVariablesCaching = parseBool(value, cfg.Flags.EnableBooleanVariablesCaching)
		case "STYLEOPS_SANITIZE_CSS":
			cfg.Flags.EnableSanitizeCSSPlugin = parseBool(value, cfg.Flags.EnableSanitizeCSSPlugin)
		case "STYLEOPS_TELEMETRY":
			cfg.Telemetry.Enabled = parseBool(value, cfg.Telemetry.Enabled)
		case "STYLEOPS_TELEMETRY_EXPORTER":
			cfg.Telemetry.Exporter = value
		}
	}
}

// parseBool parses common boolean spellings, keeping the fallback on
// unparseable input.
func parseBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return fallback
	}
	return v
}
