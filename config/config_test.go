package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styleops.hujson")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Environment != Production {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.Debug {
		t.Error("Debug = true by default")
	}
	if cfg.Flags.EnableStylesCaching {
		t.Error("EnableStylesCaching = true by default")
	}
	if cfg.Telemetry.Exporter != "none" {
		t.Errorf("Telemetry.Exporter = %q, want none", cfg.Telemetry.Exporter)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hujson"), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_HuJSONFile(t *testing.T) {
	// Comments and trailing commas are valid HuJSON.
	path := writeConfig(t, `{
		// development profile
		"environment": "development",
		"debug": true,
		"flags": {
			"enable_styles_caching": true,
			"enable_boolean_variables_caching": true,
		},
		"telemetry": {
			"enabled": true,
			"service_name": "styleops-dev",
			"exporter": "stdout",
		},
	}`)

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Environment != Development {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if !cfg.Flags.EnableStylesCaching || !cfg.Flags.EnableBooleanVariablesCaching {
		t.Errorf("Flags = %+v, want caching flags set", cfg.Flags)
	}
	if cfg.Telemetry.ServiceName != "styleops-dev" || cfg.Telemetry.Exporter != "stdout" {
		t.Errorf("Telemetry = %+v", cfg.Telemetry)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `{not json`)
	if _, err := Load(path, nil); err == nil {
		t.Error("Load() = nil error for malformed file")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"environment": "production", "flags": {"enable_styles_caching": false}}`)

	cfg, err := Load(path, []string{
		"STYLEOPS_ENV=development",
		"STYLEOPS_DEBUG=true",
		"STYLEOPS_STYLES_CACHING=1",
		"STYLEOPS_TELEMETRY_EXPORTER=prometheus",
		"UNRELATED=ignored",
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Environment != Development {
		t.Errorf("Environment = %q, want development (env override)", cfg.Environment)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true (env override)")
	}
	if !cfg.Flags.EnableStylesCaching {
		t.Error("EnableStylesCaching = false, want true (env override)")
	}
	if cfg.Telemetry.Exporter != "prometheus" {
		t.Errorf("Telemetry.Exporter = %q, want prometheus", cfg.Telemetry.Exporter)
	}
}

func TestLoad_UnparseableBoolKeepsPrevious(t *testing.T) {
	cfg, err := Load("", []string{"STYLEOPS_DEBUG=maybe"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Debug {
		t.Error("Debug = true from unparseable value")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults valid", func(c *Config) {}, nil},
		{"development valid", func(c *Config) { c.Environment = Development }, nil},
		{"bad environment", func(c *Config) { c.Environment = "staging" }, ErrInvalidEnvironment},
		{"bad exporter", func(c *Config) { c.Telemetry.Exporter = "statsd" }, ErrInvalidExporter},
		{"empty exporter valid", func(c *Config) { c.Telemetry.Exporter = "" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDebugEnabled(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		dbg  bool
		want bool
	}{
		{"production without debug", Production, false, false},
		{"production with debug", Production, true, false},
		{"development without debug", Development, false, false},
		{"development with debug", Development, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Environment: tt.env, Debug: tt.dbg}
			if got := cfg.DebugEnabled(); got != tt.want {
				t.Errorf("DebugEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
