// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/knadh/koanf/v2"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want 0.0.0.0:8080", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Optimizer.MaxNodesToExplore != 10000 {
		t.Errorf("Optimizer.MaxNodesToExplore = %d, want 10000", cfg.Optimizer.MaxNodesToExplore)
	}
	if cfg.Optimizer.BeamWidth != 50 {
		t.Errorf("Optimizer.BeamWidth = %d, want 50", cfg.Optimizer.BeamWidth)
	}
	if cfg.Optimizer.EarlyTerminationThreshold != 0.95 {
		t.Errorf("Optimizer.EarlyTerminationThreshold = %f, want 0.95", cfg.Optimizer.EarlyTerminationThreshold)
	}
	if cfg.Library.InMemory {
		t.Error("Library.InMemory should be false by default")
	}
	if cfg.Library.GCInterval != 10*time.Minute {
		t.Errorf("Library.GCInterval = %v, want 10m", cfg.Library.GCInterval)
	}
	if !slices.Equal(cfg.API.CORSOrigins, []string{"*"}) {
		t.Errorf("API.CORSOrigins = %v, want [*]", cfg.API.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
	if cfg.API.CacheEntries != 256 {
		t.Errorf("API.CacheEntries = %d, want 256", cfg.API.CacheEntries)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9090
  read_timeout: 5s
logging:
  level: debug
  format: console
optimizer:
  beam_search_width: 12
  scorers:
    - harmonic
    - energy
library:
  in_memory: true
api:
  cors_origins:
    - https://dj.example.com
  cache_entries: 0
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("Logging = %+v, want debug/console", cfg.Logging)
	}
	if cfg.Optimizer.BeamWidth != 12 {
		t.Errorf("Optimizer.BeamWidth = %d, want 12", cfg.Optimizer.BeamWidth)
	}
	if !slices.Equal(cfg.Optimizer.Scorers, []string{"harmonic", "energy"}) {
		t.Errorf("Optimizer.Scorers = %v, want [harmonic energy]", cfg.Optimizer.Scorers)
	}
	if !cfg.Library.InMemory {
		t.Error("Library.InMemory = false, want true")
	}
	if !slices.Equal(cfg.API.CORSOrigins, []string{"https://dj.example.com"}) {
		t.Errorf("API.CORSOrigins = %v", cfg.API.CORSOrigins)
	}
	if cfg.API.CacheEntries != 0 {
		t.Errorf("API.CacheEntries = %d, want 0", cfg.API.CacheEntries)
	}
}

func TestLoadFile_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9090\n")

	t.Setenv("HTTP_PORT", "7070")
	t.Setenv("BEAM_SEARCH_WIDTH", "8")
	t.Setenv("MIN_COMPATIBILITY", "0.4")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LIBRARY_IN_MEMORY", "true")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com,")
	t.Setenv("COMPAT_SCORERS", "harmonic,temporal")
	t.Setenv("SOME_UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Optimizer.BeamWidth != 8 {
		t.Errorf("Optimizer.BeamWidth = %d, want 8", cfg.Optimizer.BeamWidth)
	}
	if cfg.Optimizer.MinCompatibility != 0.4 {
		t.Errorf("Optimizer.MinCompatibility = %f, want 0.4", cfg.Optimizer.MinCompatibility)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if !cfg.Library.InMemory {
		t.Error("Library.InMemory = false, want true")
	}
	if cfg.API.RateLimitWindow != 30*time.Second {
		t.Errorf("API.RateLimitWindow = %v, want 30s", cfg.API.RateLimitWindow)
	}
	wantOrigins := []string{"https://a.example.com", "https://b.example.com"}
	if !slices.Equal(cfg.API.CORSOrigins, wantOrigins) {
		t.Errorf("API.CORSOrigins = %v, want %v", cfg.API.CORSOrigins, wantOrigins)
	}
	if !slices.Equal(cfg.Optimizer.Scorers, []string{"harmonic", "temporal"}) {
		t.Errorf("Optimizer.Scorers = %v, want [harmonic temporal]", cfg.Optimizer.Scorers)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 70000\n",
			wantErr: "port",
		},
		{
			name:    "zero beam width",
			yaml:    "optimizer:\n  beam_search_width: 0\n",
			wantErr: "optimizer.beam_search_width",
		},
		{
			name:    "unknown scorer",
			yaml:    "optimizer:\n  scorers: [harmonic, vibes]\n",
			wantErr: "vibes",
		},
		{
			name:    "bad log format",
			yaml:    "logging:\n  format: xml\n",
			wantErr: "format",
		},
		{
			name:    "missing library path",
			yaml:    "library:\n  path: \"\"\n",
			wantErr: "path",
		},
		{
			name:    "cache without ttl",
			yaml:    "api:\n  cache_ttl: 0s\n",
			wantErr: "api.cache_ttl",
		},
		{
			name:    "throttle without burst",
			yaml:    "api:\n  throttle_burst: 0\n",
			wantErr: "api.throttle_burst",
		},
		{
			name:    "malformed yaml",
			yaml:    "server: [\n",
			wantErr: "failed to load config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.yaml)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("LoadFile() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadFile() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 9191\n")

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			t.Skipf("default config %s exists in test environment", p)
		}
	}
	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}
}

func TestLoad_UsesConfigEnvVar(t *testing.T) {
	path := writeConfigFile(t, "optimizer:\n  max_alternatives: 2\n")
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Optimizer.MaxAlternatives != 2 {
		t.Errorf("Optimizer.MaxAlternatives = %d, want 2", cfg.Optimizer.MaxAlternatives)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"LOG_CALLER", "logging.caller"},
		{"MAX_NODES_TO_EXPLORE", "optimizer.max_nodes_to_explore"},
		{"EARLY_TERMINATION_THRESHOLD", "optimizer.early_termination_threshold"},
		{"LIBRARY_PATH", "library.path"},
		{"RATE_LIMIT_DISABLED", "api.rate_limit_disabled"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestProcessSliceFields(t *testing.T) {
	t.Parallel()

	k := koanf.New(".")
	if err := k.Set("api.cors_origins", " a , b ,,c"); err != nil {
		t.Fatal(err)
	}
	if err := k.Set("optimizer.scorers", []string{"harmonic"}); err != nil {
		t.Fatal(err)
	}

	if err := processSliceFields(k); err != nil {
		t.Fatalf("processSliceFields() error = %v", err)
	}
	if got := k.Strings("api.cors_origins"); !slices.Equal(got, []string{"a", "b", "c"}) {
		t.Errorf("api.cors_origins = %v, want [a b c]", got)
	}
	if got := k.Strings("optimizer.scorers"); !slices.Equal(got, []string{"harmonic"}) {
		t.Errorf("optimizer.scorers = %v, want [harmonic]", got)
	}
}

func TestConfig_OptimizerConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Optimizer.BeamWidth = 7
	cfg.Optimizer.Scorers = []string{"harmonic"}
	cfg.Optimizer.TransitionOnly = true

	opt := cfg.OptimizerConfig()
	if opt.BeamWidth != 7 {
		t.Errorf("BeamWidth = %d, want 7", opt.BeamWidth)
	}
	if !slices.Equal(opt.Scoring.Enabled, []string{"harmonic"}) {
		t.Errorf("Scoring.Enabled = %v, want [harmonic]", opt.Scoring.Enabled)
	}
	if !opt.Scoring.TransitionOnly {
		t.Error("Scoring.TransitionOnly = false, want true")
	}

	opt.Scoring.Enabled[0] = "energy"
	if cfg.Optimizer.Scorers[0] != "harmonic" {
		t.Error("OptimizerConfig() shares the scorer slice with Config")
	}

	cfg.Optimizer.Scorers = nil
	if got := cfg.OptimizerConfig().Scoring.Enabled; len(got) == 0 {
		t.Error("empty scorer list should fall back to every sub-scorer")
	}
}
