// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/mixgraph/internal/logging"
	"github.com/tomtom215/mixgraph/internal/optimizer"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/mixgraph/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "MIXGRAPH_CONFIG"

// defaultConfig returns a Config struct with all default values.
func defaultConfig() *Config {
	opt := optimizer.DefaultConfig()
	log := logging.DefaultConfig()
	log.Output = nil

	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: log,
		Optimizer: OptimizerConfig{
			MaxNodesToExplore:         opt.MaxNodesToExplore,
			BeamWidth:                 opt.BeamWidth,
			EarlyTerminationThreshold: opt.EarlyTerminationThreshold,
			MinCompatibility:          opt.MinCompatibility,
			MaxAlternatives:           opt.MaxAlternatives,
			Scorers:                   opt.Scoring.Enabled,
			TransitionOnly:            opt.Scoring.TransitionOnly,
			RequestTimeout:            30 * time.Second,
			MaxTargetLength:           200,
			MaxTracks:                 5000,
		},
		Library: LibraryConfig{
			Path:       "/data/mixgraph",
			GCInterval: 10 * time.Minute,
		},
		API: APIConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			CacheTTL:          5 * time.Minute,
			CacheEntries:      256,
			ThrottleRate:      10,
			ThrottleBurst:     20,
			MaxBodyBytes:      8 << 20, // 8MB
		},
	}
}

// Load builds the configuration from defaults, the optional config file and
// the environment, then validates it.
func Load() (*Config, error) {
	return load(findConfigFile())
}

// LoadFile is like Load but reads the given config file instead of
// searching for one. An empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"api.cors_origins",
	"optimizer.scorers",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings; YAML lists are left alone.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":             "server.host",
	"http_port":             "server.port",
	"http_read_timeout":     "server.read_timeout",
	"http_write_timeout":    "server.write_timeout",
	"http_idle_timeout":     "server.idle_timeout",
	"http_shutdown_timeout": "server.shutdown_timeout",

	// Logging
	"log_level":     "logging.level",
	"log_format":    "logging.format",
	"log_caller":    "logging.caller",
	"log_timestamp": "logging.timestamp",

	// Optimizer
	"max_nodes_to_explore":        "optimizer.max_nodes_to_explore",
	"beam_search_width":           "optimizer.beam_search_width",
	"early_termination_threshold": "optimizer.early_termination_threshold",
	"min_compatibility":           "optimizer.min_compatibility",
	"max_alternatives":            "optimizer.max_alternatives",
	"compat_scorers":              "optimizer.scorers",
	"compat_transition_only":      "optimizer.transition_only",
	"optimize_timeout":            "optimizer.request_timeout",
	"max_target_length":           "optimizer.max_target_length",
	"max_tracks":                  "optimizer.max_tracks",

	// Library
	"library_path":        "library.path",
	"library_in_memory":   "library.in_memory",
	"library_gc_interval": "library.gc_interval",

	// API
	"rate_limit_requests": "api.rate_limit_requests",
	"rate_limit_window":   "api.rate_limit_window",
	"rate_limit_disabled": "api.rate_limit_disabled",
	"cors_origins":        "api.cors_origins",
	"cache_ttl":           "api.cache_ttl",
	"cache_entries":       "api.cache_entries",
	"optimize_throttle":   "api.throttle_rate",
	"optimize_burst":      "api.throttle_burst",
	"max_body_bytes":      "api.max_body_bytes",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - BEAM_SEARCH_WIDTH -> optimizer.beam_search_width
//   - LIBRARY_IN_MEMORY -> library.in_memory
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	// Unmapped keys are skipped so unrelated environment variables stay out
	// of the config.
	return ""
}

// WatchConfigFile calls callback whenever the file at path changes. The
// callback is responsible for reloading and for synchronising access to
// the new configuration.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("config watch failed")
			return
		}
		callback()
	})
}
