// Mixgraph - DJ Playlist Graph Optimizer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mixgraph

// Package config loads the service configuration.
//
// Values are layered with koanf, lowest priority first:
//
//  1. built-in defaults
//  2. a YAML file (MIXGRAPH_CONFIG, config.yaml, config.yml, /etc/mixgraph/config.yaml)
//  3. environment variables
//
// Environment variables use flat legacy names (HTTP_PORT, LOG_LEVEL,
// BEAM_SEARCH_WIDTH, ...) mapped to nested keys; unmapped variables are
// ignored.
package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/tomtom215/mixgraph/internal/compat"
	"github.com/tomtom215/mixgraph/internal/logging"
	"github.com/tomtom215/mixgraph/internal/optimizer"
	"github.com/tomtom215/mixgraph/internal/validation"
)

// Config holds all service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   logging.Config  `koanf:"logging"`
	Optimizer OptimizerConfig `koanf:"optimizer"`
	Library   LibraryConfig   `koanf:"library"`
	API       APIConfig       `koanf:"api"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// OptimizerConfig holds the search knobs and the request limits of the
// optimize endpoints.
type OptimizerConfig struct {
	MaxNodesToExplore         int      `koanf:"max_nodes_to_explore"`
	BeamWidth                 int      `koanf:"beam_search_width"`
	EarlyTerminationThreshold float64  `koanf:"early_termination_threshold"`
	MinCompatibility          float64  `koanf:"min_compatibility"`
	MaxAlternatives           int      `koanf:"max_alternatives"`
	Scorers                   []string `koanf:"scorers"`
	TransitionOnly            bool     `koanf:"transition_only"`

	// RequestTimeout bounds a single optimization including graph building.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gt=0"`

	// MaxTargetLength and MaxTracks reject oversized requests before any
	// graph is built.
	MaxTargetLength int `koanf:"max_target_length" validate:"gte=1"`
	MaxTracks       int `koanf:"max_tracks" validate:"gte=1"`
}

// LibraryConfig locates the track library store.
type LibraryConfig struct {
	// Path is the BadgerDB directory. Ignored when InMemory is set.
	Path     string `koanf:"path" validate:"required_without=InMemory"`
	InMemory bool   `koanf:"in_memory"`

	// GCInterval is how often the value log is garbage collected.
	GCInterval time.Duration `koanf:"gc_interval" validate:"gt=0"`
}

// APIConfig holds HTTP API behaviour.
type APIConfig struct {
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`

	// CacheTTL and CacheEntries size the optimize response cache.
	// CacheEntries of 0 disables it.
	CacheTTL     time.Duration `koanf:"cache_ttl"`
	CacheEntries int           `koanf:"cache_entries" validate:"gte=0"`

	// ThrottleRate is the global number of optimizations started per second.
	// 0 disables the throttle.
	ThrottleRate  float64 `koanf:"throttle_rate" validate:"gte=0"`
	ThrottleBurst int     `koanf:"throttle_burst" validate:"gte=0"`

	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"gte=1"`
}

// OptimizerConfig converts the optimizer section to an optimizer.Config.
func (c *Config) OptimizerConfig() *optimizer.Config {
	scoring := compat.DefaultConfig()
	if len(c.Optimizer.Scorers) > 0 {
		scoring.Enabled = append([]string(nil), c.Optimizer.Scorers...)
	}
	scoring.TransitionOnly = c.Optimizer.TransitionOnly

	return &optimizer.Config{
		MaxNodesToExplore:         c.Optimizer.MaxNodesToExplore,
		BeamWidth:                 c.Optimizer.BeamWidth,
		EarlyTerminationThreshold: c.Optimizer.EarlyTerminationThreshold,
		MinCompatibility:          c.Optimizer.MinCompatibility,
		MaxAlternatives:           c.Optimizer.MaxAlternatives,
		Scoring:                   scoring,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}
	if err := c.OptimizerConfig().Validate(); err != nil {
		return fmt.Errorf("optimizer.%w", err)
	}
	if !c.API.RateLimitDisabled && c.API.RateLimitRequests > 0 && c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive when rate limiting is enabled, got %v", c.API.RateLimitWindow)
	}
	if c.API.CacheEntries > 0 && c.API.CacheTTL <= 0 {
		return fmt.Errorf("api.cache_ttl must be positive when the cache is enabled, got %v", c.API.CacheTTL)
	}
	if c.API.ThrottleRate > 0 && c.API.ThrottleBurst < 1 {
		return fmt.Errorf("api.throttle_burst must be positive when throttling is enabled, got %d", c.API.ThrottleBurst)
	}
	return nil
}
