// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Model     ModelConfig     `koanf:"model"`
	Builder   BuilderConfig   `koanf:"builder"`
	Recommend RecommendConfig `koanf:"recommend"`
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ModelConfig locates the artifacts handed from the builder to the service.
type ModelConfig struct {
	// Dir is the artifact directory.
	Dir string `koanf:"dir"`

	// RetainVersions is how many artifact versions the builder keeps.
	// Default: 3
	RetainVersions int `koanf:"retain_versions"`
}

// BuilderConfig holds model builder settings.
type BuilderConfig struct {
	MoviesCSV  string `koanf:"movies_csv"`
	CreditsCSV string `koanf:"credits_csv"`

	// MaxFeatures caps the vocabulary size.
	// Default: 5000
	MaxFeatures int `koanf:"max_features"`

	// CastLimit is the number of leading cast members used as tags.
	// Default: 3
	CastLimit int `koanf:"cast_limit"`

	// Workers is the number of goroutines computing similarity rows.
	// 0 uses runtime.NumCPU().
	Workers int `koanf:"workers"`

	// SampleTitles are previewed in the log after a successful build.
	SampleTitles []string `koanf:"sample_titles"`
}

// RecommendConfig holds query settings for the service.
type RecommendConfig struct {
	// K is the number of recommendations returned per title.
	// Default: 5
	K int `koanf:"k"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SecurityConfig holds CORS and rate limiting settings.
// The service has no authentication.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, an optional config file and the
// environment, then validates it.
//
// See LoadWithKoanf for the layering rules.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
