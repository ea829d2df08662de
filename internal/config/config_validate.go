// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
)

// maxVocabulary bounds BUILDER_MAX_FEATURES so a typo cannot blow up memory.
const maxVocabulary = 1_000_000

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateModel(); err != nil {
		return err
	}

	if err := c.validateBuilder(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateModel() error {
	if strings.TrimSpace(c.Model.Dir) == "" {
		return fmt.Errorf("MODEL_DIR is required")
	}
	if c.Model.RetainVersions < 1 {
		return fmt.Errorf("MODEL_RETAIN_VERSIONS must be at least 1")
	}
	return nil
}

// validateBuilder validates builder settings. File existence is checked by
// the builder itself so the service can start without the CSV inputs.
func (c *Config) validateBuilder() error {
	if c.Builder.MoviesCSV == "" {
		return fmt.Errorf("MOVIES_CSV is required")
	}
	if c.Builder.CreditsCSV == "" {
		return fmt.Errorf("CREDITS_CSV is required")
	}
	if c.Builder.MaxFeatures < 1 || c.Builder.MaxFeatures > maxVocabulary {
		return fmt.Errorf("BUILDER_MAX_FEATURES must be between 1 and %d", maxVocabulary)
	}
	if c.Builder.CastLimit < 0 {
		return fmt.Errorf("BUILDER_CAST_LIMIT must be non-negative")
	}
	if c.Builder.Workers < 0 {
		return fmt.Errorf("BUILDER_WORKERS must be non-negative (0 = number of CPUs)")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.K < 1 {
		return fmt.Errorf("RECOMMEND_K must be at least 1")
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow any)")
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}

	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1 when rate limiting is enabled")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
