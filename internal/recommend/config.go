// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "fmt"

// DefaultK is the number of recommendations returned per title.
const DefaultK = 5

// Config contains configuration for the recommendation engine.
type Config struct {
	// K is the maximum number of titles returned by Recommend.
	K int `json:"k"`
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{K: DefaultK}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.K < 1 {
		return fmt.Errorf("k must be at least 1, got %d", c.K)
	}
	return nil
}
