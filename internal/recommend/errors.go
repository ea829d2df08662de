// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "errors"

// Request errors. Anything else returned by the Engine is an internal fault.
var (
	// ErrMissingParameter is returned when the query title is empty.
	ErrMissingParameter = errors.New("movie title parameter is required")

	// ErrNotFound is returned when the title is not in the model.
	ErrNotFound = errors.New("movie not found")
)
