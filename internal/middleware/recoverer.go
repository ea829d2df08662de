// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// InternalErrorMessage is the body text of every 500 response.
const InternalErrorMessage = "Internal server error."

// Recoverer turns a handler panic into the standard JSON 500 body and logs
// the panic value with its stack. http.ErrAbortHandler is re-raised so the
// server can abort the connection as usual.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel panic value, compared by identity
				panic(rec)
			}

			logging.Ctx(r.Context()).Error().
				Interface("panic", rec).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Bytes("stack", debug.Stack()).
				Msg("Recovered from handler panic")

			WriteInternalError(w)
		}()

		next.ServeHTTP(w, r)
	})
}

// WriteInternalError writes {"error": "Internal server error."} with status 500.
func WriteInternalError(w http.ResponseWriter) {
	body, err := json.Marshal(map[string]string{"error": InternalErrorMessage})
	if err != nil {
		http.Error(w, InternalErrorMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(body) //nolint:errcheck // client may have gone away
}
