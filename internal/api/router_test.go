// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	_ "github.com/tomtom215/reelmatch/docs"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// testTitles is the build order of the test model.
var testTitles = []string{"Avatar", "Aliens", "Titanic", "Terminator", "Abyss", "Batman", "Zodiac"}

func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	movies := make([]recommend.MovieRecord, len(testTitles))
	for i, title := range testTitles {
		movies[i] = recommend.MovieRecord{ID: int64(i + 1), Title: title, Tags: "tag"}
	}

	// Score falls with distance in build order.
	sim := recommend.NewSimilarityMatrix(len(testTitles))
	for i := range testTitles {
		for j := range testTitles {
			d := i - j
			if d < 0 {
				d = -d
			}
			sim.Set(i, j, 1/float32(1+d))
		}
	}

	engine, err := recommend.NewEngine(&recommend.Model{
		Info:       recommend.ModelInfo{ID: "model-1", Version: 3, BuiltAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), VocabularySize: 42},
		Movies:     movies,
		Similarity: sim,
	}, recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func newTestRouter(t *testing.T, engine Recommender, mw *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	return NewRouter(NewHandler(engine), NewChiMiddleware(mw)).SetupChi()
}

func get(t *testing.T, h http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeStrings(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var out []string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestMovies(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testEngine(t), nil)
	rec := get(t, h, "/movies", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	want := []string{"Abyss", "Aliens", "Avatar", "Batman", "Terminator", "Titanic", "Zodiac"}
	if got := decodeStrings(t, rec); !reflect.DeepEqual(got, want) {
		t.Errorf("GET /movies = %v, want %v", got, want)
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testEngine(t), nil)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantTitles []string
		wantError  string
	}{
		{
			name:       "known title",
			query:      "?movie=Avatar",
			wantStatus: http.StatusOK,
			wantTitles: []string{"Aliens", "Titanic", "Terminator", "Abyss", "Batman"},
		},
		{
			name:       "middle title ties broken by build order",
			query:      "?movie=Terminator",
			wantStatus: http.StatusOK,
			wantTitles: []string{"Titanic", "Abyss", "Aliens", "Batman", "Avatar"},
		},
		{
			name:       "missing parameter",
			query:      "",
			wantStatus: http.StatusBadRequest,
			wantError:  "Movie title parameter is required.",
		},
		{
			name:       "empty parameter",
			query:      "?movie=",
			wantStatus: http.StatusBadRequest,
			wantError:  "Movie title parameter is required.",
		},
		{
			name:       "unknown title",
			query:      "?movie=" + url.QueryEscape("Nonexistent Film"),
			wantStatus: http.StatusNotFound,
			wantError:  "Movie not found.",
		},
		{
			name:       "case sensitive",
			query:      "?movie=avatar",
			wantStatus: http.StatusNotFound,
			wantError:  "Movie not found.",
		},
		{
			name:       "whitespace is not trimmed",
			query:      "?movie=" + url.QueryEscape(" Avatar"),
			wantStatus: http.StatusNotFound,
			wantError:  "Movie not found.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, "/recommend"+tt.query, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantTitles != nil {
				if got := decodeStrings(t, rec); !reflect.DeepEqual(got, tt.wantTitles) {
					t.Errorf("titles = %v, want %v", got, tt.wantTitles)
				}
				return
			}
			body := decodeError(t, rec)
			if len(body) != 1 || body["error"] != tt.wantError {
				t.Errorf("body = %v, want error %q", body, tt.wantError)
			}
		})
	}
}

type fakeRecommender struct {
	recommend func(ctx context.Context, title string) ([]string, error)
}

func (f *fakeRecommender) Titles() []string { return []string{} }
func (f *fakeRecommender) Recommend(ctx context.Context, title string) ([]string, error) {
	return f.recommend(ctx, title)
}
func (f *fakeRecommender) Info() recommend.ModelInfo { return recommend.ModelInfo{} }
func (f *fakeRecommender) Len() int                  { return 0 }

func TestRecommend_InternalFault(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(context.Context, string) ([]string, error)
		wantDelta float64
	}{
		{
			name: "engine error",
			fn: func(context.Context, string) ([]string, error) {
				return nil, errors.New("row index out of range")
			},
			wantDelta: 1,
		},
		{
			name: "engine panic",
			fn: func(context.Context, string) ([]string, error) {
				panic("corrupted matrix")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupError))

			h := newTestRouter(t, &fakeRecommender{recommend: tt.fn}, nil)
			rec := get(t, h, "/recommend?movie=Avatar", nil)

			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rec.Code)
			}
			if body := decodeError(t, rec); body["error"] != "Internal server error." {
				t.Errorf("body = %v", body)
			}

			after := testutil.ToFloat64(metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupError))
			if after-before != tt.wantDelta {
				t.Errorf("error lookups delta = %v, want %v", after-before, tt.wantDelta)
			}
		})
	}
}

func TestRecommend_ClientCanceled(t *testing.T) {
	canceled := metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupCanceled)
	failed := metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupError)
	canceledBefore, failedBefore := testutil.ToFloat64(canceled), testutil.ToFloat64(failed)

	h := newTestRouter(t, &fakeRecommender{recommend: func(context.Context, string) ([]string, error) {
		return nil, fmt.Errorf("rank Avatar: %w", context.Canceled)
	}}, nil)
	rec := get(t, h, "/recommend?movie=Avatar", nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if body := decodeError(t, rec); body["error"] != CanceledMessage {
		t.Errorf("body = %v", body)
	}
	if d := testutil.ToFloat64(canceled) - canceledBefore; d != 1 {
		t.Errorf("canceled lookups delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(failed) - failedBefore; d != 0 {
		t.Errorf("error lookups delta = %v, want 0", d)
	}
}

func TestRecommend_RecordsLookups(t *testing.T) {
	h := newTestRouter(t, testEngine(t), nil)

	hit := metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupHit)
	notFound := metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupNotFound)
	missing := metrics.RecommendLookupsTotal.WithLabelValues(metrics.LookupMissing)
	hitBefore, nfBefore, missingBefore := testutil.ToFloat64(hit), testutil.ToFloat64(notFound), testutil.ToFloat64(missing)

	get(t, h, "/recommend?movie=Avatar", nil)
	get(t, h, "/recommend?movie=Unknown", nil)
	get(t, h, "/recommend", nil)

	if d := testutil.ToFloat64(hit) - hitBefore; d != 1 {
		t.Errorf("hit delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(notFound) - nfBefore; d != 1 {
		t.Errorf("not_found delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(missing) - missingBefore; d != 1 {
		t.Errorf("missing delta = %v, want 1", d)
	}
}

func TestCORS(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testEngine(t), nil)

	rec := get(t, h, "/movies", map[string]string{"Origin": "https://frontend.example"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}

	req := httptest.NewRequest(http.MethodOptions, "/recommend?movie=Avatar", nil)
	req.Header.Set("Origin", "https://frontend.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	pre := httptest.NewRecorder()
	h.ServeHTTP(pre, req)

	if pre.Code < 200 || pre.Code > 299 {
		t.Errorf("preflight status = %d", pre.Code)
	}
	if got := pre.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("preflight Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://allowed.example"}
	h := newTestRouter(t, testEngine(t), cfg)

	rec := get(t, h, "/movies", map[string]string{"Origin": "https://allowed.example"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
		t.Errorf("allowed origin header = %q", got)
	}

	rec = get(t, h, "/movies", map[string]string{"Origin": "https://other.example"})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin header = %q, want empty", got)
	}
}

func TestRequestIDHeader(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testEngine(t), nil)

	rec := get(t, h, "/movies", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response should carry a generated X-Request-ID")
	}

	rec = get(t, h, "/movies", map[string]string{"X-Request-ID": "upstream-id"})
	if got := rec.Header().Get("X-Request-ID"); got != "upstream-id" {
		t.Errorf("X-Request-ID = %q, want upstream-id", got)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = false
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	h := newTestRouter(t, testEngine(t), cfg)

	before := testutil.ToFloat64(metrics.APIRateLimitHits)

	for i := 0; i < 2; i++ {
		if rec := get(t, h, "/movies", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}

	rec := get(t, h, "/movies", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if body := decodeError(t, rec); body["error"] != RateLimitMessage {
		t.Errorf("body = %v", body)
	}
	if d := testutil.ToFloat64(metrics.APIRateLimitHits) - before; d != 1 {
		t.Errorf("rate limit hits delta = %v, want 1", d)
	}

	// Health is not rate limited
	if rec := get(t, h, "/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, testEngine(t), nil)

	if rec := get(t, h, "/health/live", nil); rec.Code != http.StatusOK {
		t.Errorf("live status = %d", rec.Code)
	}

	rec := get(t, h, "/health/ready", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("ready status = %d", rec.Code)
	}
	var status HealthStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.Status != "ready" || status.ModelID != "model-1" || status.ModelVersion != 3 ||
		status.Movies != len(testTitles) || status.VocabularySize != 42 {
		t.Errorf("ready = %+v", status)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h := newTestRouter(t, testEngine(t), nil)
	get(t, h, "/recommend?movie=Avatar", nil)

	rec := get(t, h, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, name := range []string{"recommend_lookups_total", "api_requests_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestSwaggerDoc(t *testing.T) {
	h := newTestRouter(t, testEngine(t), nil)

	rec := get(t, h, "/swagger/doc.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, path := range []string{`"/movies"`, `"/recommend"`, `"/health/ready"`, `"api.ErrorResponse"`} {
		if !strings.Contains(body, path) {
			t.Errorf("swagger doc missing %s", path)
		}
	}
}

func TestChiMiddlewareConfigFromSecurity(t *testing.T) {
	t.Parallel()

	cfg := ChiMiddlewareConfigFromSecurity(config.SecurityConfig{
		CORSOrigins:     []string{"https://a.example"},
		RateLimitReqs:   10,
		RateLimitWindow: time.Second,
	})

	if !reflect.DeepEqual(cfg.CORSAllowedOrigins, []string{"https://a.example"}) {
		t.Errorf("origins = %v", cfg.CORSAllowedOrigins)
	}
	if cfg.RateLimitDisabled || cfg.RateLimitRequests != 10 || cfg.RateLimitWindow != time.Second {
		t.Errorf("rate limit = %d/%v disabled=%v", cfg.RateLimitRequests, cfg.RateLimitWindow, cfg.RateLimitDisabled)
	}
}
