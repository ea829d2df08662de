// Reelmatch - Content-Based Movie Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health/ready.
type HealthStatus struct {
	Status         string    `json:"status"`
	ModelID        string    `json:"model_id"`
	ModelVersion   int       `json:"model_version"`
	ModelBuiltAt   time.Time `json:"model_built_at"`
	Movies         int       `json:"movies"`
	VocabularySize int       `json:"vocabulary_size"`
	Uptime         float64   `json:"uptime_seconds"`
}

// HealthLive reports that the process is up.
//
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady reports the loaded model. The service only listens once a
// model is loaded, so a running service is always ready.
//
// @Summary Readiness check
// @Description Reports the identity and size of the loaded model.
// @Tags Health
// @Produce json
// @Success 200 {object} HealthStatus "Model loaded"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	info := h.engine.Info()
	respondJSON(w, http.StatusOK, HealthStatus{
		Status:         "ready",
		ModelID:        info.ID,
		ModelVersion:   info.Version,
		ModelBuiltAt:   info.BuiltAt,
		Movies:         h.engine.Len(),
		VocabularySize: info.VocabularySize,
		Uptime:         time.Since(h.startTime).Seconds(),
	})
}
