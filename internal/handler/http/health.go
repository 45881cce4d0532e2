// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

const healthTimeout = 2 * time.Second

// healthz answers 200 while the storage is reachable and 503 otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("storage is unreachable")
			http.Error(w, app.MsgServiceUnavailable, http.StatusServiceUnavailable)
			return
		}
	}

	h.writeJSON(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := io.WriteString(w, h.services.AppInfoService.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("failed to write response")
	}
}
