// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-fort-note/internal/logger"
)

// getServerVersion answers GET /api/version with the bare version string,
// which `fortnote version --server` prints next to its own build info.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.getServerVersion").Msg("client went away")
	}
}
