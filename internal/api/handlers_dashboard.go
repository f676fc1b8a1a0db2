// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/listenlog/internal/dashboard"
	"github.com/tomtom215/listenlog/internal/metrics"
	"github.com/tomtom215/listenlog/internal/models"
)

// Kpis returns the whole-history KPIs. They never depend on a selection.
func (h *Handler) Kpis(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, h.binder.Context().Kpis(), start)
}

// Artists returns the dropdown options in first-seen order.
func (h *Handler) Artists(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, h.binder.Context().ArtistOptions(), start)
}

// Dataset describes the loaded dataset.
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	dash := h.binder.Context()
	respondSuccess(w, r, models.DatasetInfo{
		Rows:     dash.Rows(),
		Artists:  len(dash.ArtistOptions()),
		LoadedAt: dash.LoadedAt().UTC(),
	}, start)
}

// Dashboard recomputes the panel for ?artist=. A missing or empty artist
// selects the whole history.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	sel := dashboard.Selection{Artist: r.URL.Query().Get("artist")}
	if apiErr := validateRequest(&sel); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr)
		return
	}

	ctx := dashboard.WithTransport(r.Context(), metrics.TransportHTTP)
	panel, err := h.binder.Select(ctx, sel.Artist)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		respondError(w, r, http.StatusInternalServerError, ErrorCodeInternal, "Failed to recompute dashboard", err)
		return
	}

	respondSuccess(w, r, panel, start)
}
