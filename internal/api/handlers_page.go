// Listenlog - Listening History Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listenlog

package api

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/tomtom215/listenlog/internal/auth"
	"github.com/tomtom215/listenlog/internal/charts"
	"github.com/tomtom215/listenlog/internal/logging"
	"github.com/tomtom215/listenlog/internal/models"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

const pageTemplateName = "index.html.tmpl"

func parsePageTemplate() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/"+pageTemplateName)
}

// pageData feeds the page template.
type pageData struct {
	Nonce         string
	ChartJSOrigin string
	Kpis          models.Kpis
	Artists       []models.ArtistOption
	Slots         pageSlots
}

// pageSlots names the element IDs the page script fills.
type pageSlots struct {
	Trend     string
	Artists   string
	Reasons   string
	Platforms string
	WordCloud string
}

var slots = pageSlots{
	Trend:     charts.SlotTrend,
	Artists:   charts.SlotTopArtists,
	Reasons:   charts.SlotReasons,
	Platforms: charts.SlotPlatforms,
	WordCloud: charts.SlotWordImage,
}

// Index renders the dashboard page. KPI cards and the dropdown are
// rendered server side; the script then requests the all-artists panel.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	dash := h.binder.Context()
	data := pageData{
		Nonce:         auth.NonceFromContext(r.Context()),
		ChartJSOrigin: auth.ChartJSOrigin,
		Kpis:          dash.Kpis(),
		Artists:       dash.ArtistOptions(),
		Slots:         slots,
	}

	var buf bytes.Buffer
	if err := h.page.ExecuteTemplate(&buf, pageTemplateName, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute index template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write index page")
	}
}
