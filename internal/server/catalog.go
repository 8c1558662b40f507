package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
)

const trackRoutePrefix = "/api/spotify/track/"

// CatalogHandler serves track search and lookup.
type CatalogHandler struct {
	catalog services.Catalog
	logger  *log.Logger
}

// NewCatalogHandler creates a [CatalogHandler]. A nil catalog answers every request with a credentials error.
func NewCatalogHandler(catalog services.Catalog, logger *log.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *CatalogHandler) Routes() []string {
	return []string{"/api/spotify/search", trackRoutePrefix + "{id}"}
}

func (h *CatalogHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	if strings.HasPrefix(r.URL.Path, trackRoutePrefix) {
		h.track(w, r)
		return
	}
	h.search(w, r)
}

// search answers GET /api/spotify/search?q=&limit= with flattened tracks.
func (h *CatalogHandler) search(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeError(w, http.StatusInternalServerError, "spotify_search_failed", shared.ErrMissingCredentials.Error())
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	tracks, err := h.catalog.SearchTracks(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		h.logger.Error("catalog search failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "spotify_search_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tracks)
}

// track answers GET /api/spotify/track/{id} with the raw catalog track.
func (h *CatalogHandler) track(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeError(w, http.StatusInternalServerError, "spotify_request_failed", shared.ErrMissingCredentials.Error())
		return
	}

	track, err := h.catalog.Track(r.Context(), r.PathValue("id"))
	if err != nil {
		h.logger.Error("catalog track failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "spotify_request_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, track)
}
