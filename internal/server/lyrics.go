package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/shared"
)

// LyricsHandler serves GET /api/lyrics?artist=&title=.
type LyricsHandler struct {
	resolver LyricsResolver
	logger   *log.Logger
}

// NewLyricsHandler creates a [LyricsHandler].
func NewLyricsHandler(resolver LyricsResolver, logger *log.Logger) *LyricsHandler {
	return &LyricsHandler{resolver: resolver, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *LyricsHandler) Routes() []string {
	return []string{"/api/lyrics"}
}

// ServeHTTP answers 200 with the resolved lyrics, 404 when no provider had them, 400 for a blank artist or
// title and 500 when a provider failed.
func (h *LyricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}
	if h.resolver == nil {
		writeError(w, http.StatusInternalServerError, "lyrics_request_failed", shared.ErrNotImplemented.Error())
		return
	}

	query := r.URL.Query()
	q := lyrics.Query{Artist: query.Get("artist"), Title: query.Get("title")}

	result, err := h.resolver.Resolve(r.Context(), q)
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case err != nil:
		h.logger.Error("lyrics request failed", "artist", q.Artist, "title", q.Title, "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "lyrics_request_failed", err.Error())
	case !result.Found():
		writeError(w, http.StatusNotFound, "lyrics_not_found",
			fmt.Sprintf("No lyrics found for %q by %q.", result.Title, result.Artist))
	default:
		writeJSON(w, http.StatusOK, result)
	}
}
