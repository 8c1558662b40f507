package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
)

const maxAnalyzeBody = 1 << 20

// AnalyzeHandler serves POST /api/analyze.
type AnalyzeHandler struct {
	analyzer services.Analyzer
	logger   *log.Logger
}

// NewAnalyzeHandler creates an [AnalyzeHandler].
func NewAnalyzeHandler(analyzer services.Analyzer, logger *log.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, logger: logger}
}

// Routes returns the HTTP routes this handler serves.
func (h *AnalyzeHandler) Routes() []string {
	return []string{"/api/analyze"}
}

// ServeHTTP forwards {artist, title, lyrics} to the analyzer.
// Blank lyrics answer 400 lyrics_required; analyzer failures answer 503 ml_service_unavailable.
func (h *AnalyzeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	var req models.AnalysisRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAnalyzeBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "lyrics_required", "")
		return
	}

	if h.analyzer == nil {
		writeError(w, http.StatusServiceUnavailable, "ml_service_unavailable", shared.ErrServiceUnavailable.Error())
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), req)
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "lyrics_required", "")
	case err != nil:
		h.logger.Warn("analysis failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusServiceUnavailable, "ml_service_unavailable", err.Error())
	default:
		writeJSON(w, http.StatusOK, analysis)
	}
}
