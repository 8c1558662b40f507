package server

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/services"
)

// Options holds the collaborators served by [New].
//
// Catalog and Analyzer may be nil; their routes then answer with the same errors an unreachable
// upstream would produce. Metrics may be nil to leave /metrics unregistered.
type Options struct {
	Resolver  LyricsResolver
	Catalog   services.Catalog
	Analyzer  services.Analyzer
	Metrics   http.Handler
	StaticDir string
	Logger    *log.Logger
}

// New builds the application router with request ID, access log and recovery middleware.
func New(opts Options) *BasicRouter {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	router := NewBasicRouter()
	router.Use(RequestID(), AccessLog(logger), Recovery(logger))

	router.Handle(http.MethodGet, "/health", http.HandlerFunc(health))
	router.Handler(NewLyricsHandler(opts.Resolver, logger))
	router.Handler(NewCatalogHandler(opts.Catalog, logger))
	router.Handler(NewAnalyzeHandler(opts.Analyzer, logger))
	if opts.Metrics != nil {
		router.Handle(http.MethodGet, "/metrics", opts.Metrics)
	}
	router.Handler(NewStaticHandler(opts.StaticDir))

	return router
}

func health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
