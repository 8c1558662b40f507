package server

import (
	"net/http"
	"os"
	"path/filepath"
)

// StaticHandler serves the web frontend from a directory containing index.html.
type StaticHandler struct {
	dir   string
	files http.Handler
}

// NewStaticHandler creates a [StaticHandler] for dir. The directory is used only if it holds index.html.
func NewStaticHandler(dir string) *StaticHandler {
	h := &StaticHandler{}
	if dir != "" {
		if info, err := os.Stat(filepath.Join(dir, "index.html")); err == nil && !info.IsDir() {
			h.dir = dir
			h.files = http.FileServer(http.Dir(dir))
		}
	}
	return h
}

// Routes returns the HTTP routes this handler serves.
func (h *StaticHandler) Routes() []string {
	return []string{"/"}
}

// Available reports whether a frontend directory was found.
func (h *StaticHandler) Available() bool { return h.files != nil }

func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	if h.files == nil {
		if r.URL.Path == "/" {
			writeError(w, http.StatusInternalServerError, "frontend_not_found", "Could not find index.html in the static directory.")
			return
		}
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}

	h.files.ServeHTTP(w, r)
}
