package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serves the storefront's static build: real files when they
// exist, index.html for client-routed paths.
type SPAHandler struct {
	staticDir string
	basePath  string
	indexFile string
}

func NewSPAHandler(staticDir, basePath string) *SPAHandler {
	return &SPAHandler{
		staticDir: staticDir,
		basePath:  basePath,
		indexFile: "index.html",
	}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, h.basePath)
	path = strings.TrimPrefix(path, "/")

	// API routes never fall through to the SPA
	if strings.HasPrefix(path, "v1/") || path == "v1" {
		http.NotFound(w, r)
		return
	}

	filePath := filepath.Join(h.staticDir, filepath.Clean("/"+path))

	info, err := os.Stat(filePath)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, filePath)
		return
	}

	indexPath := filepath.Join(h.staticDir, h.indexFile)
	if _, err := os.Stat(indexPath); err != nil {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, indexPath)
}
