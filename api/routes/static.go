package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
)

// mountClient serves the built web client from dist. Unknown non-API paths
// fall back to index.html so client-side routing keeps working on refresh.
func mountClient(r chi.Router, dist string) {
	fileServer := http.FileServer(http.Dir(dist))
	index := filepath.Join(dist, "index.html")

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet && req.Method != http.MethodHead {
			http.NotFound(w, req)
			return
		}

		path := strings.TrimPrefix(req.URL.Path, "/")
		if path != "" {
			if info, err := os.Stat(filepath.Join(dist, filepath.Clean(path))); err == nil && !info.IsDir() {
				fileServer.ServeHTTP(w, req)
				return
			}
		}

		http.ServeFile(w, req, index)
	})
}
