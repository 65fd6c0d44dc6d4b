package handlers

import (
	"net/http"

	"vartheme/internal/views/pages"
)

// Home renders the landing page. Every other unmatched path is a 404.
func Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, _, unmount := mountDocument(w, r)
	defer unmount()
	renderComponent(ctx, w, http.StatusOK, pages.Home())
}

// Docs renders the documentation page.
func Docs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, _, unmount := mountDocument(w, r)
	defer unmount()
	renderComponent(ctx, w, http.StatusOK, pages.Docs())
}
