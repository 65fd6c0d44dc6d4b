package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	applog "vartheme/internal/log"
)

func renderComponent(ctx context.Context, w http.ResponseWriter, status int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := component.Render(ctx, w); err != nil {
		applog.Error(ctx, "failed to render component", "error", err)
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		applog.Error(ctx, "failed to encode response", "error", err)
	}
}

// localPath reports whether target is a same-site path safe to redirect to.
func localPath(target string) bool {
	return strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") && !strings.Contains(target, `\`)
}

// isHTMX reports requests issued by htmx, including boosted navigation.
// Those swap fragments instead of following redirects.
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.Header.Get("HX-Boosted") == "true"
}

// respondChanged finishes a state change. htmx requests get a full refresh
// so every fragment repaints, forms with a return path are redirected and
// everything else receives body as JSON.
func respondChanged(w http.ResponseWriter, r *http.Request, body any) {
	if isHTMX(r) {
		w.Header().Set("HX-Refresh", "true")
		writeJSON(r.Context(), w, http.StatusOK, body)
		return
	}
	if target := strings.TrimSpace(r.FormValue("return")); localPath(target) {
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, body)
}
