package handlers

import (
	"encoding/hex"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"

	"vartheme/internal/theme"
	"vartheme/internal/views/layout"
)

type themeResponse struct {
	Name      string            `json:"name"`
	Mode      string            `json:"mode"`
	Colors    theme.ColorSet    `json:"colors"`
	Variables map[string]string `json:"variables"`
	Version   uint64            `json:"version"`
}

// ThemeState reports the visitor's identity and the projected surface.
func ThemeState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, doc, unmount := mountDocument(w, r)
	defer unmount()

	snap := doc.Surface.Snapshot()
	variables := make(map[string]string, len(theme.Variables))
	for v, value := range snap.Values() {
		variables["--"+string(v)] = value
	}

	writeJSON(ctx, w, http.StatusOK, themeResponse{
		Name:      string(snap.Identity.Name),
		Mode:      string(snap.Mode()),
		Colors:    doc.Store.Colors(),
		Variables: variables,
		Version:   snap.Version,
	})
}

// Stylesheet serves the visitor's surface as CSS custom properties. The
// ETag is a fingerprint of the body, so unchanged themes answer 304.
func Stylesheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	_, doc, unmount := mountDocument(w, r)
	defer unmount()

	css := layout.Stylesheet(doc.Surface.Snapshot())
	etag := stylesheetETag(css)

	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "Cookie")
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write([]byte(css))
}

func stylesheetETag(body string) string {
	sum := blake2b.Sum256([]byte(body))
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

func etagMatches(header, etag string) bool {
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
