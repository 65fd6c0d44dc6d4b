package handlers

import (
	"net/http"
	"strings"

	applog "vartheme/internal/log"
	"vartheme/internal/theme"
)

type preferencesResponse struct {
	Name string `json:"name"`
	Mode string `json:"mode"`
}

func preferencesFor(id theme.Identity) preferencesResponse {
	return preferencesResponse{Name: string(id.Name), Mode: string(id.Mode)}
}

// UpdatePreferences changes the visitor's palette and mode. The form
// carries a theme name, a mode, or action=toggle.
func UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		applog.Debug(r.Context(), "preferences update with unsupported method", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse preferences form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	themeValue := strings.TrimSpace(r.FormValue("theme"))
	modeValue := strings.TrimSpace(r.FormValue("mode"))
	toggle := strings.TrimSpace(r.FormValue("action")) == "toggle"
	if themeValue == "" && modeValue == "" && !toggle {
		http.Error(w, "no preference provided", http.StatusBadRequest)
		return
	}

	ctx, doc, unmount := mountDocument(w, r)
	defer unmount()

	id := doc.Store.Identity()
	if themeValue != "" {
		id = doc.Store.SetTheme(ctx, themeValue)
	}
	if modeValue != "" {
		id = doc.Store.SetMode(ctx, modeValue)
	}
	if toggle {
		id = doc.Store.Toggle(ctx)
	}

	applog.Debug(r.Context(), "preferences updated", "theme", id.Name, "mode", id.Mode)
	respondChanged(w, r, preferencesFor(id))
}

// UpdateCustomColors applies generator slider values as the visitor's
// custom palette for the rest of the session.
func UpdateCustomColors(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		applog.Error(r.Context(), "failed to parse custom colors form", "error", err)
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	state := generatorState(r.PostForm)

	ctx, doc, unmount := mountDocument(w, r)
	defer unmount()

	id := doc.Store.SetCustomColors(ctx, state.Colors)
	applog.Debug(r.Context(), "custom colors applied", "primary", state.Colors.Primary, "accent", state.Colors.Accent, "mode", id.Mode)
	respondChanged(w, r, preferencesFor(id))
}
