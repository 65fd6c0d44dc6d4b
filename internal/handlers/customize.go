package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	applog "vartheme/internal/log"
	"vartheme/internal/theme"
	"vartheme/internal/views/components"
	"vartheme/internal/views/pages"
)

// Customize renders the custom theme generator.
func Customize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx, _, unmount := mountDocument(w, r)
	defer unmount()
	renderComponent(ctx, w, http.StatusOK, pages.Customize(generatorState(r.URL.Query())))
}

// NotFound renders the 404 page, which hosts the generator.
func NotFound(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "no route for path", "path", r.URL.Path, "method", r.Method)

	ctx, _, unmount := mountDocument(w, r)
	defer unmount()
	renderComponent(ctx, w, http.StatusNotFound, pages.NotFound(r.URL.Path, generatorState(r.URL.Query())))
}

// generatorState reads the preset and slider positions from values.
// Sliders start at the preset's own colors when a preset is named and at
// the generator defaults otherwise; explicit slider values win.
func generatorState(values url.Values) components.CustomizeState {
	preset, sliders := theme.DefaultPreset(), theme.DefaultSliders()
	if name := strings.TrimSpace(values.Get("preset")); name != "" {
		if p, ok := theme.LookupPreset(name); ok {
			preset = p
			sliders = theme.PresetSliders(p)
		}
	}

	sliders.Hue = parseIntWithDefault(values.Get("hue"), sliders.Hue)
	sliders.Saturation = parseIntWithDefault(values.Get("sat"), sliders.Saturation)
	sliders.Lightness = parseIntWithDefault(values.Get("lit"), sliders.Lightness)
	sliders.AccentHue = parseIntWithDefault(values.Get("accent"), sliders.AccentHue)

	return components.NewCustomizeState(preset, sliders)
}

func parseIntWithDefault(value string, fallback int) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
