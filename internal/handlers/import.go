package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"vartheme/internal/brand"
	"vartheme/internal/color"
	applog "vartheme/internal/log"
	"vartheme/internal/theme"
	"vartheme/internal/views/components"
	"vartheme/internal/views/pages"
)

// ImportBrand scans an uploaded brand guide (PDF or text) or pasted text
// for hex colors and seeds the generator with the suggested primary and
// accent.
func ImportBrand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, brand.MaxUploadSize+1<<20)
	if err := r.ParseMultipartForm(brand.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		applog.Error(r.Context(), "failed to parse brand guide upload", "error", err)
		http.Error(w, "invalid upload", http.StatusBadRequest)
		return
	}

	state := generatorState(r.Form)
	status := http.StatusOK

	suggestion, err := scanBrandGuide(r)
	switch {
	case err == nil:
		primary := color.HexToHSL(suggestion.Primary)
		sliders := theme.Sliders{
			Hue:        primary.Hue,
			Saturation: primary.Saturation,
			Lightness:  primary.Lightness,
			AccentHue:  color.HexToHSL(suggestion.Accent).Hue,
		}
		state = components.NewCustomizeState(state.Preset, sliders)
		state.Message = fmt.Sprintf("Found %d colors. Suggested primary %s and accent %s.", len(suggestion.Found), suggestion.Primary, suggestion.Accent)
		applog.Info(r.Context(), "brand guide imported", "colors", len(suggestion.Found), "primary", suggestion.Primary)
	case errors.Is(err, brand.ErrNoColors):
		state.Error = "No hex colors were found in that document."
		status = http.StatusUnprocessableEntity
	case errors.Is(err, brand.ErrUnsupported):
		state.Error = "Upload a PDF or a plain text file."
		status = http.StatusUnsupportedMediaType
	default:
		applog.Error(r.Context(), "failed to scan brand guide", "error", err)
		state.Error = "We could not read that document."
		status = http.StatusUnprocessableEntity
	}

	ctx, _, unmount := mountDocument(w, r)
	defer unmount()
	renderComponent(ctx, w, status, pages.Customize(state))
}

func scanBrandGuide(r *http.Request) (brand.Suggestion, error) {
	file, header, err := r.FormFile("guide")
	switch {
	case err == nil:
		defer file.Close()
		data, err := io.ReadAll(io.LimitReader(file, brand.MaxUploadSize))
		if err != nil {
			return brand.Suggestion{}, fmt.Errorf("read upload: %w", err)
		}
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "" || mimeType == "application/octet-stream" {
			mimeType = brand.MimeTypeFromName(header.Filename)
		}
		return brand.Scan(data, mimeType)
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return brand.Suggestion{}, fmt.Errorf("open upload: %w", err)
	}

	text := strings.TrimSpace(r.FormValue("guide_text"))
	if text == "" {
		return brand.Suggestion{}, brand.ErrNoColors
	}
	return brand.Suggest(brand.Colors(text))
}
