// Package brand pulls candidate palette colors out of uploaded brand
// guides so they can seed the custom color generator.
package brand

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"vartheme/internal/color"
	"vartheme/internal/theme"
)

// MaxUploadSize bounds brand guide uploads.
const MaxUploadSize = 5 << 20 // 5 MiB

// minAccentDistance is the smallest hue gap between a suggested primary
// and accent.
const minAccentDistance = 30

var (
	// ErrNoColors is returned when a document contains no hex colors.
	ErrNoColors = errors.New("brand: no hex colors found")
	// ErrUnsupported is returned for uploads that are neither PDF nor text.
	ErrUnsupported = errors.New("brand: unsupported document type")
)

var hexPattern = regexp.MustCompile(`#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`)

// Suggestion is the outcome of scanning a document.
type Suggestion struct {
	Primary string   `json:"primary"`
	Accent  string   `json:"accent"`
	Found   []string `json:"found"`
}

// MimeTypeFromName guesses the document type from a file name.
func MimeTypeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt", ".md", ".css":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// ExtractText returns the readable text of a PDF or plain-text document.
func ExtractText(data []byte, mimeType string) (string, error) {
	switch {
	case mimeType == "application/pdf" || bytes.HasPrefix(data, []byte("%PDF")):
		return extractTextFromPDF(data)
	case strings.HasPrefix(mimeType, "text/") || utf8.Valid(data):
		return string(data), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupported, mimeType)
	}
}

// newPDFReader is swapped in tests.
var newPDFReader = pdf.NewReader

// extractTextFromPDF converts panics raised by the pdf reader on corrupt
// cross-reference tables into errors.
func extractTextFromPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("brand: malformed pdf: %v", r)
		}
	}()

	reader, err := newPDFReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("brand: open pdf: %w", err)
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("brand: read page %d: %w", i, err)
		}
		builder.WriteString(pageText)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// Colors returns the distinct hex colors in text, normalized to #RRGGBB,
// in order of first appearance.
func Colors(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, match := range hexPattern.FindAllString(text, -1) {
		normalized, ok := color.Normalize(match)
		if !ok {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

// Suggest picks a primary and an accent from colors. The primary is the
// most vivid color; the accent is the most vivid one whose hue differs by
// at least 30 degrees, falling back to the primary's hue rotated by 80.
func Suggest(colors []string) (Suggestion, error) {
	if len(colors) == 0 {
		return Suggestion{}, ErrNoColors
	}

	type candidate struct {
		hex   string
		hsl   color.HSL
		score float64
	}
	candidates := make([]candidate, 0, len(colors))
	for _, hex := range colors {
		hsl := color.HexToHSL(hex)
		candidates = append(candidates, candidate{hex: hex, hsl: hsl, score: vividness(hsl)})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	primary := candidates[0]
	out := Suggestion{Primary: primary.hex, Found: colors}
	for _, c := range candidates[1:] {
		if c.hsl.Saturation > 0 && hueDistance(primary.hsl.Hue, c.hsl.Hue) >= minAccentDistance {
			out.Accent = c.hex
			break
		}
	}
	if out.Accent == "" {
		out.Accent = color.HSLToHex(primary.hsl.Hue+80, primary.hsl.Saturation, primary.hsl.Lightness)
	}
	return out, nil
}

// Scan extracts text from data and suggests colors from it.
func Scan(data []byte, mimeType string) (Suggestion, error) {
	text, err := ExtractText(data, mimeType)
	if err != nil {
		return Suggestion{}, err
	}
	return Suggest(Colors(text))
}

// Apply overlays a suggestion onto a generator preset.
func Apply(preset theme.Preset, s Suggestion) theme.ColorSet {
	colors := preset.Colors
	if s.Primary != "" {
		colors.Primary = s.Primary
	}
	if s.Accent != "" {
		colors.Accent = s.Accent
	}
	return colors
}

// vividness favours saturated colors of medium lightness; near-white and
// near-black swatches score low.
func vividness(c color.HSL) float64 {
	lightnessPenalty := math.Abs(float64(c.Lightness)-55) / 55
	return float64(c.Saturation) * (1 - lightnessPenalty)
}

func hueDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	d %= 360
	if d > 180 {
		d = 360 - d
	}
	return d
}
