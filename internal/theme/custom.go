package theme

import (
	"fmt"
	"strings"

	"vartheme/internal/color"
)

// Preset is a starting point for the custom color generator.
type Preset struct {
	Name   string
	Colors ColorSet
}

// Bounds of the generator sliders. Lightness is kept away from the
// extremes so generated colors stay visible on dark backgrounds.
const (
	HueMax        = 360
	SaturationMax = 100
	LightnessMin  = 20
	LightnessMax  = 80
)

var presets = []Preset{
	{Name: "Violet", Colors: presetColors(NameDefault, "#7C3AED", "#06B6D4", "#0A0A0F", "#111118", "#F8FAFC")},
	{Name: "Ocean", Colors: presetColors(NameOcean, "#0284C7", "#0D9488", "#0C1A2E", "#0F2744", "#E0F2FE")},
	{Name: "Forest", Colors: presetColors(NameForest, "#16A34A", "#84CC16", "#0A1F0F", "#0F2D17", "#DCFCE7")},
	{Name: "Sunset", Colors: presetColors(NameSunset, "#EA580C", "#DB2777", "#1A0A00", "#2D1200", "#FFEDD5")},
	{Name: "Rose", Colors: presetColors(NameRose, "#E11D48", "#BE185D", "#1A0008", "#2D000F", "#FFE4E6")},
}

func presetColors(base Name, primary, accent, background, surface, text string) ColorSet {
	dark := Resolve(base, ModeDark)
	return ColorSet{
		Primary:    primary,
		Accent:     accent,
		Background: background,
		Surface:    surface,
		Text:       text,
		Border:     dark.Border,
		Muted:      dark.Muted,
	}
}

// Presets returns the generator presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// DefaultPreset is the preset selected when the generator opens.
func DefaultPreset() Preset {
	return presets[0]
}

// LookupPreset finds a preset by name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Sliders holds the generator controls.
type Sliders struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
	AccentHue  int `json:"accentHue"`
}

// DefaultSliders are the positions the generator opens with.
func DefaultSliders() Sliders {
	return Sliders{Hue: 270, Saturation: 70, Lightness: 60, AccentHue: 190}
}

// Clamp keeps every slider within its track.
func (s Sliders) Clamp() Sliders {
	return Sliders{
		Hue:        clampSlider(s.Hue, 0, HueMax),
		Saturation: clampSlider(s.Saturation, 0, SaturationMax),
		Lightness:  clampSlider(s.Lightness, LightnessMin, LightnessMax),
		AccentHue:  clampSlider(s.AccentHue, 0, HueMax),
	}
}

// Primary returns the primary color the sliders describe.
func (s Sliders) Primary() color.HSL {
	return color.HSL{Hue: s.Hue, Saturation: s.Saturation, Lightness: s.Lightness}
}

// PresetSliders recovers slider positions from a preset's primary and
// accent colors.
func PresetSliders(p Preset) Sliders {
	primary := color.HexToHSL(p.Colors.Primary)
	accent := color.HexToHSL(p.Colors.Accent)
	return Sliders{
		Hue:        primary.Hue,
		Saturation: primary.Saturation,
		Lightness:  primary.Lightness,
		AccentHue:  accent.Hue,
	}
}

// CustomColors derives a custom palette from preset. The accent shares the
// primary's saturation and lightness.
func CustomColors(preset Preset, primary color.HSL, accentHue int) ColorSet {
	out := preset.Colors
	out.Primary = color.HSLToHex(primary.Hue, primary.Saturation, primary.Lightness)
	out.Accent = color.HSLToHex(accentHue, primary.Saturation, primary.Lightness)
	return out
}

// ProviderSnippet is the provider markup that reproduces colors in an
// application using the library.
func ProviderSnippet(colors ColorSet) string {
	return fmt.Sprintf(`<ThemeProvider
  theme="custom"
  colors={{
    primary: "%s",
    accent:  "%s",
  }}
>
  <App />
</ThemeProvider>`, colors.Primary, colors.Accent)
}

func clampSlider(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
