// Package color converts between the hex triplets used by palettes and the
// hue/saturation/lightness space the custom color sliders operate in.
//
// Conversions round HSL components to integers, so a hex -> HSL -> hex
// round trip is not lossless: each 8-bit channel may drift by up to
// RoundTripTolerance.
package color

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RoundTripTolerance is the largest per-channel difference between x and
// HSLToHex(HexToHSL(x)) over the whole 24-bit RGB cube.
const RoundTripTolerance = 5

// LightThreshold is the HSL lightness (0-100) at or above which a
// background is considered light.
const LightThreshold = 85

// HSL is an integer hue/saturation/lightness triple.
type HSL struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

// Clamp wraps hue into [0,360) and bounds saturation and lightness to [0,100].
func (c HSL) Clamp() HSL {
	hue := c.Hue % 360
	if hue < 0 {
		hue += 360
	}
	return HSL{
		Hue:        hue,
		Saturation: clampInt(c.Saturation, 0, 100),
		Lightness:  clampInt(c.Lightness, 0, 100),
	}
}

// Hex converts the triple to an upper-case #RRGGBB string.
func (c HSL) Hex() string {
	return HSLToHex(c.Hue, c.Saturation, c.Lightness)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// Parse is HexToHSL for callers that need to know the input was malformed.
func Parse(hex string) (HSL, error) {
	parsed, err := parse(hex)
	if err != nil {
		return HSL{}, err
	}
	return toHSL(parsed), nil
}

// HexToHSL converts a #RRGGBB (or #RGB) string to rounded HSL components.
// Grays yield hue 0 and saturation 0. Malformed input yields the zero triple.
func HexToHSL(hex string) HSL {
	parsed, err := parse(hex)
	if err != nil {
		return HSL{}
	}
	return toHSL(parsed)
}

// toHSL works from the 8-bit channels, picks the hue sector by the largest
// channel and rounds half up. colorful's own Hsl differs by one hue unit
// on some inputs (#002778 is 220 here, 221 there).
func toHSL(parsed colorful.Color) HSL {
	r8, g8, b8 := parsed.RGB255()
	r, g, b := float64(r8)/255, float64(g8)/255, float64(b8)/255
	hi, lo := math.Max(r, math.Max(g, b)), math.Min(r, math.Min(g, b))

	var h, s float64
	l := (hi + lo) / 2
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}
	return HSL{
		Hue:        roundHalfUp(h * 360),
		Saturation: roundHalfUp(s * 100),
		Lightness:  roundHalfUp(l * 100),
	}.Clamp()
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// HSLToHex converts HSL components to an upper-case #RRGGBB string. Out of
// range inputs are clamped first; saturation 0 produces a pure gray.
func HSLToHex(h, s, l int) string {
	c := HSL{Hue: h, Saturation: s, Lightness: l}.Clamp()
	rgb := colorful.Hsl(float64(c.Hue), float64(c.Saturation)/100, float64(c.Lightness)/100)
	return strings.ToUpper(rgb.Clamped().Hex())
}

// Normalize returns hex in upper-case #RRGGBB form. Three digit shorthand is
// expanded. The boolean is false when hex is not a color.
func Normalize(hex string) (string, bool) {
	parsed, err := parse(hex)
	if err != nil {
		return "", false
	}
	return strings.ToUpper(parsed.Hex()), true
}

// Valid reports whether hex is a #RRGGBB triplet.
func Valid(hex string) bool {
	hex = strings.TrimSpace(hex)
	if len(hex) != 7 || hex[0] != '#' {
		return false
	}
	for _, r := range hex[1:] {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

// WithAlpha appends an alpha channel to hex, producing #RRGGBBAA. Malformed
// input is returned unchanged.
func WithAlpha(hex string, alpha uint8) string {
	normalized, ok := Normalize(hex)
	if !ok {
		return hex
	}
	return fmt.Sprintf("%s%02X", normalized, alpha)
}

// IsLight reports whether hex is light enough to be treated as a light
// background. Malformed input is treated as dark.
func IsLight(hex string) bool {
	parsed, err := parse(hex)
	if err != nil {
		return false
	}
	return toHSL(parsed).Lightness >= LightThreshold
}

// ErrMalformed reports input that is not a hex color.
var ErrMalformed = errors.New("color: malformed hex color")

func parse(hex string) (colorful.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) == 9 {
		// drop an alpha channel, the conversions are opaque only
		hex = hex[:7]
	}
	if len(hex) != 4 && len(hex) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformed, hex)
	}
	for _, r := range hex[1:] {
		if !isHexDigit(r) {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrMalformed, hex)
		}
	}
	return colorful.Hex(hex)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
