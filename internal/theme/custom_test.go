package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vartheme/internal/color"
)

func TestPresetsBorrowCatalogRoles(t *testing.T) {
	t.Parallel()

	presets := Presets()
	require.Len(t, presets, 5)
	for _, p := range presets {
		assert.NoError(t, p.Colors.Validate(), p.Name)
	}

	ocean, ok := LookupPreset("ocean")
	require.True(t, ok)
	assert.Equal(t, Resolve(NameOcean, ModeDark).Border, ocean.Colors.Border)
	assert.Equal(t, "#0C1A2E", ocean.Colors.Background)

	_, ok = LookupPreset("mauve")
	assert.False(t, ok)
}

func TestPresetSliders(t *testing.T) {
	t.Parallel()

	got := PresetSliders(DefaultPreset())
	assert.Equal(t, Sliders{Hue: 262, Saturation: 83, Lightness: 58, AccentHue: 189}, got)
}

func TestCustomColorsFromSliders(t *testing.T) {
	t.Parallel()

	s := DefaultSliders()
	got := CustomColors(DefaultPreset(), s.Primary(), s.AccentHue)

	assert.Equal(t, "#9952E0", got.Primary)
	assert.Equal(t, "#52C9E0", got.Accent)
	assert.Equal(t, DefaultPreset().Colors.Background, got.Background)

	got = CustomColors(DefaultPreset(), color.HSL{Hue: 200, Saturation: 80, Lightness: 50}, 200)
	assert.Equal(t, "#19A1E6", got.Primary)
}

func TestSlidersClamp(t *testing.T) {
	t.Parallel()

	got := Sliders{Hue: 400, Saturation: -5, Lightness: 95, AccentHue: -1}.Clamp()
	assert.Equal(t, Sliders{Hue: 360, Saturation: 0, Lightness: 80, AccentHue: 0}, got)
}

func TestProviderSnippet(t *testing.T) {
	t.Parallel()

	snippet := ProviderSnippet(ColorSet{Primary: "#9952E0", Accent: "#52C9E0"})
	assert.Contains(t, snippet, `theme="custom"`)
	assert.Contains(t, snippet, `primary: "#9952E0",`)
	assert.Contains(t, snippet, `accent:  "#52C9E0",`)
	assert.Contains(t, snippet, "<App />")
}
