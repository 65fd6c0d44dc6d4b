package components

import (
	"context"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"vartheme/internal/theme"
	"vartheme/internal/views/markup"
)

// CustomizeState is everything the color generator renders.
type CustomizeState struct {
	Preset  theme.Preset
	Sliders theme.Sliders
	Colors  theme.ColorSet
	Message string
	Error   string
}

// NewCustomizeState derives the generated colors from preset and sliders.
func NewCustomizeState(preset theme.Preset, sliders theme.Sliders) CustomizeState {
	sliders = sliders.Clamp()
	return CustomizeState{
		Preset:  preset,
		Sliders: sliders,
		Colors:  theme.CustomColors(preset, sliders.Primary(), sliders.AccentHue),
	}
}

type slider struct {
	name     string
	label    string
	value    int
	min, max int
}

func (s CustomizeState) sliders() []slider {
	return []slider{
		{name: "hue", label: "Primary Hue", value: s.Sliders.Hue, min: 0, max: theme.HueMax},
		{name: "sat", label: "Saturation", value: s.Sliders.Saturation, min: 0, max: theme.SaturationMax},
		{name: "lit", label: "Lightness", value: s.Sliders.Lightness, min: theme.LightnessMin, max: theme.LightnessMax},
		{name: "accent", label: "Accent Hue", value: s.Sliders.AccentHue, min: 0, max: theme.HueMax},
	}
}

// PresetLink is the generator URL that selects preset.
func PresetLink(path string, preset theme.Preset) string {
	return path + "?" + url.Values{"preset": {preset.Name}}.Encode()
}

// CustomizePanel renders the custom color generator: presets, HSL
// sliders, a live preview, the provider snippet and the brand import form.
// path is the URL the generator was served from.
func CustomizePanel(path string, state CustomizeState) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "id", "generator", "class", "generator")
		m.Element("h2", "Custom Theme Generator")

		if state.Error != "" {
			m.Element("p", state.Error, "class", "notice error", "role", "alert")
		}
		if state.Message != "" {
			m.Element("p", state.Message, "class", "notice", "role", "status")
		}

		m.Element("div", "PRESETS", "class", "caption")
		m.Open("div", "class", "presets")
		for _, preset := range theme.Presets() {
			link := PresetLink(path, preset)
			m.Open("a",
				"href", link,
				"hx-get", link,
				"hx-target", "#generator",
				"hx-select", "#generator",
				"hx-swap", "outerHTML",
				"data-state", linkState(preset.Name, state.Preset.Name),
			)
			m.Open("span", "class", "swatch", "style", "background:"+preset.Colors.Primary)
			m.Close("span")
			m.Text(preset.Name)
			m.Close("a")
		}
		m.Close("div")

		m.Open("form", "class", "sliders", "method", "get", "action", path,
			"hx-get", path, "hx-trigger", "input changed delay:150ms",
			"hx-target", "#generator", "hx-select", "#generator", "hx-swap", "outerHTML")
		m.Open("input", "type", "hidden", "name", "preset", "value", state.Preset.Name)
		for _, s := range state.sliders() {
			m.Open("label", "class", "slider")
			m.Open("span")
			m.Text(s.label)
			m.Element("strong", strconv.Itoa(s.value))
			m.Close("span")
			m.Open("input",
				"type", "range",
				"name", s.name,
				"min", strconv.Itoa(s.min),
				"max", strconv.Itoa(s.max),
				"value", strconv.Itoa(s.value),
				"style", "accent-color:"+state.Colors.Primary,
			)
			m.Close("label")
		}
		m.Element("button", "Preview", "type", "submit")
		m.Close("form")

		m.Open("div", "class", "preview", "style",
			"background:"+state.Colors.Background+";color:"+state.Colors.Text+";border-color:"+state.Colors.Border)
		for _, role := range theme.Roles {
			value := state.Colors.Get(role)
			m.Open("div", "class", "swatch-row", "data-role", string(role))
			m.Open("span", "class", "swatch", "style", "background:"+value)
			m.Close("span")
			m.Element("span", string(role))
			m.Element("code", value)
			m.Close("div")
		}
		m.Close("div")

		m.Component(ctx, CodeBlock(theme.ProviderSnippet(state.Colors), "tsx"))

		m.Open("form", "class", "apply", "method", "post", "action", "/preferences/custom")
		m.Open("input", "type", "hidden", "name", "preset", "value", state.Preset.Name)
		for _, s := range state.sliders() {
			m.Open("input", "type", "hidden", "name", s.name, "value", strconv.Itoa(s.value))
		}
		m.Open("input", "type", "hidden", "name", "return", "value", path)
		m.Element("button", "Apply to this site", "type", "submit", "class", "button primary")
		m.Close("form")

		m.Open("form", "class", "import", "method", "post", "action", "/customize/import", "enctype", "multipart/form-data")
		m.Element("div", "IMPORT BRAND GUIDE", "class", "caption")
		m.Open("input", "type", "hidden", "name", "preset", "value", state.Preset.Name)
		m.Open("input", "type", "file", "name", "guide", "accept", ".pdf,.txt,.md,.css")
		m.Open("textarea", "name", "guide_text", "rows", "3", "placeholder", "or paste hex colors, e.g. #7C3AED #06B6D4")
		m.Close("textarea")
		m.Element("button", "Extract colors", "type", "submit", "class", "button")
		m.Close("form")

		m.Close("section")
	})
}
