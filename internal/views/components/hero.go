package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"vartheme/internal/stats"
	"vartheme/internal/theme"
	"vartheme/internal/views/markup"
)

// Hero is the landing section: headline, live theme controls and a
// preview card painted with the active palette.
func Hero() templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		id := currentIdentity(ctx)

		m.Open("section", "class", "hero")
		m.Open("div", "class", "hero-copy")
		m.Element("span", "React theming, zero config", "class", "eyebrow")
		m.Element("h1", "Beautiful themes for React in one line")
		m.Element("p", "Five hand-crafted palettes, an animated toggle, persistence and CSS variables. Under 7kb with zero dependencies.", "class", "lead")
		m.Open("div", "class", "hero-actions")
		m.Element("a", "Get Started", "class", "button primary", "href", "/docs")
		m.Element("a", "Build your own", "class", "button", "href", "/customize")
		m.Close("div")
		m.Close("div")

		m.Open("div", "class", "hero-preview")
		m.Open("div", "class", "preview-card")
		m.Element("div", "Active Theme", "class", "caption")
		m.Element("div", theme.Label(id.Name)+" · "+string(id.Mode), "class", "active-theme", "data-theme", string(id.Name))
		m.Component(ctx, ThemePicker("/"))
		m.Close("div")

		m.Open("div", "class", "preview-card")
		m.Element("div", "Theme Toggle", "class", "caption")
		m.Component(ctx, ModeToggle("/"))
		m.Element("div", "Auto saved", "class", "caption")
		m.Close("div")

		m.Open("div", "class", "preview-card")
		m.Element("div", "Bundle Size", "class", "caption")
		m.Element("div", strconv.Itoa(stats.BundleSizeKB)+"kb", "class", "metric")
		m.Element("div", "Zero dependencies", "class", "caption")
		m.Close("div")
		m.Close("div")
		m.Close("section")
	})
}
