package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/theme"
	"vartheme/internal/views/layout"
	"vartheme/internal/views/markup"
)

func currentIdentity(ctx context.Context) theme.Identity {
	if doc, ok := theme.DocumentFrom(ctx); ok {
		return doc.Store.Identity()
	}
	return theme.DefaultIdentity()
}

// ThemePicker renders one button per palette. Choosing one posts the name
// to /preferences; the page is refreshed with the new identity.
func ThemePicker(returnTo string) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		id := currentIdentity(ctx)

		m.Open("form", "class", "theme-picker", "method", "post", "action", "/preferences", "hx-post", "/preferences")
		m.Open("input", "type", "hidden", "name", "return", "value", returnTo)
		for _, def := range layout.ThemeOptions() {
			m.Open("button",
				"type", "submit",
				"name", "theme",
				"value", string(def.ID),
				"title", def.Description,
				"data-state", linkState(string(def.ID), string(id.Name)),
			)
			m.Open("span", "class", "swatch", "style", "background:"+def.Swatch)
			m.Close("span")
			m.Text(def.Label)
			m.Close("button")
		}
		m.Close("form")
	})
}

// ModeToggle flips between light and dark.
func ModeToggle(returnTo string) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		id := currentIdentity(ctx)
		label := "Switch to light mode"
		icon := "☀️"
		if id.Mode.IsLight() {
			label = "Switch to dark mode"
			icon = "🌙"
		}

		m.Open("form", "class", "mode-toggle", "method", "post", "action", "/preferences", "hx-post", "/preferences")
		m.Open("input", "type", "hidden", "name", "action", "value", "toggle")
		m.Open("input", "type", "hidden", "name", "return", "value", returnTo)
		m.Open("button", "type", "submit", "aria-label", label, "data-mode", string(id.Mode))
		m.Text(icon)
		m.Close("button")
		m.Close("form")
	})
}
