package pages

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/components"
	"vartheme/internal/views/layout"
	"vartheme/internal/views/markup"
)

// Customize renders the custom theme generator.
func Customize(state components.CustomizeState) templ.Component {
	content := markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "class", "customize-intro")
		m.Element("h1", "Build your own theme")
		m.Element("p", "Pick a preset, tweak the sliders and copy the provider code. Applying it repaints this site for the rest of your session.", "class", "lead")
		m.Close("section")
		m.Component(ctx, components.CustomizePanel("/customize", state))
	})

	return layout.Layout("Customize · vartheme", components.Navbar("customize"), content, components.Footer())
}

// NotFound is the 404 page. It hosts the same generator so a lost visitor
// can still build a theme.
func NotFound(path string, state components.CustomizeState) templ.Component {
	content := markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "class", "not-found")
		m.Element("div", "404", "class", "code")
		m.Element("div", "PAGE NOT FOUND", "class", "caption")
		m.Open("h1")
		m.Text("Theme ")
		m.Element("span", "Mixer", "class", "highlight")
		m.Text(" Lab 🧪")
		m.Close("h1")
		m.Element("p", "You got lost, but now you can build your own theme! Tweak the sliders and copy the code.", "class", "muted")
		m.Element("a", "Back home", "href", "/", "class", "button")
		m.Close("section")
		m.Component(ctx, components.CustomizePanel(path, state))
	})

	return layout.Layout("Not found · vartheme", components.Navbar(""), content, components.Footer())
}
