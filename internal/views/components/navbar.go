package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/markup"
)

// Outbound project links.
const (
	NPMURL    = "https://www.npmjs.com/package/vartheme"
	GitHubURL = "https://github.com/sumitt-wayne/vartheme"
	AuthorURL = "https://github.com/sumitt-wayne"
)

// NavLink is an entry of the top navigation.
type NavLink struct {
	Label   string
	Path    string
	Section string
}

// NavLinks are the site sections in display order.
var NavLinks = []NavLink{
	{Label: "Home", Path: "/", Section: "home"},
	{Label: "Docs", Path: "/docs", Section: "docs"},
	{Label: "Customize", Path: "/customize", Section: "customize"},
}

func linkState(section, active string) string {
	if section == active {
		return "active"
	}
	return "inactive"
}

// Navbar renders the top navigation with the mode toggle.
func Navbar(active string) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("nav", "class", "navbar")
		m.Open("a", "class", "brand", "href", "/")
		m.Raw(`var<span class="brand-accent">theme</span>`)
		m.Close("a")

		m.Open("div", "class", "nav-links")
		for _, link := range NavLinks {
			m.Element("a", link.Label,
				"href", link.Path,
				"data-nav-section", link.Section,
				"data-state", linkState(link.Section, active),
			)
		}
		m.Element("a", "npm", "href", NPMURL, "target", "_blank", "rel", "noopener")
		m.Element("a", "GitHub", "href", GitHubURL, "target", "_blank", "rel", "noopener")
		m.Close("div")

		m.Component(ctx, ModeToggle(returnPath(active)))
		m.Close("nav")
	})
}

func returnPath(section string) string {
	for _, link := range NavLinks {
		if link.Section == section {
			return link.Path
		}
	}
	return "/"
}
