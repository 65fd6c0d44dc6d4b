package pages

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/components"
	"vartheme/internal/views/layout"
	"vartheme/internal/views/markup"
)

// Home is the landing page. The stat cards are loaded after the first
// paint from the stats fragment.
func Home() templ.Component {
	content := markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Component(ctx, components.Hero())

		m.Open("section", "class", "features-intro")
		m.Open("h2")
		m.Text("Everything you need, ")
		m.Element("span", "nothing you don't.", "class", "highlight")
		m.Close("h2")
		m.Element("p", "vartheme is focused, small, and does one thing really well: beautiful theming with zero effort.", "class", "lead")
		m.Close("section")
		m.Component(ctx, components.Features(FeatureList))

		m.Component(ctx, components.StatsPlaceholder())

		m.Open("section", "class", "getting-started")
		m.Open("h2")
		m.Text("Simple ")
		m.Element("span", "by design.", "class", "highlight")
		m.Close("h2")
		m.Element("p", "Get started in minutes. No boilerplate, no complexity.", "class", "lead")
		for _, step := range HomeSteps {
			m.Open("div", "class", "step")
			m.Element("p", step.Label, "class", "caption")
			m.Component(ctx, components.CodeBlock(step.Code, step.Language))
			m.Close("div")
		}
		m.Close("section")
	})

	return layout.Layout("vartheme: beautiful React themes", components.Navbar("home"), content, components.Footer())
}
