package pages

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/components"
	"vartheme/internal/views/layout"
	"vartheme/internal/views/markup"
)

// Docs renders the documentation page with a section sidebar.
func Docs() templ.Component {
	content := markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", "class", "docs")

		m.Open("aside", "class", "docs-sidebar")
		m.Element("div", "Documentation", "class", "caption")
		for _, section := range DocSections {
			m.Element("a", section.Label, "href", "#"+section.ID, "data-doc-section", section.ID)
		}
		m.Element("a", "📦 npm", "href", components.NPMURL, "target", "_blank", "rel", "noopener noreferrer")
		m.Element("a", "🔷 GitHub", "href", components.GitHubURL, "target", "_blank", "rel", "noopener noreferrer")
		m.Close("aside")

		m.Open("article", "class", "docs-content")
		m.Element("h1", "Documentation")
		m.Element("p", "Build beautiful, themeable React interfaces with minimal effort. Vartheme handles the heavy lifting of CSS variables and state management.", "class", "lead")
		for _, section := range DocSections {
			m.Component(ctx, docSection(section))
		}
		m.Close("article")

		m.Close("div")
	})

	return layout.Layout("Documentation · vartheme", components.Navbar("docs"), content, components.Footer())
}

func docSection(section DocSection) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "id", section.ID)
		m.Element("h2", section.Label)
		if section.Intro != "" {
			m.Element("p", section.Intro, "class", "muted")
		}

		switch section.ID {
		case "themes":
			m.Component(ctx, components.ThemePicker("/docs"))
		case "css-variables":
			m.Open("dl", "class", "variables")
			for _, v := range LibraryVariables {
				m.Element("dt", v.Name)
				m.Element("dd", v.Description)
			}
			m.Close("dl")
		}

		for _, step := range section.Steps {
			if step.Label != "" {
				m.Element("p", step.Label, "class", "muted")
			}
			m.Component(ctx, components.CodeBlock(step.Code, step.Language))
		}
		m.Close("section")
	})
}
