package layout

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/theme"
	"vartheme/internal/views/markup"
)

const htmxScript = "https://unpkg.com/htmx.org@1.9.12"

// Layout renders the document shell. The root element carries the current
// surface of the page's theme document so the first paint already uses
// the chosen palette.
func Layout(title string, nav, content, footer templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		snap := theme.NewSurface().Snapshot()
		if doc, ok := theme.DocumentFrom(ctx); ok {
			snap = doc.Surface.Snapshot()
		}

		m.Raw("<!DOCTYPE html>")
		m.Open("html",
			"lang", "en",
			"data-theme", string(snap.Identity.Name),
			"data-mode", string(snap.Mode()),
			"style", InlineVariables(snap),
		)
		m.Raw("<head>")
		m.Raw(`<meta charset="utf-8">`)
		m.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.Element("title", title)
		m.Open("link", "rel", "stylesheet", "href", "/assets/site.css")
		m.Open("script", "src", htmxScript, "defer", "defer")
		m.Close("script")
		m.Raw("</head>")
		m.Open("body", "style", BodyStyle(snap))
		m.Component(ctx, nav)
		m.Raw(`<main id="content">`)
		m.Component(ctx, content)
		m.Raw("</main>")
		m.Component(ctx, footer)
		m.Raw("</body></html>")
	})
}
