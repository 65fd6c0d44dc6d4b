package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/markup"
)

// Footer renders the site footer.
func Footer() templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("footer", "class", "footer")
		m.Raw(`<div class="brand">var<span class="brand-accent">theme</span></div>`)
		m.Open("div", "class", "footer-links")
		for _, link := range []struct{ label, href string }{
			{"NPM", NPMURL},
			{"GITHUB", GitHubURL},
			{"SOURCE", AuthorURL},
		} {
			m.Element("a", link.label, "href", link.href, "target", "_blank", "rel", "noopener")
		}
		m.Close("div")
		m.Close("footer")
	})
}
