package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/highlight"
	applog "vartheme/internal/log"
	"vartheme/internal/theme"
	"vartheme/internal/views/markup"
)

// CodeBlock renders highlighted source. It never touches the theme store:
// the highlighting style follows the page mode read from the surface.
func CodeBlock(source, language string) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		light := false
		if doc, ok := theme.DocumentFrom(ctx); ok {
			_ = theme.WithPassive(ctx, doc.Surface, doc.Persistence(), func(obs *theme.Passive) error {
				light = obs.IsLight()
				return nil
			})
		}

		mode := theme.ModeDark
		if light {
			mode = theme.ModeLight
		}

		m.Open("div", "class", "code-block", "data-language", language, "data-mode", string(mode))
		highlighted, err := highlight.Render(light, source, language)
		if err != nil {
			applog.Error(ctx, "code highlighting failed", "language", language, "error", err)
			m.Open("pre")
			m.Element("code", source)
			m.Close("pre")
		} else {
			m.Raw(highlighted)
		}
		m.Close("div")
	})
}
