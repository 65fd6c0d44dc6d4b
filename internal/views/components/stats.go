package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/stats"
	"vartheme/internal/views/markup"
)

// StatsPath serves the stats section once metrics are fetched.
const StatsPath = "/fragments/stats"

// StatCard renders a single metric tile.
func StatCard(card stats.Card) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", "class", "stat-card")
		m.Element("div", card.Icon, "class", "icon")
		m.Open("div", "class", "value")
		m.Text(card.Value)
		if card.Suffix != "" {
			m.Element("span", card.Suffix, "class", "suffix")
		}
		m.Close("div")
		m.Element("div", card.Label, "class", "label")
		m.Close("div")
	})
}

// StatsSection renders the metric tiles.
func StatsSection(cards []stats.Card) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "id", "stats", "class", "stats")
		for _, card := range cards {
			m.Component(ctx, StatCard(card))
		}
		m.Close("section")
	})
}

// StatsPlaceholder renders placeholder tiles that replace themselves with
// the fetched metrics after the page has loaded.
func StatsPlaceholder() templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", "hx-get", StatsPath, "hx-trigger", "load", "hx-swap", "outerHTML")
		m.Component(ctx, StatsSection(stats.PlaceholderCards()))
		m.Close("div")
	})
}
