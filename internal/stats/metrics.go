package stats

import "github.com/dustin/go-humanize"

// Placeholder is shown for metrics that could not be fetched.
const Placeholder = "—"

// Metric is a count that may be unavailable.
type Metric struct {
	Value int64
	OK    bool
}

// Available wraps a fetched count.
func Available(v int64) Metric {
	return Metric{Value: v, OK: true}
}

// String renders the count with thousands separators, or Placeholder.
func (m Metric) String() string {
	if !m.OK {
		return Placeholder
	}
	return humanize.Comma(m.Value)
}

// Metrics holds the results of one Fetch.
type Metrics struct {
	Stars     Metric
	Downloads Metric
}

// Card is one tile of the stats section.
type Card struct {
	Icon   string
	Label  string
	Value  string
	Suffix string
}

// Library facts that do not need a lookup.
const (
	BundleSizeKB = 7
	Dependencies = 0
)

// Cards lays out the stats section.
func (m Metrics) Cards() []Card {
	return []Card{
		{Icon: "⭐", Label: "GitHub Stars", Value: m.Stars.String()},
		{Icon: "📦", Label: "npm Downloads", Value: m.Downloads.String(), Suffix: " / month"},
		{Icon: "⚡", Label: "Bundle Size", Value: humanize.Comma(BundleSizeKB), Suffix: "kb"},
		{Icon: "🎯", Label: "Dependencies", Value: humanize.Comma(Dependencies)},
	}
}

// PlaceholderCards is the stats section before any lookup has finished.
func PlaceholderCards() []Card {
	return Metrics{}.Cards()
}
