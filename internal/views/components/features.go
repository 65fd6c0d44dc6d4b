package components

import (
	"context"

	"github.com/a-h/templ"

	"vartheme/internal/views/markup"
)

// Feature is one tile of the features grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Features renders the features grid.
func Features(items []Feature) templ.Component {
	return markup.Func(func(ctx context.Context, m *markup.Writer) {
		m.Open("section", "id", "features", "class", "features")
		for _, item := range items {
			m.Open("div", "class", "feature")
			m.Element("div", item.Icon, "class", "icon")
			m.Element("h3", item.Title)
			m.Element("p", item.Description)
			m.Close("div")
		}
		m.Close("section")
	})
}
