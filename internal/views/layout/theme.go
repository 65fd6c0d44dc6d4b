package layout

import (
	"sort"

	"vartheme/internal/theme"
)

// ThemeDefinition describes a palette offered by the theme picker.
type ThemeDefinition struct {
	ID          theme.Name
	Label       string
	Description string
	Swatch      string
}

var themeRegistry = map[theme.Name]ThemeDefinition{
	theme.NameDefault: {
		ID:          theme.NameDefault,
		Label:       "Default",
		Description: "Modern Purple",
	},
	theme.NameOcean: {
		ID:          theme.NameOcean,
		Label:       "Ocean",
		Description: "Deep Sea",
	},
	theme.NameForest: {
		ID:          theme.NameForest,
		Label:       "Forest",
		Description: "Evergreen",
	},
	theme.NameSunset: {
		ID:          theme.NameSunset,
		Label:       "Sunset",
		Description: "Evening Glow",
	},
	theme.NameRose: {
		ID:          theme.NameRose,
		Label:       "Rose",
		Description: "Velvet Rose",
	},
}

func init() {
	for id, def := range themeRegistry {
		def.Swatch = theme.Resolve(id, theme.ModeLight).Primary
		themeRegistry[id] = def
	}
}

// ThemeByID returns a definition for the provided identifier, falling back to the default theme.
func ThemeByID(id string) ThemeDefinition {
	if def, ok := themeRegistry[theme.Name(id)]; ok {
		return def
	}
	return themeRegistry[theme.DefaultName]
}

// ThemeOptions exposes all theme definitions sorted by label for form rendering.
func ThemeOptions() []ThemeDefinition {
	options := make([]ThemeDefinition, 0, len(themeRegistry))
	for _, def := range themeRegistry {
		options = append(options, def)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})
	return options
}
