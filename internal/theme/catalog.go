package theme

// Palette is a named catalog entry with both mode variants.
type Palette struct {
	Name  Name
	Label string
	Light ColorSet
	Dark  ColorSet
}

// Colors returns the variant for mode.
func (p Palette) Colors(mode Mode) ColorSet {
	if mode == ModeLight {
		return p.Light
	}
	return p.Dark
}

var catalogue = map[Name]Palette{
	NameDefault: {
		Name:  NameDefault,
		Label: "Default",
		Light: ColorSet{Primary: "#7C3AED", Accent: "#06B6D4", Background: "#FFFFFF", Surface: "#F8FAFC", Text: "#0F172A", Border: "#E2E8F0", Muted: "#94A3B8"},
		Dark:  ColorSet{Primary: "#A78BFA", Accent: "#22D3EE", Background: "#0A0A0F", Surface: "#111118", Text: "#F8FAFC", Border: "#2A2A3A", Muted: "#64748B"},
	},
	NameOcean: {
		Name:  NameOcean,
		Label: "Ocean",
		Light: ColorSet{Primary: "#0284C7", Accent: "#0D9488", Background: "#F0F9FF", Surface: "#E0F2FE", Text: "#0C4A6E", Border: "#BAE6FD", Muted: "#7CB9D8"},
		Dark:  ColorSet{Primary: "#38BDF8", Accent: "#2DD4BF", Background: "#0C1A2E", Surface: "#0F2744", Text: "#E0F2FE", Border: "#1E3A5F", Muted: "#4A7A9B"},
	},
	NameForest: {
		Name:  NameForest,
		Label: "Forest",
		Light: ColorSet{Primary: "#16A34A", Accent: "#84CC16", Background: "#F0FDF4", Surface: "#DCFCE7", Text: "#14532D", Border: "#BBF7D0", Muted: "#7AAF8A"},
		Dark:  ColorSet{Primary: "#4ADE80", Accent: "#A3E635", Background: "#0A1F0F", Surface: "#0F2D17", Text: "#DCFCE7", Border: "#166534", Muted: "#4A7A5A"},
	},
	NameSunset: {
		Name:  NameSunset,
		Label: "Sunset",
		Light: ColorSet{Primary: "#EA580C", Accent: "#DB2777", Background: "#FFF7ED", Surface: "#FFEDD5", Text: "#431407", Border: "#FED7AA", Muted: "#B8845A"},
		Dark:  ColorSet{Primary: "#FB923C", Accent: "#F472B6", Background: "#1A0A00", Surface: "#2D1200", Text: "#FFEDD5", Border: "#7C2D12", Muted: "#8B5A3A"},
	},
	NameRose: {
		Name:  NameRose,
		Label: "Rose",
		Light: ColorSet{Primary: "#E11D48", Accent: "#BE185D", Background: "#FFF1F2", Surface: "#FFE4E6", Text: "#4C0519", Border: "#FECDD3", Muted: "#B87A8A"},
		Dark:  ColorSet{Primary: "#FB7185", Accent: "#F472B6", Background: "#1A0008", Surface: "#2D000F", Text: "#FFE4E6", Border: "#881337", Muted: "#8B3A4A"},
	},
}

var order = []Name{NameDefault, NameOcean, NameForest, NameSunset, NameRose}

// Resolve returns the colors registered for name in mode. Names outside the
// catalog, custom included, resolve to the default palette.
func Resolve(name Name, mode Mode) ColorSet {
	if palette, ok := catalogue[name]; ok {
		return palette.Colors(mode)
	}
	return catalogue[DefaultName].Colors(mode)
}

// Lookup returns the catalog entry for name.
func Lookup(name Name) (Palette, bool) {
	palette, ok := catalogue[name]
	return palette, ok
}

// Palettes exposes the catalog in display order for pickers.
func Palettes() []Palette {
	out := make([]Palette, 0, len(order))
	for _, name := range order {
		out = append(out, catalogue[name])
	}
	return out
}

// Label returns the display label for name.
func Label(name Name) string {
	if name == NameCustom {
		return "Custom"
	}
	if palette, ok := catalogue[name]; ok {
		return palette.Label
	}
	return catalogue[DefaultName].Label
}
