package theme

import "strings"

// Name identifies a palette in the catalog, or the free-form custom palette.
type Name string

// Mode selects the light or dark variant of a palette.
type Mode string

const (
	NameDefault Name = "default"
	NameOcean   Name = "ocean"
	NameForest  Name = "forest"
	NameSunset  Name = "sunset"
	NameRose    Name = "rose"
	NameCustom  Name = "custom"
)

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

const (
	// DefaultName is used when no valid palette has been chosen.
	DefaultName = NameDefault
	// DefaultMode is used when no valid mode has been chosen.
	DefaultMode = ModeDark
)

// Identity is the pair that fully determines what the page looks like.
type Identity struct {
	Name Name `json:"name"`
	Mode Mode `json:"mode"`
}

// DefaultIdentity is the identity of a fresh session.
func DefaultIdentity() Identity {
	return Identity{Name: DefaultName, Mode: DefaultMode}
}

// ParseName accepts catalog names and "custom", ignoring case and
// surrounding whitespace.
func ParseName(value string) (Name, bool) {
	name := Name(strings.ToLower(strings.TrimSpace(value)))
	if name == NameCustom {
		return name, true
	}
	if _, ok := catalogue[name]; ok {
		return name, true
	}
	return "", false
}

// ParseMode accepts "light" and "dark", ignoring case and surrounding
// whitespace.
func ParseMode(value string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeLight:
		return ModeLight, true
	case ModeDark:
		return ModeDark, true
	}
	return "", false
}

// NormalizeName returns the parsed name or DefaultName.
func NormalizeName(value string) Name {
	if name, ok := ParseName(value); ok {
		return name
	}
	return DefaultName
}

// NormalizeMode returns the parsed mode or DefaultMode.
func NormalizeMode(value string) Mode {
	if mode, ok := ParseMode(value); ok {
		return mode
	}
	return DefaultMode
}

// Opposite returns the other mode.
func (m Mode) Opposite() Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// IsLight reports whether m is the light mode.
func (m Mode) IsLight() bool {
	return m == ModeLight
}
