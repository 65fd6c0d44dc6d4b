package theme

import (
	"fmt"

	"vartheme/internal/color"
)

// Role names a slot in a ColorSet.
type Role string

const (
	RolePrimary    Role = "primary"
	RoleAccent     Role = "accent"
	RoleBackground Role = "background"
	RoleSurface    Role = "surface"
	RoleText       Role = "text"
	RoleBorder     Role = "border"
	RoleMuted      Role = "muted"
)

// Roles lists every ColorSet slot in display order.
var Roles = []Role{RolePrimary, RoleAccent, RoleBackground, RoleSurface, RoleText, RoleBorder, RoleMuted}

// ColorSet is a complete bundle of role colors, each a #RRGGBB string.
// A ColorSet is always replaced as a whole.
type ColorSet struct {
	Primary    string `json:"primary" yaml:"primary" toml:"primary"`
	Accent     string `json:"accent" yaml:"accent" toml:"accent"`
	Background string `json:"background" yaml:"background" toml:"background"`
	Surface    string `json:"surface" yaml:"surface" toml:"surface"`
	Text       string `json:"text" yaml:"text" toml:"text"`
	Border     string `json:"border" yaml:"border" toml:"border"`
	Muted      string `json:"muted" yaml:"muted" toml:"muted"`
}

// Get returns the color held in role.
func (c ColorSet) Get(role Role) string {
	switch role {
	case RolePrimary:
		return c.Primary
	case RoleAccent:
		return c.Accent
	case RoleBackground:
		return c.Background
	case RoleSurface:
		return c.Surface
	case RoleText:
		return c.Text
	case RoleBorder:
		return c.Border
	case RoleMuted:
		return c.Muted
	}
	return ""
}

func (c *ColorSet) set(role Role, value string) {
	switch role {
	case RolePrimary:
		c.Primary = value
	case RoleAccent:
		c.Accent = value
	case RoleBackground:
		c.Background = value
	case RoleSurface:
		c.Surface = value
	case RoleText:
		c.Text = value
	case RoleBorder:
		c.Border = value
	case RoleMuted:
		c.Muted = value
	}
}

// Validate reports the first role that is missing or not a #RRGGBB triplet.
func (c ColorSet) Validate() error {
	for _, role := range Roles {
		value := c.Get(role)
		if value == "" {
			return fmt.Errorf("theme: color set is missing %s", role)
		}
		if !color.Valid(value) {
			return fmt.Errorf("theme: %s color %q is not a #RRGGBB value", role, value)
		}
	}
	return nil
}

// Sanitize normalizes every role and replaces unusable values with the
// matching role from fallback.
func (c ColorSet) Sanitize(fallback ColorSet) ColorSet {
	out := ColorSet{}
	for _, role := range Roles {
		value, ok := color.Normalize(c.Get(role))
		if !ok {
			value = fallback.Get(role)
		}
		out.set(role, value)
	}
	return out
}
