package theme

import "vartheme/internal/color"

// GlowAlpha is the opacity applied to the primary color for primary-glow.
const GlowAlpha uint8 = 0x44

// PrimaryGlow returns the translucent variant of primary used by glow and
// spotlight effects.
func PrimaryGlow(primary string) string {
	return color.WithAlpha(primary, GlowAlpha)
}

// Projector writes resolved colors onto a surface.
type Projector struct {
	surface *Surface
}

// NewProjector returns a projector writing to surface.
func NewProjector(surface *Surface) *Projector {
	return &Projector{surface: surface}
}

// Surface returns the surface the projector writes to.
func (p *Projector) Surface() *Surface {
	return p.surface
}

// Project applies colors for id as a single surface write.
func (p *Projector) Project(id Identity, colors ColorSet) Snapshot {
	return p.surface.Apply(UpdateFor(id, colors))
}

// UpdateFor builds the surface write for colors.
func UpdateFor(id Identity, colors ColorSet) Update {
	return Update{
		Identity: id,
		Values: map[Variable]string{
			VarBackground:  colors.Background,
			VarSurface:     colors.Surface,
			VarBorder:      colors.Border,
			VarText:        colors.Text,
			VarTextMuted:   colors.Muted,
			VarPrimary:     colors.Primary,
			VarPrimaryGlow: PrimaryGlow(colors.Primary),
			VarAccent:      colors.Accent,
		},
		Page: PageStyle{
			Background: colors.Background,
			Color:      colors.Text,
		},
	}
}
