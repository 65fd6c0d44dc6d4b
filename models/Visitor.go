package models

import (
	"gorm.io/gorm"

	"vartheme/internal/theme"
)

// Visitor is an anonymous browser recognised by a long-lived cookie. It
// remembers the last theme identity chosen on that browser.
type Visitor struct {
	gorm.Model
	Token     string `gorm:"type:varchar(64);uniqueIndex;not null"`
	ThemeName string `gorm:"type:varchar(32);not null;default:default"`
	ThemeMode string `gorm:"type:varchar(8);not null;default:dark"`
}

// DefaultTheme is stored for visitors that never picked a palette.
const DefaultTheme = string(theme.DefaultName)

// DefaultMode is stored for visitors that never picked a mode.
const DefaultMode = string(theme.DefaultMode)

// ValidTheme reports whether value names a stored palette.
func ValidTheme(value string) bool {
	_, ok := theme.ParseName(value)
	return ok
}

// NormalizeTheme returns the canonical palette name or DefaultTheme.
func NormalizeTheme(value string) string {
	return string(theme.NormalizeName(value))
}

// NormalizeMode returns the canonical mode or DefaultMode.
func NormalizeMode(value string) string {
	return string(theme.NormalizeMode(value))
}

// BeforeSave keeps stored identities within the known palettes and modes.
func (v *Visitor) BeforeSave(tx *gorm.DB) error {
	v.ThemeName = NormalizeTheme(v.ThemeName)
	v.ThemeMode = NormalizeMode(v.ThemeMode)
	return nil
}
