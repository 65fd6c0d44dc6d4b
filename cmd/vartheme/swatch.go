package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vartheme/internal/theme"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

// swatch renders a colored block followed by the hex value.
func swatch(hex string) string {
	block := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
	return block + " " + hex
}

func writeColorSet(w io.Writer, colors theme.ColorSet) {
	width := 0
	for _, role := range theme.Roles {
		width = max(width, len(role))
	}
	for _, role := range theme.Roles {
		label := string(role) + strings.Repeat(" ", width-len(role))
		fmt.Fprintf(w, "  %s  %s\n", mutedStyle.Render(label), swatch(colors.Get(role)))
	}
}
