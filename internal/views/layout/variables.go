package layout

import (
	"fmt"
	"strings"

	"vartheme/internal/theme"
)

// InlineVariables renders the surface as a style attribute value for the
// root element.
func InlineVariables(s theme.Snapshot) string {
	var b strings.Builder
	for _, v := range theme.Variables {
		value := s.Value(v)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "--%s:%s;", v, value)
	}
	return b.String()
}

// BodyStyle renders the page-level background and foreground.
func BodyStyle(s theme.Snapshot) string {
	var parts []string
	if s.Page.Background != "" {
		parts = append(parts, "background:"+s.Page.Background)
	}
	if s.Page.Color != "" {
		parts = append(parts, "color:"+s.Page.Color)
	}
	return strings.Join(parts, ";")
}

// Stylesheet renders the surface as a standalone stylesheet.
func Stylesheet(s theme.Snapshot) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, v := range theme.Variables {
		value := s.Value(v)
		if value == "" {
			continue
		}
		fmt.Fprintf(&b, "  --%s: %s;\n", v, value)
	}
	if mode := s.Mode(); mode != "" {
		fmt.Fprintf(&b, "  color-scheme: %s;\n", mode)
	}
	b.WriteString("}\n")
	if style := BodyStyle(s); style != "" {
		fmt.Fprintf(&b, "body {\n  %s;\n}\n", strings.ReplaceAll(style, ";", ";\n  "))
	}
	return b.String()
}
