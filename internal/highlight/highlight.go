// Package highlight renders code samples as HTML using a light or dark
// syntax style.
package highlight

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Style names used for each mode.
const (
	LightStyle = "github"
	DarkStyle  = "onedark"
)

// StyleName returns the chroma style for a page in the given mode.
func StyleName(light bool) string {
	if light {
		return LightStyle
	}
	return DarkStyle
}

// Style returns the chroma style for a page in the given mode.
func Style(light bool) *chroma.Style {
	style := styles.Get(StyleName(light))
	if style == nil {
		return styles.Fallback
	}
	return style
}

// Render highlights source written in language. Unknown languages are
// rendered as plain text.
func Render(light bool, source, language string) (string, error) {
	lexer := lexers.Get(strings.TrimSpace(language))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", language, err)
	}

	formatter := html.New(html.WithClasses(false), html.TabWidth(2))
	var buf bytes.Buffer
	if err := formatter.Format(&buf, Style(light), iterator); err != nil {
		return "", fmt.Errorf("format %s: %w", language, err)
	}
	return buf.String(), nil
}
