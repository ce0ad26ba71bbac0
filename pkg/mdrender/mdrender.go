// Package mdrender renders markdown for terminal previews.
package mdrender

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// DefaultWidth is the word wrap width used when none is given.
const DefaultWidth = 100

// Render converts markdown text to terminal-formatted output. It returns
// text unchanged if the renderer is unavailable or rendering fails.
func Render(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}
