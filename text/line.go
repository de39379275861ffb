package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span is a run of text rendered with a single style.
type Span struct {
	Content string
	Style   lipgloss.Style
}

// Line is one row of text made up of one or more styled spans.
type Line []Span

// Raw creates an unstyled line from a string.
func Raw(s string) Line {
	return Line{{Content: s}}
}

// Styled creates a single-span line with the given style.
func Styled(s string, style lipgloss.Style) Line {
	return Line{{Content: s, Style: style}}
}

// String returns the line's text with styling stripped.
func (l Line) String() string {
	var sb strings.Builder
	for _, sp := range l {
		sb.WriteString(sp.Content)
	}
	return sb.String()
}

// Width returns the display width of the line in terminal cells.
func (l Line) Width() int {
	w := 0
	for _, sp := range l {
		w += runewidth.StringWidth(sp.Content)
	}
	return w
}
