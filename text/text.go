package text

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Text is multi-line styled content. It is the content model for list items:
// each Line becomes one display line when the item is rendered.
type Text []Line

// New creates a Text from a string, splitting on newlines. Each line becomes
// a single unstyled span.
func New(s string) Text {
	parts := strings.Split(s, "\n")
	t := make(Text, len(parts))
	for i, p := range parts {
		t[i] = Raw(p)
	}
	return t
}

// NewStyled creates a Text from a string with every line styled the same way.
func NewStyled(s string, style lipgloss.Style) Text {
	parts := strings.Split(s, "\n")
	t := make(Text, len(parts))
	for i, p := range parts {
		t[i] = Styled(p, style)
	}
	return t
}

// Height returns the number of lines.
func (t Text) Height() int {
	return len(t)
}
