package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/slat/text"
)

// halfBlock is the lower half block glyph. Rendered with the separator's
// interpolated style it visually blends the background colors of the items
// above and below it.
const halfBlock = "▄"

// separator generates the divider lines placed between items in separated
// display mode. Its background tracks the previous item's background and its
// foreground the upcoming item's background, producing a vertical gradient at
// each boundary. At the list's outer edges the neighbor color is the list's
// own default background.
type separator struct {
	width  int
	initBG lipgloss.TerminalColor
	fg     lipgloss.TerminalColor
	bg     lipgloss.TerminalColor
}

func newSeparator(width int, defaultStyle lipgloss.Style) *separator {
	s := &separator{width: width}
	if bg := defaultStyle.GetBackground(); !isNoColor(bg) {
		s.initBG = bg
		s.fg = bg
		s.bg = bg
	}
	return s
}

// cycleColor shifts the current foreground into the background and sets the
// new foreground to the next item's background.
func (s *separator) cycleColor(next lipgloss.TerminalColor) {
	s.bg = s.fg
	if isNoColor(next) {
		s.fg = nil
	} else {
		s.fg = next
	}
}

// cycleDefault shifts like cycleColor but resolves the new foreground to the
// list's default background. Used at the tail boundary, where there is no
// further item.
func (s *separator) cycleDefault() {
	s.bg = s.fg
	s.fg = s.initBG
}

// displayLine emits a divider line with the current interpolated style,
// tagged with whether it borders the selected item.
func (s *separator) displayLine(mustDisplay bool) displayLine {
	style := lipgloss.NewStyle()
	if s.fg != nil {
		style = style.Foreground(s.fg)
	}
	if s.bg != nil {
		style = style.Background(s.bg)
	}
	return displayLine{
		style:       style,
		line:        text.Raw(strings.Repeat(halfBlock, s.width)),
		mustDisplay: mustDisplay,
		left:        " ",
		right:       " ",
	}
}

func isNoColor(c lipgloss.TerminalColor) bool {
	if c == nil {
		return true
	}
	_, ok := c.(lipgloss.NoColor)
	return ok
}
