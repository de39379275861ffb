package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/slat/text"
)

// displayLine is one renderable row derived from an item's content or a
// separator. It exists only inside a render call; the window selector
// operates on a stream of these.
type displayLine struct {
	style       lipgloss.Style
	line        text.Line
	mustDisplay bool
	left        string
	right       string
}

func fillerLine() displayLine {
	return displayLine{line: text.Line{}, left: " ", right: " "}
}

// lineIter is a pull iterator over display lines. The window selectors
// consume it in a single forward pass and stop early once the window
// stabilizes.
type lineIter interface {
	next() (displayLine, bool)
}

// toLines expands one item into its display lines, resolving the indicator
// glyph for each line.
type toLines struct {
	style      lipgloss.Style
	lines      []text.Line
	pos        int
	indicators LineIndicators
	selected   bool
}

func newToLines(item ListItem, selected bool) *toLines {
	return &toLines{
		style:      item.Style,
		lines:      item.Content,
		indicators: item.Indicators,
		selected:   selected,
	}
}

func (t *toLines) next() (displayLine, bool) {
	if t.pos >= len(t.lines) {
		return displayLine{}, false
	}
	i := t.pos
	t.pos++
	return displayLine{
		style:       t.style,
		line:        t.lines[i],
		mustDisplay: t.selected,
		left:        t.indicators.Left.fillChar(i, len(t.lines)),
		right:       t.indicators.Right.fillChar(i, len(t.lines)),
	}, true
}

// basicLines flattens items into display lines in order, with no insertions.
type basicLines struct {
	items []*toLines
	idx   int
}

func newBasicLines(items []*toLines) *basicLines {
	return &basicLines{items: items}
}

func (b *basicLines) next() (displayLine, bool) {
	for b.idx < len(b.items) {
		if dl, ok := b.items[b.idx].next(); ok {
			return dl, true
		}
		b.idx++
	}
	return displayLine{}, false
}

// separatedLines interleaves a separator before the first item, between
// every pair of adjacent items, and after the last item. A separator's
// mustDisplay is true if either neighboring item is the selected one, so a
// separator touching the selection counts as part of its visible span for
// windowing.
type separatedLines struct {
	items        []*toLines
	idx          int
	current      *toLines
	sep          *separator
	lastSelected bool
	done         bool
}

func newSeparatedLines(items []*toLines, sep *separator) *separatedLines {
	return &separatedLines{items: items, sep: sep, done: len(items) == 0}
}

func (s *separatedLines) next() (displayLine, bool) {
	if s.done {
		return displayLine{}, false
	}
	if s.current != nil {
		if dl, ok := s.current.next(); ok {
			s.lastSelected = dl.mustDisplay
			return dl, true
		}
	}

	// Current item exhausted: emit the boundary separator and move on.
	if s.idx < len(s.items) {
		next := s.items[s.idx]
		s.idx++
		s.sep.cycleColor(next.style.GetBackground())
		s.current = next
		dl := s.sep.displayLine(next.selected || s.lastSelected)
		s.lastSelected = dl.mustDisplay
		return dl, true
	}

	// Tail boundary: one final separator fading back to the default
	// background.
	s.done = true
	s.sep.cycleDefault()
	dl := s.sep.displayLine(s.lastSelected)
	return dl, true
}
