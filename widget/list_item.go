package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/slat/text"
)

// Indicator decides which lines of an item show a marker glyph in the
// indicator columns. The zero value shows nothing.
type Indicator struct {
	kind  indicatorKind
	index int
	char  string
}

type indicatorKind int

const (
	indicatorNone indicatorKind = iota
	indicatorChar
	indicatorFirstLine
	indicatorLastLine
	indicatorIdxOrLast
)

// IndicatorChar marks every line of the item with c.
func IndicatorChar(c string) Indicator {
	return Indicator{kind: indicatorChar, char: c}
}

// IndicatorFirstLine marks only the first line of the item with c.
func IndicatorFirstLine(c string) Indicator {
	return Indicator{kind: indicatorFirstLine, char: c}
}

// IndicatorLastLine marks only the last line of the item with c.
func IndicatorLastLine(c string) Indicator {
	return Indicator{kind: indicatorLastLine, char: c}
}

// IndicatorIdxOrLast marks line n with c, or the last line if the item has
// fewer than n+1 lines.
func IndicatorIdxOrLast(n int, c string) Indicator {
	return Indicator{kind: indicatorIdxOrLast, index: n, char: c}
}

// fillChar resolves the glyph for line i of an item with lineCount lines.
func (ind Indicator) fillChar(i, lineCount int) string {
	target := -1
	switch ind.kind {
	case indicatorNone:
		return " "
	case indicatorChar:
		return ind.char
	case indicatorFirstLine:
		target = 0
	case indicatorLastLine:
		target = lineCount - 1
	case indicatorIdxOrLast:
		target = min(ind.index, lineCount-1)
	}
	if i == target {
		return ind.char
	}
	return " "
}

// LineIndicators holds the indicators for the left and right columns of an
// item.
type LineIndicators struct {
	Left  Indicator
	Right Indicator
}

// ListItem is one unit of list content: styled multi-line text plus optional
// per-line edge indicators. Items are cheap values; the list borrows them for
// the duration of a render call and never retains them.
type ListItem struct {
	Content    text.Text
	Style      lipgloss.Style
	Indicators LineIndicators
}

// NewListItem creates an item from a string, splitting on newlines.
func NewListItem(content string) ListItem {
	return ListItem{Content: text.New(content)}
}

// NewListItemText creates an item from prepared styled text.
func NewListItemText(content text.Text) ListItem {
	return ListItem{Content: content}
}

// Height returns the number of text lines in the item.
func (it ListItem) Height() int {
	return it.Content.Height()
}
