// Package widget provides stateful list widgets for terminal UIs.
//
// The centerpiece is SeparatedList, which renders multi-line styled items by
// flattening them into individual display lines and moving a window over the
// lines to achieve the final view. The pipeline per render is:
//
//	items
//	-> apply selection styling and indicators from state
//	-> flatten items to display lines, inserting separators in separated mode
//	-> filter the lines to the current view window
//	-> write the windowed lines into the cell buffer
//
// The window selectors process in a single pass, so a render is at worst
// O(total display lines) and usually stops early once the window fills and
// stabilizes.
package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/slat/screen"
	"github.com/drake/slat/text"
)

// ItemDisplay controls how items are flattened into display lines.
type ItemDisplay int

const (
	// DisplayBasic renders each text line of each item into a display
	// line, item after item.
	DisplayBasic ItemDisplay = iota
	// DisplaySeparated places a gradient separator between each item,
	// including endcaps, so items A, B, C render as S A1 A2 S B1 S C1 S.
	DisplaySeparated
)

// WindowType controls how the window places itself over the rendered lines.
type WindowType int

const (
	// WindowSelectionScroll keeps the selected item visible, moving the
	// displayed lines only when the selection would otherwise leave the
	// viewport. This is the way one naturally expects a list to scroll.
	WindowSelectionScroll WindowType = iota
	// WindowFixed keeps the selected item at the same row of the viewport
	// (ListConfig.FixedRow) and moves the list around it.
	WindowFixed
)

// ListConfig holds the display configuration for a SeparatedList. The zero
// value renders unstyled items in basic mode with selection scrolling.
type ListConfig struct {
	DefaultStyle       lipgloss.Style
	SelectedStyle      lipgloss.Style
	SelectedIndicators LineIndicators
	ShowLeftIndicator  bool
	ShowRightIndicator bool
	ItemDisplay        ItemDisplay
	Window             WindowType
	FixedRow           int
	Block              *Block
}

// SeparatedList is a general purpose list widget with several modes of
// display. It borrows the item slice and the state for the duration of one
// Render call and retains neither.
type SeparatedList struct {
	items  []ListItem
	config ListConfig
}

// NewSeparatedList creates a list over the given items.
func NewSeparatedList(items []ListItem, config ListConfig) *SeparatedList {
	return &SeparatedList{items: items, config: config}
}

// Render draws the list into buf within area, using and updating state.
// Renders against the same state must be serialized by the caller.
func (l *SeparatedList) Render(area screen.Rect, buf *screen.Buffer, state *ListState) {
	// The block draws first; the list gets the area inside it.
	if l.config.Block != nil {
		l.config.Block.Render(area, buf)
		area = l.config.Block.Inner(area)
	}
	if area.Empty() {
		return
	}

	buf.SetStyle(area, l.config.DefaultStyle)

	// Apply indicators and patch the appropriate stylings, then expand
	// each item into its display lines. The selected item's style wins
	// over its own style, which wins over the list default; its
	// indicators are replaced by the list's selected indicators.
	selected := state.selected
	projected := make([]*toLines, len(l.items))
	for i, item := range l.items {
		if i == selected {
			item.Indicators = l.config.SelectedIndicators
			item.Style = screen.Patch(l.config.DefaultStyle, screen.Patch(item.Style, l.config.SelectedStyle))
		} else {
			item.Style = screen.Patch(l.config.DefaultStyle, item.Style)
		}
		projected[i] = newToLines(item, i == selected)
	}

	var lines lineIter
	switch l.config.ItemDisplay {
	case DisplaySeparated:
		sep := newSeparator(area.Width, l.config.DefaultStyle)
		lines = newSeparatedLines(projected, sep)
	default:
		lines = newBasicLines(projected)
	}

	var visible []displayLine
	switch l.config.Window {
	case WindowFixed:
		visible = fixed(lines, l.config.FixedRow, area.Height, state)
	default:
		visible = selectionScroll(lines, area.Height, state)
	}

	for i, dl := range visible {
		y := area.Y + i

		// Fill the whole row first so the line style covers cells the
		// text doesn't reach.
		buf.SetStyle(screen.Rect{X: area.X, Y: y, Width: area.Width, Height: 1}, dl.style)

		x := area.X
		width := area.Width
		if l.config.ShowLeftIndicator {
			buf.SetLine(x, y, text.Raw(dl.left), 1)
			x++
			width--
		}
		if l.config.ShowRightIndicator {
			buf.SetLine(x+width-1, y, text.Raw(dl.right), 1)
			width--
		}
		buf.SetLine(x, y, dl.line, width)
	}
}

// RenderStateless draws the list with an ephemeral default state: the first
// item is selected and no scroll position is remembered between calls.
func (l *SeparatedList) RenderStateless(area screen.Rect, buf *screen.Buffer) {
	state := NewListState(max(len(l.items), 1))
	l.Render(area, buf, state)
}
