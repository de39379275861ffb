package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"github.com/drake/slat/text"
)

// Cell is a single screen cell: one grapheme cluster and its resolved style.
// A wide cluster occupies multiple cells; the trailing cells have empty
// content and zero width.
type Cell struct {
	Content string
	Style   lipgloss.Style
	width   int
}

// Buffer is a grid of styled cells that widgets draw into. It is the cell
// model expected by the widget package: styles are patched per region, lines
// are written clipped to a maximum width.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer of the given size with every cell blank.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{Content: " ", width: 1}
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells.
func (b *Buffer) Height() int {
	return b.height
}

// CellAt returns the cell at (x, y). Out-of-bounds coordinates return a zero
// Cell.
func (b *Buffer) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// SetStyle patches s over the style of every cell in r, clipped to the
// buffer bounds.
func (b *Buffer) SetStyle(r Rect, s lipgloss.Style) {
	for y := max(r.Y, 0); y < min(r.Bottom(), b.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), b.width); x++ {
			c := &b.cells[y*b.width+x]
			c.Style = Patch(c.Style, s)
		}
	}
}

// SetLine writes a styled line starting at (x, y), clipped to maxWidth cells
// and to the buffer bounds. Span styles are patched over whatever style the
// cells already carry, so a region style set beforehand shows through spans
// that leave fields unset. Writes are grapheme-aware: a wide cluster that
// would not fit in the remaining width ends the line.
func (b *Buffer) SetLine(x, y int, line text.Line, maxWidth int) {
	if y < 0 || y >= b.height || x < 0 || maxWidth <= 0 {
		return
	}
	limit := min(b.width, x+maxWidth)
	for _, span := range line {
		gr := uniseg.NewGraphemes(span.Content)
		for gr.Next() {
			w := gr.Width()
			if w == 0 {
				continue
			}
			if x+w > limit {
				return
			}
			c := &b.cells[y*b.width+x]
			c.Content = gr.Str()
			c.Style = Patch(c.Style, span.Style)
			c.width = w
			for k := 1; k < w; k++ {
				cc := &b.cells[y*b.width+x+k]
				cc.Content = ""
				cc.Style = Patch(cc.Style, span.Style)
				cc.width = 0
			}
			x += w
		}
	}
}

// Row returns the plain text of row y with styling stripped. Useful for
// assertions in tests.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.width == 0 {
			continue
		}
		sb.WriteString(c.Content)
	}
	return sb.String()
}

// String renders the buffer with styling applied, one row per line.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.width == 0 {
				continue
			}
			sb.WriteString(c.Style.Render(c.Content))
		}
	}
	return sb.String()
}

// Patch merges two styles: explicitly set fields of over win, unset fields
// inherit from base.
func Patch(base, over lipgloss.Style) lipgloss.Style {
	return over.Inherit(base)
}
