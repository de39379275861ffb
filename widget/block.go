package widget

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/slat/screen"
	"github.com/drake/slat/text"
)

// Block draws a border around a widget and reports the content rectangle
// inside it. An optional title is written into the top edge.
type Block struct {
	Border lipgloss.Border
	Style  lipgloss.Style
	Title  string
}

// NewBlock creates a block with a normal single-line border.
func NewBlock(title string) *Block {
	return &Block{Border: lipgloss.NormalBorder(), Title: title}
}

// Inner returns the content rectangle inside the border. Degenerate rects
// clamp to zero size.
func (bl *Block) Inner(r screen.Rect) screen.Rect {
	return screen.Rect{
		X:      r.X + 1,
		Y:      r.Y + 1,
		Width:  max(r.Width-2, 0),
		Height: max(r.Height-2, 0),
	}
}

// Render draws the border into buf. Rects too small to hold a border render
// nothing.
func (bl *Block) Render(r screen.Rect, buf *screen.Buffer) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right := r.Right() - 1
	bottom := r.Bottom() - 1

	for x := r.X + 1; x < right; x++ {
		buf.SetLine(x, r.Y, text.Styled(bl.Border.Top, bl.Style), 1)
		buf.SetLine(x, bottom, text.Styled(bl.Border.Bottom, bl.Style), 1)
	}
	for y := r.Y + 1; y < bottom; y++ {
		buf.SetLine(r.X, y, text.Styled(bl.Border.Left, bl.Style), 1)
		buf.SetLine(right, y, text.Styled(bl.Border.Right, bl.Style), 1)
	}
	buf.SetLine(r.X, r.Y, text.Styled(bl.Border.TopLeft, bl.Style), 1)
	buf.SetLine(right, r.Y, text.Styled(bl.Border.TopRight, bl.Style), 1)
	buf.SetLine(r.X, bottom, text.Styled(bl.Border.BottomLeft, bl.Style), 1)
	buf.SetLine(right, bottom, text.Styled(bl.Border.BottomRight, bl.Style), 1)

	if bl.Title != "" && r.Width > 2 {
		buf.SetLine(r.X+1, r.Y, text.Styled(bl.Title, bl.Style), r.Width-2)
	}
}
