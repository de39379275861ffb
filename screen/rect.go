package screen

// Rect is a rectangular region of the screen in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first column to the right of the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row below the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
