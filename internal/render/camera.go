package render

// Camera translates between grid coordinates and screen cells.
// Each tile is drawn two terminal columns wide.
type Camera struct {
	OffsetRow  int
	OffsetCol  int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on (row, col).
func NewCamera(row, col, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(row, col)
	return c
}

// Center repositions the camera so that (row, col) is in the middle.
func (c *Camera) Center(row, col int) {
	c.OffsetCol = col - (c.ViewWidth/2)/2
	c.OffsetRow = row - c.ViewHeight/2
}

// Scroll moves the camera by whole tiles, keeping the grid of side size in
// view. Grids smaller than the viewport pin to the top-left.
func (c *Camera) Scroll(dRow, dCol, size int) {
	c.OffsetRow = clampOffset(c.OffsetRow+dRow, size, c.ViewHeight)
	c.OffsetCol = clampOffset(c.OffsetCol+dCol, size, c.ViewWidth/2)
}

// Fit clamps the current offsets to a grid of side size.
func (c *Camera) Fit(size int) { c.Scroll(0, 0, size) }

func clampOffset(off, size, view int) int {
	if hi := size - view; off > hi {
		off = hi
	}
	if off < 0 {
		off = 0
	}
	return off
}

// WorldToScreen converts (row, col) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(row, col int) (sx, sy int, visible bool) {
	sx = (col - c.OffsetCol) * 2
	sy = row - c.OffsetRow
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to (row, col).
func (c *Camera) ScreenToWorld(sx, sy int) (row, col int) {
	return sy + c.OffsetRow, sx/2 + c.OffsetCol
}
